// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// SoccerConfig contains all configuration for the soccer game.
type SoccerConfig struct {
	Player   SoccerPlayer   `yaml:"player"`
	AI       SoccerAI       `yaml:"ai"`
	Gameplay SoccerGameplay `yaml:"gameplay"`
}

// SoccerPlayer defines parameters of the player-controlled agent.
type SoccerPlayer struct {
	Speed     float64 `yaml:"speed"`      // Movement speed in units/second
	KickPower float64 `yaml:"kick_power"` // Ball speed imparted by a kick
}

// SoccerAI defines parameters shared by all AI agents.
type SoccerAI struct {
	Speed         float64 `yaml:"speed"`          // Movement speed in units/second
	KickPower     float64 `yaml:"kick_power"`     // Ball speed imparted by a kick
	ThinkInterval float64 `yaml:"think_interval"` // Seconds between re-target decisions
}

// SoccerGameplay defines match-level parameters.
type SoccerGameplay struct {
	// MatchLength is the match duration in seconds. Zero or negative
	// means an untimed match that runs until the player quits.
	MatchLength float64 `yaml:"match_length"`
}
