package config

import (
	_ "embed"
)

//go:embed defaults/soccer.yaml
var defaultSoccerYAML []byte

// DefaultSoccerConfig returns the default soccer configuration.
// Kept in sync with defaults/soccer.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultSoccerConfig() SoccerConfig {
	return SoccerConfig{
		Player: SoccerPlayer{
			Speed:     200,
			KickPower: 300,
		},
		AI: SoccerAI{
			Speed:         180,
			KickPower:     280,
			ThinkInterval: 0.5,
		},
		Gameplay: SoccerGameplay{
			MatchLength: 180,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "soccer":
		return defaultSoccerYAML
	default:
		return nil
	}
}
