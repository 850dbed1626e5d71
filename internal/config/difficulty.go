package config

// DifficultyPreset represents a named difficulty level for the AI team.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the given preset name is known.
// The empty string is valid and means "use the config as-is".
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplySoccerPreset adjusts the AI parameters for a difficulty preset.
// Normal is the tuning the embedded defaults ship with; easy slows the
// AI down and makes it think less often, hard does the opposite.
func ApplySoccerPreset(cfg *SoccerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.Speed = 140
		cfg.AI.KickPower = 240
		cfg.AI.ThinkInterval = 0.8
	case DifficultyNormal:
		cfg.AI.Speed = 180
		cfg.AI.KickPower = 280
		cfg.AI.ThinkInterval = 0.5
	case DifficultyHard:
		cfg.AI.Speed = 210
		cfg.AI.KickPower = 320
		cfg.AI.ThinkInterval = 0.3
	}
}
