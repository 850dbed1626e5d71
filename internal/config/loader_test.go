package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSoccerEmbeddedDefaults(t *testing.T) {
	// No custom path and no local configs dir: falls through to the
	// embedded YAML, which must match the hardcoded defaults.
	cfg, err := LoadSoccer("")
	if err != nil {
		t.Fatalf("LoadSoccer(\"\") error: %v", err)
	}

	def := DefaultSoccerConfig()
	if cfg.Player.Speed != def.Player.Speed {
		t.Errorf("Player.Speed = %f, expected %f", cfg.Player.Speed, def.Player.Speed)
	}
	if cfg.AI.ThinkInterval != def.AI.ThinkInterval {
		t.Errorf("AI.ThinkInterval = %f, expected %f", cfg.AI.ThinkInterval, def.AI.ThinkInterval)
	}
	if cfg.Gameplay.MatchLength != def.Gameplay.MatchLength {
		t.Errorf("Gameplay.MatchLength = %f, expected %f", cfg.Gameplay.MatchLength, def.Gameplay.MatchLength)
	}
}

func TestLoadSoccerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soccer.yaml")
	content := []byte("player:\n  speed: 250\n  kick_power: 350\nai:\n  speed: 100\n  kick_power: 200\n  think_interval: 1.0\ngameplay:\n  match_length: 60\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadSoccer(path)
	if err != nil {
		t.Fatalf("LoadSoccer(%q) error: %v", path, err)
	}

	if cfg.Player.Speed != 250 {
		t.Errorf("Player.Speed = %f, expected 250", cfg.Player.Speed)
	}
	if cfg.AI.ThinkInterval != 1.0 {
		t.Errorf("AI.ThinkInterval = %f, expected 1.0", cfg.AI.ThinkInterval)
	}
	if cfg.Gameplay.MatchLength != 60 {
		t.Errorf("Gameplay.MatchLength = %f, expected 60", cfg.Gameplay.MatchLength)
	}
}

func TestLoadSoccerMissingCustomPath(t *testing.T) {
	if _, err := LoadSoccer("/nonexistent/soccer.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestApplySoccerPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantSpeed     float64
		wantThinkIntv float64
	}{
		{DifficultyEasy, 140, 0.8},
		{DifficultyNormal, 180, 0.5},
		{DifficultyHard, 210, 0.3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSoccerConfig()
			ApplySoccerPreset(&cfg, tc.preset)
			if cfg.AI.Speed != tc.wantSpeed {
				t.Errorf("AI.Speed = %f, expected %f", cfg.AI.Speed, tc.wantSpeed)
			}
			if cfg.AI.ThinkInterval != tc.wantThinkIntv {
				t.Errorf("AI.ThinkInterval = %f, expected %f", cfg.AI.ThinkInterval, tc.wantThinkIntv)
			}
		})
	}

	// Empty preset leaves the config untouched.
	cfg := DefaultSoccerConfig()
	ApplySoccerPreset(&cfg, "")
	if cfg.AI.Speed != 180 {
		t.Errorf("empty preset changed AI.Speed to %f", cfg.AI.Speed)
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, expected true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(\"nightmare\") = true, expected false")
	}
}
