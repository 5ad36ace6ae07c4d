package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTuningTable(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		expected   Tuning
	}{
		{DifficultyEasy, Tuning{Gravity: 0.12, LiftMultiplier: 4.0, SpawnPeriod: 300, SpeedIncrement: 0.002, InitialSpeed: 3, GateGap: 300}},
		{DifficultyMedium, Tuning{Gravity: 0.5, LiftMultiplier: 1.8, SpawnPeriod: 100, SpeedIncrement: 0.05, InitialSpeed: 6, GateGap: 180}},
		{DifficultyHard, Tuning{Gravity: 1.1, LiftMultiplier: 1.1, SpawnPeriod: 40, SpeedIncrement: 0.15, InitialSpeed: 10, GateGap: 150}},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			if got := TuningFor(tc.difficulty); got != tc.expected {
				t.Errorf("TuningFor(%s) = %+v, expected %+v", tc.difficulty, got, tc.expected)
			}
		})
	}
}

func TestTuningForUnknownFallsBackToMedium(t *testing.T) {
	if got := TuningFor(Difficulty("nightmare")); got != TuningFor(DifficultyMedium) {
		t.Errorf("unknown difficulty should fall back to medium, got %+v", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		parsed, err := ParseDifficulty(string(d))
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) failed: %v", d, err)
		}
		if parsed != d {
			t.Errorf("ParseDifficulty(%q) = %v", d, parsed)
		}
	}

	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("ParseDifficulty should reject unknown values")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Field.Width != 1280 || cfg.Field.Height != 720 {
		t.Errorf("default field = %vx%v, expected 1280x720", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Sparkles.BurstSize != 40 {
		t.Errorf("default burst size = %d, expected 40", cfg.Sparkles.BurstSize)
	}
	if cfg.Obstacles.CrateSize != 80 {
		t.Errorf("default crate size = %v, expected 80", cfg.Obstacles.CrateSize)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := []byte("field:\n  width: 640\n  height: 360\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Field.Width != 640 {
		t.Errorf("custom field width = %v, expected 640", cfg.Field.Width)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/fitrush.yaml"); err == nil {
		t.Error("Load should fail for a missing explicit config path")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded != DefaultConfig() {
		t.Errorf("embedded YAML drifted from DefaultConfig():\n%+v\nvs\n%+v", loaded, DefaultConfig())
	}
}
