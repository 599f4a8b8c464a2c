package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := Default(), DefaultRunnerConfig(); got != want {
		t.Errorf("embedded default differs from hard-coded default:\n got %+v\nwant %+v", got, want)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"negative speed", func(c *RunnerConfig) { c.Physics.BaseSpeed = -1 }, "base_speed"},
		{"max below base", func(c *RunnerConfig) { c.Physics.MaxSpeed = 0.1 }, "max_speed"},
		{"no lanes", func(c *RunnerConfig) { c.Track.Lanes = 0 }, "track.lanes"},
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"inverted gaps", func(c *RunnerConfig) { c.Spawn.Coins.MinGap = 20 }, "spawn.coins"},
		{"negative dwell", func(c *RunnerConfig) { c.Session.IntroDwell = -time.Second }, "intro_dwell"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "track:\n  lanes: 5\nsession:\n  intro_dwell: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Track.Lanes != 5 {
		t.Errorf("Lanes = %d, expected 5", cfg.Track.Lanes)
	}
	if cfg.Session.IntroDwell != 500*time.Millisecond {
		t.Errorf("IntroDwell = %s, expected 500ms", cfg.Session.IntroDwell)
	}
	// Untouched values keep their defaults
	if cfg.Physics.Gravity != 0.009 {
		t.Errorf("Gravity = %g, expected default 0.009", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Error("hard preset should raise base speed")
	}

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Physics.Acceleration != 0 || fixed.Physics.MaxSpeed != fixed.Physics.BaseSpeed {
		t.Errorf("fixed preset should flatten the speed curve, got %+v", fixed.Physics)
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset should stay valid: %v", err)
	}

	none := base
	ApplyPreset(&none, ParsePreset("bogus"))
	if none != base {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestLaneX(t *testing.T) {
	track := DefaultRunnerConfig().Track
	if track.MiddleLane() != 1 {
		t.Fatalf("MiddleLane() = %d, expected 1", track.MiddleLane())
	}
	for lane, want := range []float64{-4, 0, 4} {
		if got := track.LaneX(lane); got != want {
			t.Errorf("LaneX(%d) = %g, expected %g", lane, got, want)
		}
	}
}
