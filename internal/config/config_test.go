package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultRunnerConfig()

	if math.Abs(cfg.Shurikens.Spin-want.Shurikens.Spin) > 1e-6 {
		t.Errorf("shuriken spin = %v, expected %v", cfg.Shurikens.Spin, want.Shurikens.Spin)
	}
	cfg.Shurikens.Spin = want.Shurikens.Spin
	if cfg != want {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.World.Width = 0
	cfg.Coins.Vertices = 2
	cfg.Obstacles.RocketChance = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"world.width", "coins.vertices", "rocket_chance"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestValidateSlowMultiplier(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -0.5, true},
		{"above one", 1.5, true},
		{"half", 0.5, false},
		{"one", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			cfg.Powerups.SlowMultiplier = tt.value
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "powerups.slow_multiplier") {
				t.Errorf("error %q does not mention powerups.slow_multiplier", err)
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("physics:\n  gravity: 800\nquiz:\n  time_limit: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.Gravity != 800 {
		t.Errorf("gravity = %v, expected 800", cfg.Physics.Gravity)
	}
	if cfg.Quiz.TimeLimit != 20 {
		t.Errorf("quiz time limit = %v, expected 20", cfg.Quiz.TimeLimit)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Physics.Thrust != 1600 {
		t.Errorf("thrust = %v, expected default 1600", cfg.Physics.Thrust)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("expected validation error for negative width")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) = %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level at start = %v, expected 0", lvl)
	}
	if lvl := d.Level(0, 150); math.Abs(lvl-0.5) > 1e-9 {
		t.Errorf("Level halfway = %v, expected 0.5", lvl)
	}
	if lvl := d.Level(0, 10_000); lvl != 1 {
		t.Errorf("Level past max = %v, expected 1", lvl)
	}

	if s := d.Speed(1000, 0, 300); math.Abs(s-1500) > 1e-9 {
		t.Errorf("Speed at max = %v, expected 1500", s)
	}
	if iv := d.Interval(10, 0, 300); math.Abs(iv-6) > 1e-9 {
		t.Errorf("Interval at max = %v, expected 6", iv)
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	cfg.Scaling.IntervalReduction = 0.95
	d := NewDifficultyManager(cfg)

	if iv := d.Interval(8, 0, 300); iv != 2 {
		t.Errorf("Interval = %v, expected floor of 2", iv)
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if lvl := d.Level(100, 1000); lvl != 0.3 {
		t.Errorf("fixed Level = %v, expected 0.3", lvl)
	}
}
