// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of a run. Distances are in world units
// (the field is Width x Height), times in seconds and speeds in units per
// second.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Character  CharacterConfig  `yaml:"character"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Coins      CoinConfig       `yaml:"coins"`
	Lasers     LaserConfig      `yaml:"lasers"`
	Rockets    RocketConfig     `yaml:"rockets"`
	Shurikens  ShurikenConfig   `yaml:"shurikens"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Quiz       QuizConfig       `yaml:"quiz"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// WorldConfig defines the play field and scrolling.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	FloorHeight     float64 `yaml:"floor_height"`
	DespawnX        float64 `yaml:"despawn_x"`         // bodies left of this are reaped
	ScrollSpeed     float64 `yaml:"scroll_speed"`      // background speed, leftwards
	MetersPerSecond float64 `yaml:"meters_per_second"` // distance accrual
}

// RunnerPhysics defines the character's vertical motion.
type RunnerPhysics struct {
	Gravity float64 `yaml:"gravity"`
	Thrust  float64 `yaml:"thrust"`
}

// CharacterConfig defines the player body.
type CharacterConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines ground hazards and the alert shown before them.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Interval     float64 `yaml:"interval"`
	Jitter       float64 `yaml:"jitter"`
	AlertLead    float64 `yaml:"alert_lead"` // seconds the alert is shown before the hazard
	AlertSize    float64 `yaml:"alert_size"`
	RocketChance float64 `yaml:"rocket_chance"` // probability the hazard is a rocket
}

// CoinConfig defines coin size and pattern generation.
type CoinConfig struct {
	Radius   float64 `yaml:"radius"`
	Vertices int     `yaml:"vertices"`
	Interval float64 `yaml:"interval"`
	Jitter   float64 `yaml:"jitter"`
	MinCount int     `yaml:"min_count"`
	MaxCount int     `yaml:"max_count"`
}

// LaserConfig defines laser beams.
type LaserConfig struct {
	Interval float64 `yaml:"interval"`
	Jitter   float64 `yaml:"jitter"`
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
}

// RocketConfig defines heat-seeking rockets.
type RocketConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	AdjustRate       float64 `yaml:"adjust_rate"`
	MaxVerticalSpeed float64 `yaml:"max_vertical_speed"`
}

// ShurikenConfig defines spinning stars.
type ShurikenConfig struct {
	Size     float64 `yaml:"size"`
	Interval float64 `yaml:"interval"`
	Jitter   float64 `yaml:"jitter"`
	Spin     float64 `yaml:"spin"` // radians per second
}

// PowerupConfig defines power-up boxes and their effects.
type PowerupConfig struct {
	Size           float64 `yaml:"size"`
	Interval       float64 `yaml:"interval"`
	Jitter         float64 `yaml:"jitter"`
	VerticalSpeed  float64 `yaml:"vertical_speed"`
	Duration       float64 `yaml:"duration"`
	SlowMultiplier float64 `yaml:"slow_multiplier"`
	DistanceBonus  float64 `yaml:"distance_bonus"`
}

// QuizConfig defines the trivia countdown.
type QuizConfig struct {
	TimeLimit float64 `yaml:"time_limit"`
}

// AudioConfig defines the sound device.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	MusicVolume   float64 `yaml:"music_volume"`
	CoinVolume    float64 `yaml:"coin_volume"`
	PowerupVolume float64 `yaml:"powerup_volume"`
	LoopVolume    float64 `yaml:"loop_volume"` // thrust, running and laser loops
}

// Validate reports every field that would make the simulation meaningless.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("character.width", c.Character.Width)
	positive("character.height", c.Character.Height)
	positive("coins.radius", c.Coins.Radius)
	positive("coins.interval", c.Coins.Interval)
	positive("obstacles.interval", c.Obstacles.Interval)
	positive("lasers.interval", c.Lasers.Interval)
	positive("shurikens.interval", c.Shurikens.Interval)
	positive("powerups.interval", c.Powerups.Interval)
	positive("powerups.duration", c.Powerups.Duration)
	positive("quiz.time_limit", c.Quiz.TimeLimit)

	if c.World.FloorHeight < 0 || c.World.FloorHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("world.floor_height must be in [0, height), got %v", c.World.FloorHeight))
	}
	if c.Coins.Vertices < 3 {
		errs = append(errs, fmt.Errorf("coins.vertices must be at least 3, got %d", c.Coins.Vertices))
	}
	if c.Coins.MinCount < 1 || c.Coins.MaxCount < c.Coins.MinCount {
		errs = append(errs, fmt.Errorf("coins count range [%d, %d] is invalid", c.Coins.MinCount, c.Coins.MaxCount))
	}
	if c.Obstacles.AlertLead < 0 || c.Obstacles.AlertLead >= c.Obstacles.Interval {
		errs = append(errs, fmt.Errorf("obstacles.alert_lead must be in [0, interval), got %v", c.Obstacles.AlertLead))
	}
	if c.Obstacles.RocketChance < 0 || c.Obstacles.RocketChance > 1 {
		errs = append(errs, fmt.Errorf("obstacles.rocket_chance must be in [0, 1], got %v", c.Obstacles.RocketChance))
	}
	// Slowdown divides by the multiplier on expiry.
	if c.Powerups.SlowMultiplier <= 0 || c.Powerups.SlowMultiplier > 1 {
		errs = append(errs, fmt.Errorf("powerups.slow_multiplier must be in (0, 1], got %v", c.Powerups.SlowMultiplier))
	}
	if c.Character.Height+c.World.FloorHeight > c.World.Height {
		errs = append(errs, errors.New("character does not fit above the floor"))
	}

	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // coins or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to hazard speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction cut from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name from the command line.
// The empty string means "keep whatever the config file says".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}
