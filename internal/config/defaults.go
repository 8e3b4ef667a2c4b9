package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used if that file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:           1000,
			Height:          500,
			FloorHeight:     50,
			DespawnX:        -50,
			ScrollSpeed:     600,
			MetersPerSecond: 12.42,
		},
		Physics: RunnerPhysics{
			Gravity: 1000,
			Thrust:  1600,
		},
		Character: CharacterConfig{
			X:      150,
			Width:  45,
			Height: 70,
		},
		Obstacles: ObstacleConfig{
			Width:        100,
			Height:       70,
			Speed:        1500,
			Interval:     7,
			AlertLead:    2,
			AlertSize:    40,
			RocketChance: 0.5,
		},
		Coins: CoinConfig{
			Radius:   15,
			Vertices: 12,
			Interval: 3,
			Jitter:   1.5,
			MinCount: 4,
			MaxCount: 12,
		},
		Lasers: LaserConfig{
			Interval: 6,
			Jitter:   3,
			Length:   200,
			Width:    40,
		},
		Rockets: RocketConfig{
			Width:            80,
			Height:           40,
			Speed:            1200,
			AdjustRate:       250,
			MaxVerticalSpeed: 150,
		},
		Shurikens: ShurikenConfig{
			Size:     60,
			Interval: 14,
			Spin:     math.Pi,
		},
		Powerups: PowerupConfig{
			Size:           60,
			Interval:       12,
			VerticalSpeed:  300,
			Duration:       10,
			SlowMultiplier: 0.5,
			DistanceBonus:  100,
		},
		Quiz: QuizConfig{
			TimeLimit: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300, // five minutes to max difficulty
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
			},
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    44100,
			MusicVolume:   0.25,
			CoinVolume:    0.1667,
			PowerupVolume: 0.05,
			LoopVolume:    0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
