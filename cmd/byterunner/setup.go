package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/byte-runner/internal/assets"
	"github.com/vovakirdan/byte-runner/internal/audio"
	"github.com/vovakirdan/byte-runner/internal/config"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/games/runner"
	"github.com/vovakirdan/byte-runner/internal/platform/spectate"
	"github.com/vovakirdan/byte-runner/internal/platform/tui"
	"github.com/vovakirdan/byte-runner/internal/storage"
)

// Flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagSpectate   string
	flagLogFile    string
	flagHoldMS     int
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the game)")
	cmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "Thrust stays on this long after the last key repeat")
}

// loadRunnerConfig reads the config file and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger logs to --log-file, or nowhere when it is unset.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "byterunner",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openSpeaker starts playback on the host's audio device.
var openSpeaker = (*audio.BeepDevice).Open

// newAudio opens the speaker unless sound is disabled. A game that wants
// sound but has no device does not start; --mute runs it silently.
func newAudio(cfg config.AudioConfig, mute bool) (audio.Device, error) {
	if mute || !cfg.Enabled {
		return audio.Nop{}, nil
	}
	dev := audio.NewBeepDevice(audio.Options{
		SampleRate:  cfg.SampleRate,
		MusicVolume: cfg.MusicVolume,
	})
	if err := openSpeaker(dev); err != nil {
		return nil, fmt.Errorf("%w (use --mute to play without sound)", err)
	}
	return dev, nil
}

// newGame builds a game with every texture and font resolved up front.
func newGame(cfg config.RunnerConfig, logger *log.Logger) (*runner.Game, audio.Device, error) {
	cache := assets.NewDefaultCache()
	if err := cache.Preload(runner.TexturePaths(), runner.FontPaths()); err != nil {
		return nil, nil, fmt.Errorf("sprite manifest: %w", err)
	}

	dev, err := newAudio(cfg.Audio, flagMute)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("audio ready", "muted", flagMute || !cfg.Audio.Enabled)
	game := runner.New(
		runner.WithConfig(cfg),
		runner.WithAssets(cache),
		runner.WithAudio(dev),
	)
	return game, dev, nil
}

// openStore opens the runs database, or returns nil so the game still
// works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// startSpectate serves the spectator feed until ctx is done. It returns
// nil when --spectate is unset.
func startSpectate(ctx context.Context, logger *log.Logger) func(runner.Snapshot) {
	if flagSpectate == "" {
		return nil
	}
	hub := spectate.NewHub(logger)
	go func() {
		if err := hub.Serve(ctx, flagSpectate); err != nil {
			logger.Error("spectator feed stopped", "error", err)
		}
	}()
	return func(s runner.Snapshot) {
		if err := hub.Publish("snapshot", s); err != nil {
			logger.Warn("could not publish snapshot", "error", err)
		}
	}
}

// session bundles everything a local play session needs.
type session struct {
	game    *runner.Game
	audio   audio.Device
	store   *storage.Store
	logger  *log.Logger
	publish func(runner.Snapshot)
	cancel  context.CancelFunc
	closeFn func()
}

func newSession() (*session, error) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, err
	}
	game, dev, err := newGame(cfg, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		game:    game,
		audio:   dev,
		store:   openStore(),
		logger:  logger,
		publish: startSpectate(ctx, logger),
		cancel:  cancel,
		closeFn: closeLog,
	}, nil
}

func (s *session) modelConfig(rt core.RuntimeConfig) tui.ModelConfig {
	return tui.ModelConfig{
		Runtime:    rt,
		Store:      s.store,
		Logger:     s.logger,
		Player:     os.Getenv("USER"),
		HoldWindow: time.Duration(flagHoldMS) * time.Millisecond,
		Publish:    s.publish,
	}
}

func (s *session) Close() {
	s.cancel()
	if err := s.audio.Close(); err != nil {
		s.logger.Warn("closing audio", "error", err)
	}
	if s.store != nil {
		s.store.Close()
	}
	s.closeFn()
}
