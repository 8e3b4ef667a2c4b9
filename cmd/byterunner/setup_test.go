package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/byte-runner/internal/audio"
	"github.com/vovakirdan/byte-runner/internal/config"
)

// stubSpeaker replaces the host audio device for one test.
func stubSpeaker(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := openSpeaker
	openSpeaker = func(*audio.BeepDevice) error {
		calls++
		return err
	}
	t.Cleanup(func() { openSpeaker = orig })
	return &calls
}

func TestNewGameFailsWithoutAudioDevice(t *testing.T) {
	stubSpeaker(t, errors.New("audio: init speaker: no device"))
	flagMute = false
	t.Cleanup(func() { flagMute = false })

	game, dev, err := newGame(config.DefaultRunnerConfig(), log.New(io.Discard))
	if err == nil {
		t.Fatal("expected an error when the audio device cannot be opened")
	}
	if game != nil || dev != nil {
		t.Error("no game should be built without its audio device")
	}
	if !strings.Contains(err.Error(), "no device") || !strings.Contains(err.Error(), "--mute") {
		t.Errorf("error %q should carry the cause and point at --mute", err)
	}
}

func TestNewAudioSilentModes(t *testing.T) {
	calls := stubSpeaker(t, errors.New("no device"))

	tests := []struct {
		name    string
		enabled bool
		mute    bool
	}{
		{"muted", true, true},
		{"disabled in config", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultRunnerConfig().Audio
			cfg.Enabled = tt.enabled
			dev, err := newAudio(cfg, tt.mute)
			if err != nil {
				t.Fatalf("newAudio() failed: %v", err)
			}
			if _, ok := dev.(audio.Nop); !ok {
				t.Errorf("device = %T, expected audio.Nop", dev)
			}
		})
	}
	if *calls != 0 {
		t.Errorf("speaker opened %d times, expected none", *calls)
	}
}

func TestNewAudioOpensSpeaker(t *testing.T) {
	calls := stubSpeaker(t, nil)

	dev, err := newAudio(config.DefaultRunnerConfig().Audio, false)
	if err != nil {
		t.Fatalf("newAudio() failed: %v", err)
	}
	if _, ok := dev.(*audio.BeepDevice); !ok {
		t.Errorf("device = %T, expected *audio.BeepDevice", dev)
	}
	if *calls != 1 {
		t.Errorf("speaker opened %d times, expected 1", *calls)
	}
}
