package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/games/runner"
	"github.com/vovakirdan/byte-runner/internal/storage"
)

func newTestModel(t *testing.T, mc ModelConfig) Model {
	t.Helper()
	mc.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	m := NewModel(runner.New(), mc)
	m.Init()
	return m
}

// tick advances m by one simulation step at now.
func tick(m Model, now time.Time) Model {
	next, _ := m.handleTick(now)
	return next.(Model)
}

func pressKey(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var snaps []runner.Snapshot
	m := newTestModel(t, ModelConfig{
		Store:        store,
		Player:       "tester",
		Publish:      func(s runner.Snapshot) { snaps = append(snaps, s) },
		PublishEvery: 30,
	})

	// With no input the character stays on the floor, where every
	// obstacle is aimed.
	now := time.Unix(0, 0)
	for range 60 * 600 {
		now = now.Add(time.Second / 60)
		m = tick(m, now)
		if m.State().GameOver {
			break
		}
	}
	if !m.State().GameOver {
		t.Fatal("run never ended")
	}
	final := m.State()

	for range 30 {
		now = now.Add(time.Second / 60)
		m = tick(m, now)
	}

	runs, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected exactly 1", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Score != final.Score || r.Duration != final.Elapsed {
		t.Errorf("saved run = %+v, expected state %+v", r, final)
	}

	if len(snaps) == 0 {
		t.Fatal("no snapshots were published")
	}
	if last := snaps[len(snaps)-1]; last.Mode != core.ModeGameOver.String() {
		t.Errorf("last snapshot mode = %q, expected game over", last.Mode)
	}
}

func TestModelThrustLiftsCharacter(t *testing.T) {
	m := newTestModel(t, ModelConfig{HoldWindow: time.Second})
	now := time.Unix(0, 0)

	m, _ = func() (Model, tea.Cmd) {
		next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeySpace}, now)
		return next.(Model), cmd
	}()
	for range 20 {
		now = now.Add(time.Second / 60)
		m = tick(m, now)
	}
	if !m.hold.Holding() {
		t.Fatal("thrust should be held inside the window")
	}

	snap := m.game.Snapshot()
	var y float64
	for _, b := range snap.Bodies {
		if b.Kind == "character" {
			y = b.Y
		}
	}
	if y <= 85 {
		t.Errorf("character y = %v, expected above the floor while thrusting", y)
	}

	now = now.Add(2 * time.Second)
	m = tick(m, now)
	if m.hold.Holding() {
		t.Error("thrust should release once key repeats stop")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	standalone := newTestModel(t, ModelConfig{})
	standalone = pressKey(standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if !standalone.IsQuitting() {
		t.Error("back should quit a standalone game")
	}

	embedded := newTestModel(t, ModelConfig{Embedded: true})
	embedded = pressKey(embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if embedded.BackToMenu() || embedded.IsQuitting() {
		t.Fatal("back mid-run should be ignored until paused")
	}

	embedded = pressKey(embedded, runeKey('p'))
	embedded = tick(embedded, time.Unix(0, 0))
	if !embedded.State().Paused {
		t.Fatal("p should pause the run")
	}
	embedded = pressKey(embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
	if !strings.Contains(embedded.View(), "PAUSED") {
		t.Error("paused view should show the banner")
	}

	embedded = pressKey(embedded, runeKey('q'))
	if !embedded.IsQuitting() || embedded.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestModelViewDrawsWorld(t *testing.T) {
	m := newTestModel(t, ModelConfig{})
	m = tick(m, time.Unix(0, 0))

	out := m.View()
	if lines := strings.Split(out, "\n"); len(lines) != 24 {
		t.Errorf("view has %d lines, expected the 24 row screen", len(lines))
	}
	if !strings.Contains(m.screen.String(), "0000") {
		t.Error("HUD score should be on screen")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m.View()
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuizRearmsThrust(t *testing.T) {
	tests := []struct {
		name  string
		kind  core.EventKind
		fresh bool
	}{
		{"quiz started", core.EventQuizStarted, true},
		{"quiz answered", core.EventQuizAnswered, true},
		{"quiz expired", core.EventQuizExpired, true},
		{"power applied", core.EventPowerApplied, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, ModelConfig{})
			now := time.Unix(0, 0)

			next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeySpace}, now)
			m = next.(Model)
			m.inputFrame.Clear()

			m.handleEvent(core.Event{Kind: tt.kind})

			// A key repeat well inside the hold window.
			next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeySpace}, now.Add(100*time.Millisecond))
			m = next.(Model)

			pressed := len(m.inputFrame.Events) == 1 &&
				m.inputFrame.Events[0].Action == core.ActionThrust &&
				m.inputFrame.Events[0].State == core.KeyPressed
			if pressed != tt.fresh {
				t.Errorf("events = %+v, fresh press expected = %v", m.inputFrame.Events, tt.fresh)
			}
			if !m.hold.Holding() {
				t.Error("thrust should be held after the repeat")
			}
		})
	}
}
