package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/byte-runner/internal/config"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/storage"
)

func openSessionStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sessionKey(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openSessionStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "runner", Player: "ana", Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, "runner", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	if !strings.Contains(m.View(), "42") {
		t.Error("menu should show the best score")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "runner", core.RuntimeConfig{ScreenW: 60, ScreenH: 20})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Choice() != ChoiceScores {
		t.Errorf("Choice() = %v, expected scores", m.Choice())
	}
	if cmd == nil {
		t.Error("a standalone menu should quit after a selection")
	}
}

func TestScoreboardBack(t *testing.T) {
	store := openSessionStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "runner", Player: "bo", Score: 7, Distance: 120}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	sb := NewScoreboardModel(store, "runner", "Byte Runner", 80, 24)
	if v := sb.View(); !strings.Contains(v, "bo") || !strings.Contains(v, "1 runs") {
		t.Errorf("scoreboard view is missing the run:\n%s", v)
	}

	sb.embedded = true
	next, cmd := sb.Update(runeKey('b'))
	sb = next.(ScoreboardModel)
	if !sb.GoingBack() || sb.IsQuitting() {
		t.Error("b should go back without quitting")
	}
	if cmd != nil {
		t.Error("an embedded scoreboard should not quit the program")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openSessionStore(t)
	m := NewSessionModel(SessionConfig{
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Player:  "tester",
		Runner:  config.DefaultRunnerConfig(),
	})

	// Play.
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("selecting play should start a game")
	}
	m = sessionKey(m, runeKey('p'))
	m = sessionKey(m, TickMsg(time.Unix(0, 0)))
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("back from a paused game should return to the menu")
	}

	// Ticks from the finished game are harmless on the menu.
	m = sessionKey(m, TickMsg(time.Unix(1, 0)))

	// High scores.
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatal("selecting high scores should open the scoreboard")
	}
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatal("back from the scoreboard should return to the menu")
	}

	m = sessionKey(m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q on the menu should end the session")
	}
}
