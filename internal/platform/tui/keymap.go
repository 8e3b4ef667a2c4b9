package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/byte-runner/internal/core"
)

// DefaultHoldWindow is how long thrust stays held after the last key
// repeat. Terminals only report presses, so a release is inferred once the
// repeats stop.
const DefaultHoldWindow = 400 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. option is the 1-based
// answer number for ActionAnswer.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, option int) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0
	case " ", "w", "up":
		return core.ActionThrust, 0
	case "p":
		return core.ActionPause, 0
	case "r":
		return core.ActionRestart, 0
	case "b", "esc":
		return core.ActionBack, 0
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionAnswer, int(key[0] - '0')
	}
	return core.ActionNone, 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// HoldTracker turns repeated thrust presses into one press and a later
// release.
type HoldTracker struct {
	window  time.Duration
	holding bool
	since   time.Time
	last    time.Time
}

// NewHoldTracker creates a tracker that releases after window without a
// repeat. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window}
}

// Holding reports whether thrust is currently held.
func (h *HoldTracker) Holding() bool {
	return h.holding
}

// Press records a thrust key at now. Only the first press of a hold
// reaches the frame.
func (h *HoldTracker) Press(now time.Time, frame *core.InputFrame) {
	h.last = now
	if h.holding {
		return
	}
	h.holding = true
	h.since = now
	frame.Press(core.ActionThrust)
}

// Expire releases thrust if no repeat arrived within the window.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	if !h.holding || now.Sub(h.last) < h.window {
		return
	}
	h.holding = false
	frame.Release(core.ActionThrust, h.last.Sub(h.since))
}

// Reset forgets any hold without emitting a release.
func (h *HoldTracker) Reset() {
	h.holding = false
}
