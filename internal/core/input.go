package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionThrust         // Space, W, Up - fly while held
	ActionAnswer         // 1-9 - pick a quiz option
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionAnswer:
		return "Answer"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState says whether a key went down or up.
type KeyState int

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// KeyEvent is a discrete key transition.
// Option is the 1-based answer number for ActionAnswer.
// Held is how long the key had been down when it was released.
type KeyEvent struct {
	Action Action
	State  KeyState
	Option int
	Held   time.Duration
}

// InputFrame holds the key events delivered during one simulation tick,
// in arrival order.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key-down for a.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, State: KeyPressed})
}

// Release records a key-up for a after it was held for d.
func (f *InputFrame) Release(a Action, d time.Duration) {
	f.Events = append(f.Events, KeyEvent{Action: a, State: KeyReleased, Held: d})
}

// Answer records a quiz option key press. option is 1-based.
func (f *InputFrame) Answer(option int) {
	f.Events = append(f.Events, KeyEvent{Action: ActionAnswer, State: KeyPressed, Option: option})
}

// Has returns true if a was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a && ev.State == KeyPressed {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]KeyEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
