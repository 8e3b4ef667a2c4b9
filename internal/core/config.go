package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDelta returns the simulated seconds covered by one tick.
func (c RuntimeConfig) TickDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// Mode is the top-level state of a run.
type Mode int

const (
	ModePlaying Mode = iota
	ModeQuiz
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeQuiz:
		return "quiz"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the status the platform needs after every tick.
type GameState struct {
	Mode     Mode
	Score    int     // Coins collected
	Distance float64 // Metres travelled
	Elapsed  float64 // Seconds survived
	GameOver bool
	Paused   bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventQuizStarted EventKind = iota
	EventQuizAnswered
	EventQuizExpired
	EventPowerApplied
	EventPowerExpired
	EventGameOver
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuizStarted:
		return "quiz_started"
	case EventQuizAnswered:
		return "quiz_answered"
	case EventQuizExpired:
		return "quiz_expired"
	case EventPowerApplied:
		return "power_applied"
	case EventPowerExpired:
		return "power_expired"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by the game for logging and the spectator feed.
type Event struct {
	Kind    EventKind
	Power   string // power involved, if any
	Correct bool   // quiz answer outcome
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
