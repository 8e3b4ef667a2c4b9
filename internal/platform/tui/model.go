package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/games/runner"
	"github.com/vovakirdan/byte-runner/internal/storage"
)

// DefaultPublishEvery is how many ticks pass between spectator snapshots.
const DefaultPublishEvery = 6

// ModelConfig wires a Model to the rest of the program. Only Runtime is
// required.
type ModelConfig struct {
	Runtime    core.RuntimeConfig
	Store      *storage.Store
	Logger     *log.Logger
	Player     string
	HoldWindow time.Duration

	// Publish receives a snapshot every PublishEvery ticks and on game over.
	Publish      func(runner.Snapshot)
	PublishEvery int

	// Embedded models return to a parent menu on Back instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for a Byte Runner session.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	canvas     *Canvas
	renderer   *Renderer
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState

	publish      func(runner.Snapshot)
	publishEvery int
	ticks        uint64

	embedded   bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for game.
func NewModel(game *runner.Game, mc ModelConfig) Model {
	cfg := mc.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := mc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	every := mc.PublishEvery
	if every <= 0 {
		every = DefaultPublishEvery
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	worldW, worldH := game.World()

	return Model{
		game:         game,
		screen:       screen,
		canvas:       NewCanvas(screen, worldW, worldH),
		renderer:     NewRenderer(),
		store:        mc.Store,
		logger:       logger,
		config:       cfg,
		player:       mc.Player,
		keyMapper:    NewKeyMapper(),
		hold:         NewHoldTracker(mc.HoldWindow),
		inputFrame:   core.NewInputFrame(),
		publish:      mc.Publish,
		publishEvery: every,
		embedded:     mc.Embedded,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed, "player", m.player)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, option := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		// Leaving mid-run needs a pause first so a stray Esc doesn't end it.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	case core.ActionThrust:
		m.hold.Press(now, &m.inputFrame)
	case core.ActionAnswer:
		m.inputFrame.Answer(option)
	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world is resolution
// independent, so the run carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now, &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	if m.publish != nil && m.ticks%uint64(m.publishEvery) == 0 {
		m.publishSnapshot()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleEvent reacts to one game event after a tick.
func (m *Model) handleEvent(ev core.Event) {
	m.logEvent(ev)
	switch ev.Kind {
	case core.EventQuizStarted, core.EventQuizAnswered, core.EventQuizExpired:
		// The game drops thrust across a quiz, so a key still
		// repeating afterwards must count as a fresh press.
		m.hold.Reset()
	case core.EventGameOver:
		m.saveRun()
		m.hold.Reset()
		m.publishSnapshot()
	case core.EventRestart:
		m.runSaved = false
	}
}

func (m *Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventGameOver:
		m.logger.Info("game over",
			"score", m.gameState.Score,
			"distance", fmt.Sprintf("%.0fm", m.gameState.Distance),
			"time", fmt.Sprintf("%.1fs", m.gameState.Elapsed),
		)
	case core.EventQuizAnswered:
		m.logger.Debug(ev.Kind.String(), "power", ev.Power, "correct", ev.Correct)
	default:
		m.logger.Debug(ev.Kind.String(), "power", ev.Power)
	}
}

// saveRun records the finished run once per game over.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		Distance: m.gameState.Distance,
		Duration: m.gameState.Elapsed,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save run", "error", err)
	}
}

func (m *Model) publishSnapshot() {
	if m.publish == nil {
		return
	}
	m.publish(m.game.Snapshot())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".byterunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw rasterizes the current frame into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	m.game.Draw(m.canvas)
	if m.gameState.Paused {
		y := m.screen.Height() / 2
		m.screen.DrawTextCentered(y, " PAUSED ", core.ColorYellow)
		m.screen.DrawTextCentered(y+1, " P resume  B menu  Q quit ", core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return m.renderer.Render(m.screen)
}

// BackToMenu reports whether the player asked to leave for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game *runner.Game, mc ModelConfig) error {
	model := NewModel(game, mc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
