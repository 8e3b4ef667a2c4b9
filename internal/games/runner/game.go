// Package runner implements Byte Runner, a side-scrolling arcade game.
// The player flies a character past obstacles, collects coins and answers
// Go trivia to earn temporary power-ups.
//
// All simulation runs in a fixed 1000x500 world with y pointing up. The
// platform maps world space to the terminal through a Renderer.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/byte-runner/internal/assets"
	"github.com/vovakirdan/byte-runner/internal/audio"
	"github.com/vovakirdan/byte-runner/internal/config"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// frameTime is how long each animation frame is shown, in seconds.
const frameTime = 0.1

// Game implements the runner logic.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	audio      audio.Device
	assets     *assets.Cache
	rng        *rand.Rand

	scene   *scene.Scene
	visuals map[scene.Handle]*visual

	// Well-known bodies. A handle is zeroed when its body leaves the scene.
	character   scene.Handle
	backgrounds [2]scene.Handle
	floors      [2]scene.Handle
	alert       scene.Handle
	hud         hud

	mode      core.Mode
	paused    bool
	thrusting bool
	score     int
	distance  float64
	elapsed   float64
	ticks     uint64

	timers spawnTimers
	powers powerState
	quiz   *quizState
	loops  loopState

	shownGameOver bool
	coinToggle    bool
	animClock     float64
	frame         int

	events []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default tunables.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithAudio sets the sound device. The default is silent.
func WithAudio(d audio.Device) Option {
	return func(g *Game) { g.audio = d }
}

// WithAssets sets the sprite cache. The default uses the embedded manifest.
func WithAssets(c *assets.Cache) Option {
	return func(g *Game) { g.assets = c }
}

// New creates a game ready to step with the default runtime config.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:   config.DefaultRunnerConfig(),
		audio: audio.Nop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.assets == nil {
		g.assets = assets.NewDefaultCache()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.visuals = make(map[scene.Handle]*visual)
	g.scene = scene.New()
	g.scene.OnRemove(g.forget)

	g.audio.SetVolume(audio.ChannelCoin, g.cfg.Audio.CoinVolume)
	g.audio.SetVolume(audio.ChannelPowerup, g.cfg.Audio.PowerupVolume)
	g.audio.SetVolume(audio.ChannelThrust, g.cfg.Audio.LoopVolume)
	g.audio.SetVolume(audio.ChannelRunning, g.cfg.Audio.LoopVolume)
	g.audio.SetVolume(audio.ChannelLaser, g.cfg.Audio.LoopVolume)
	g.audio.PlayMusic(audio.SoundMusic, true)

	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Byte Runner"
}

// Reset reseeds the RNG from cfg and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- gameplay randomness
	g.restart()
}

// restart destroys every body and rebuilds the starting world. The RNG
// keeps its state so consecutive runs differ.
func (g *Game) restart() {
	g.stopLoops()
	g.scene.Clear()

	g.mode = core.ModePlaying
	g.paused = false
	g.thrusting = false
	g.score = 0
	g.distance = 0
	g.elapsed = 0
	g.ticks = 0
	g.timers = spawnTimers{}
	g.rollAllJitter()
	g.powers = powerState{}
	g.quiz = nil
	g.shownGameOver = false
	g.coinToggle = false
	g.animClock = 0
	g.frame = 0

	g.buildWorld()
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(g.runtime.TickDelta(), in)
}

// Advance advances the game by dt seconds.
func (g *Game) Advance(dt float64, in core.InputFrame) core.StepResult {
	g.events = nil
	g.handleInput(in)

	switch g.mode {
	case core.ModePlaying:
		if !g.paused {
			g.ticks++
			g.updatePlaying(dt)
		}
	case core.ModeQuiz:
		g.ticks++
		g.updateQuiz(dt)
	case core.ModeGameOver:
		g.showGameOver()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:     g.mode,
		Score:    g.score,
		Distance: g.distance,
		Elapsed:  g.elapsed,
		GameOver: g.mode == core.ModeGameOver,
		Paused:   g.paused,
	}
}

// World returns the size of the playing field in world units.
func (g *Game) World() (w, h float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Scene exposes the body registry for inspection.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

func (g *Game) handleInput(in core.InputFrame) {
	for _, ev := range in.Events {
		switch g.mode {
		case core.ModePlaying:
			switch {
			case ev.Action == core.ActionThrust:
				g.thrusting = ev.State == core.KeyPressed
			case ev.Action == core.ActionPause && ev.State == core.KeyPressed:
				g.paused = !g.paused
			}
		case core.ModeQuiz:
			if ev.Action == core.ActionAnswer && ev.State == core.KeyPressed {
				g.answer(ev.Option)
			}
		case core.ModeGameOver:
			if ev.Action == core.ActionRestart && ev.State == core.KeyPressed {
				g.restart()
				g.emit(core.Event{Kind: core.EventRestart})
				return
			}
		}
	}
}

// updatePlaying runs one Playing tick. The order matters: collisions see
// post-integration positions, and nothing else runs once a handler has
// changed the mode.
func (g *Game) updatePlaying(dt float64) {
	g.scene.Tick(dt)
	g.moveCharacter(dt)
	g.updateMovementSounds()
	g.bouncePowerups()
	g.spinShurikens(dt)
	g.steerRockets(dt)

	g.scene.CheckCollisions()
	if g.mode != core.ModePlaying {
		return
	}

	g.updatePowers(dt)
	g.animate(dt)
	g.spawn(dt)
	g.wrapScenery()

	g.distance += g.cfg.World.MetersPerSecond * dt
	g.elapsed += dt
	g.updateHUD()

	g.reap()
	g.updateLaserSound()
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// mustBody resolves a well-known handle. A miss means the game lost track
// of its own bodies.
func (g *Game) mustBody(h scene.Handle, what string) *scene.Body {
	b, ok := g.scene.Body(h)
	if !ok {
		panic("runner: missing " + what + " body")
	}
	return b
}

// speedFactor is the multiplier applied to scrolling while slowdown is active.
func (g *Game) speedFactor() float64 {
	if g.powers.slow > 0 {
		return g.cfg.Powerups.SlowMultiplier
	}
	return 1
}

// scrollVelocity is the velocity of everything that drifts with the world.
func (g *Game) scrollVelocity() core.Vec {
	return core.V(-g.cfg.World.ScrollSpeed*g.speedFactor(), 0)
}
