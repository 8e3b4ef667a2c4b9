package runner

import (
	"fmt"

	"github.com/vovakirdan/byte-runner/internal/audio"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// handlerFor picks the collision response for a body the character can
// touch. Every handler ignores contacts outside Playing, so the first
// contact that changes the mode wins for the rest of the dispatch.
func (g *Game) handlerFor(k scene.Kind) scene.Handler {
	switch {
	case k.Hazard():
		return scene.HandlerFunc(g.onHazard)
	case k == scene.KindCoin:
		return scene.HandlerFunc(g.onCoin)
	case k == scene.KindPowerup:
		return scene.HandlerFunc(g.onPowerup)
	default:
		panic(fmt.Sprintf("runner: no collision handler for %s", k))
	}
}

func (g *Game) onHazard(s *scene.Scene, c scene.Contact) {
	if g.mode != core.ModePlaying {
		return
	}
	if g.powers.shield > 0 {
		s.RemoveHandle(c.Target)
		return
	}
	g.gameOver()
}

func (g *Game) onCoin(s *scene.Scene, c scene.Contact) {
	if g.mode != core.ModePlaying {
		return
	}
	g.score++
	sound := audio.SoundCoinLow
	if g.coinToggle {
		sound = audio.SoundCoinHigh
	}
	g.coinToggle = !g.coinToggle
	g.audio.PlayOnChannel(audio.ChannelCoin, sound, false)
	s.RemoveHandle(c.Target)
}

func (g *Game) onPowerup(s *scene.Scene, c scene.Contact) {
	if g.mode != core.ModePlaying {
		return
	}
	g.powers.pending = g.rollPower()
	g.powers.hasPending = true
	s.RemoveHandle(c.Target)
	g.enterQuiz()
}

// gameOver ends the run. The scene freezes at once; the game-over screen
// replaces it on the next tick.
func (g *Game) gameOver() {
	g.mode = core.ModeGameOver
	g.thrusting = false
	g.stopLoops()
	g.audio.StopChannel(audio.ChannelCoin)
	g.audio.StopChannel(audio.ChannelPowerup)
	g.audio.PlayOnChannel(audio.ChannelSFX, audio.SoundGameOver, false)
	g.scene.Freeze()
	g.emit(core.Event{Kind: core.EventGameOver})
}

// showGameOver swaps the frozen scene for the game-over screen once.
func (g *Game) showGameOver() {
	if g.shownGameOver {
		return
	}
	g.shownGameOver = true
	g.scene.Clear()

	w := g.cfg.World
	cx, cy := w.Width/2, w.Height/2
	g.spawnBody(scene.NewBox(core.V(cx, cy), w.Width*0.7, w.Height*0.5, core.ColorRed, scene.KindUI), texPanel)
	g.spawnText(core.V(cx, cy+70), 400, 40, "GAME OVER", fontTitle, core.ColorRed)
	g.spawnText(core.V(cx, cy), 600, 30,
		fmt.Sprintf("Score: %d   Time: %.1fs   Dist: %.0fm", g.score, g.elapsed, g.distance),
		fontHUD, core.ColorWhite)
	g.spawnText(core.V(cx, cy-70), 400, 30, "Press R to restart", fontHUD, core.ColorGray)
	g.scene.Freeze()
}
