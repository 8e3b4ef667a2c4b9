package runner

import (
	"math"

	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// SteerVertical moves vy toward the target's side of y at rate units/s² for
// dt seconds and clamps the result to ±maxSpeed.
func SteerVertical(y, vy, targetY, rate, maxSpeed, dt float64) float64 {
	switch {
	case targetY > y:
		vy += rate * dt
	case targetY < y:
		vy -= rate * dt
	}
	return core.ClampF(vy, -maxSpeed, maxSpeed)
}

// rocketSpeed is the rocket's horizontal speed, before sign.
func (g *Game) rocketSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Rockets.Speed, g.score, g.elapsed) * g.speedFactor()
}

// steerRockets turns every rocket that has not yet passed the character
// toward it. A rocket behind the character keeps its last vertical speed.
func (g *Game) steerRockets(dt float64) {
	ch := g.mustBody(g.character, "character").Centroid()
	r := g.cfg.Rockets
	vx := -g.rocketSpeed()

	for _, b := range g.scene.OfKind(scene.KindHeatSeekRocket) {
		pos, vel := b.Centroid(), b.Velocity()
		vy := vel.Y()
		if pos.X() > ch.X() {
			vy = SteerVertical(pos.Y(), vy, ch.Y(), r.AdjustRate, math.Abs(r.MaxVerticalSpeed), dt)
		}
		b.SetVelocity(core.V(vx, vy))
	}
}
