package runner

import (
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// Power is an effect granted by a correctly answered quiz.
type Power int

const (
	PowerShield Power = iota
	PowerSlowdown
	PowerDistance
	numPowers
)

// String returns the power's name.
func (p Power) String() string {
	switch p {
	case PowerShield:
		return "shield"
	case PowerSlowdown:
		return "slowdown"
	case PowerDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// powerState holds the timed effects and the power waiting on a quiz.
type powerState struct {
	shield     float64 // seconds left
	slow       float64 // seconds left
	pending    Power
	hasPending bool
}

// Pending returns the power waiting on the current quiz.
func (g *Game) Pending() (Power, bool) {
	return g.powers.pending, g.powers.hasPending
}

// rollPower picks the power a pickup will grant.
func (g *Game) rollPower() Power {
	return Power(g.rng.Intn(int(numPowers)))
}

// apply starts p's effect.
func (g *Game) apply(p Power) {
	pw := g.cfg.Powerups
	switch p {
	case PowerShield:
		g.powers.shield = pw.Duration
	case PowerSlowdown:
		if g.powers.slow <= 0 {
			g.scaleScrolling(pw.SlowMultiplier)
		}
		g.powers.slow = pw.Duration
	case PowerDistance:
		g.distance += pw.DistanceBonus
	}
	g.emit(core.Event{Kind: core.EventPowerApplied, Power: p.String()})
}

// updatePowers counts down the timed effects and undoes them on expiry.
func (g *Game) updatePowers(dt float64) {
	if g.powers.shield > 0 {
		g.powers.shield -= dt
		if g.powers.shield <= 0 {
			g.powers.shield = 0
			g.emit(core.Event{Kind: core.EventPowerExpired, Power: PowerShield.String()})
		}
	}
	if g.powers.slow > 0 {
		g.powers.slow -= dt
		if g.powers.slow <= 0 {
			g.powers.slow = 0
			g.scaleScrolling(1 / g.cfg.Powerups.SlowMultiplier)
			g.emit(core.Event{Kind: core.EventPowerExpired, Power: PowerSlowdown.String()})
		}
	}
}

// scaleScrolling multiplies the horizontal speed of everything that moves
// with the world. Rocket speed is recomputed every tick, so rockets are
// left alone.
func (g *Game) scaleScrolling(f float64) {
	for _, b := range g.scene.All() {
		switch b.Kind() {
		case scene.KindCharacter, scene.KindUI, scene.KindAlert, scene.KindHeatSeekRocket:
			continue
		}
		v := b.Velocity()
		b.SetVelocity(core.V(v.X()*f, v.Y()))
	}
}

func (g *Game) countLasers() int {
	return g.scene.CountKind(scene.KindVerticalLaser) + g.scene.CountKind(scene.KindHorizontalLaser)
}
