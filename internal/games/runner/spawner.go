package runner

import (
	"github.com/vovakirdan/byte-runner/internal/audio"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// spawnTimer accumulates time toward the next spawn of one entity type.
type spawnTimer struct {
	elapsed float64
	jitter  float64 // extra delay rolled for the current cycle
}

// due reports whether the timer has run past interval plus its jitter.
func (t *spawnTimer) due(interval float64) bool {
	return t.elapsed >= interval+t.jitter
}

// spawnTimers holds one accumulator per spawner.
type spawnTimers struct {
	coins     spawnTimer
	obstacles spawnTimer
	lasers    spawnTimer
	shurikens spawnTimer
	powerups  spawnTimer
}

// fire resets t to zero and rolls the jitter for the next cycle. The
// remainder past the interval is dropped.
func (g *Game) fire(t *spawnTimer, maxJitter float64) {
	t.elapsed = 0
	t.jitter = 0
	if maxJitter > 0 {
		t.jitter = g.rng.Float64() * maxJitter
	}
}

func (g *Game) rollAllJitter() {
	g.fire(&g.timers.coins, g.cfg.Coins.Jitter)
	g.fire(&g.timers.obstacles, g.cfg.Obstacles.Jitter)
	g.fire(&g.timers.lasers, g.cfg.Lasers.Jitter)
	g.fire(&g.timers.shurikens, g.cfg.Shurikens.Jitter)
	g.fire(&g.timers.powerups, g.cfg.Powerups.Jitter)
}

// interval scales a base spawn interval by the current difficulty.
func (g *Game) interval(base float64) float64 {
	return g.difficulty.Interval(base, g.score, g.elapsed)
}

// spawn advances every spawner and creates whatever is due.
func (g *Game) spawn(dt float64) {
	t := &g.timers
	slowed := g.powers.slow > 0

	t.coins.elapsed += dt
	if t.coins.due(g.interval(g.cfg.Coins.Interval)) {
		g.spawnCoins()
		g.fire(&t.coins, g.cfg.Coins.Jitter)
	}

	if !slowed {
		t.obstacles.elapsed += dt
	}
	g.updateObstacleSpawner()

	t.lasers.elapsed += dt
	if t.lasers.due(g.interval(g.cfg.Lasers.Interval)) && g.scene.CountKind(scene.KindPowerup) == 0 {
		g.spawnLaser()
		g.fire(&t.lasers, g.cfg.Lasers.Jitter)
	}

	t.shurikens.elapsed += dt
	if t.shurikens.due(g.interval(g.cfg.Shurikens.Interval)) {
		g.spawnShuriken()
		g.fire(&t.shurikens, g.cfg.Shurikens.Jitter)
	}

	if !slowed {
		t.powerups.elapsed += dt
	}
	if t.powerups.due(g.interval(g.cfg.Powerups.Interval)) {
		g.spawnPowerup()
		g.fire(&t.powerups, g.cfg.Powerups.Jitter)
	}
}

// updateObstacleSpawner shows the alert ahead of the next obstacle, keeps it
// level with the character and finally launches the hazard at the alert's
// height.
func (g *Game) updateObstacleSpawner() {
	t := &g.timers.obstacles
	due := g.interval(g.cfg.Obstacles.Interval) + t.jitter
	charY := g.mustBody(g.character, "character").Centroid().Y()

	if !g.alert.Valid() && t.elapsed >= due-g.cfg.Obstacles.AlertLead {
		size := g.cfg.Obstacles.AlertSize
		g.alert = g.spawnBody(
			scene.NewBox(core.V(g.cfg.World.Width-size/2, charY), size, size, core.ColorRed, scene.KindAlert),
			texAlert,
		)
	}

	if !g.alert.Valid() {
		return
	}
	alert := g.mustBody(g.alert, "alert")
	if t.elapsed < due {
		alert.SetCentroid(core.V(alert.Centroid().X(), charY))
		return
	}

	y := alert.Centroid().Y()
	g.scene.RemoveHandle(g.alert)
	if g.rng.Float64() < g.cfg.Obstacles.RocketChance {
		g.spawnRocket(y)
	} else {
		g.spawnObstacle(y)
	}
	g.fire(t, g.cfg.Obstacles.Jitter)
}

// watchCharacter registers the collision response for a newly spawned body.
func (g *Game) watchCharacter(target scene.Handle) {
	g.scene.Watch(g.character, target, g.handlerFor(g.mustBody(target, "spawned").Kind()))
}

func (g *Game) spawnObstacle(y float64) scene.Handle {
	o := g.cfg.Obstacles
	b := scene.NewBox(core.V(g.cfg.World.Width+o.Width/2, y), o.Width, o.Height, core.ColorMagenta, scene.KindObstacle)
	speed := g.difficulty.Speed(o.Speed, g.score, g.elapsed)
	b.SetVelocity(core.V(-speed*g.speedFactor(), 0))
	h := g.spawnBody(b, texObstacle)
	g.watchCharacter(h)
	return h
}

func (g *Game) spawnRocket(y float64) scene.Handle {
	r := g.cfg.Rockets
	b := scene.NewBox(core.V(g.cfg.World.Width+r.Width/2, y), r.Width, r.Height, core.ColorOrange, scene.KindHeatSeekRocket)
	b.SetVelocity(core.V(-g.rocketSpeed(), 0))
	h := g.spawnBody(b, texRocket...)
	g.watchCharacter(h)
	return h
}

func (g *Game) spawnCoins() {
	c := g.cfg.Coins
	bounds := patternBounds{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Floor:  g.cfg.World.FloorHeight,
		Radius: c.Radius,
	}

	var centres []core.Vec
	switch coinPattern(g.rng.Intn(int(numPatterns))) {
	case patternLinear:
		n := c.MinCount + g.rng.Intn(c.MaxCount-c.MinCount+1)
		centres = linearRow(g.rng, bounds, n)
	case patternGrid:
		centres = rectGrid(g.rng, bounds)
	default:
		centres = zigzag(g.rng, bounds)
	}

	for _, p := range centres {
		g.spawnCoin(p)
	}
}

func (g *Game) spawnCoin(p core.Vec) scene.Handle {
	b := scene.NewBody(core.RegularPolygon(g.cfg.Coins.Vertices, g.cfg.Coins.Radius), 1, core.ColorYellow, scene.KindCoin)
	b.SetCentroid(p)
	b.SetVelocity(g.scrollVelocity())
	h := g.spawnBody(b, texCoin...)
	g.watchCharacter(h)
	return h
}

func (g *Game) spawnLaser() scene.Handle {
	l := g.cfg.Lasers
	w := g.cfg.World

	kind, bw, bh, frames := scene.KindHorizontalLaser, l.Length, l.Width, texHorizontalLaser
	if g.rng.Intn(2) == 0 {
		kind, bw, bh, frames = scene.KindVerticalLaser, l.Width, l.Length, texVerticalLaser
	}
	y := g.uniform(w.FloorHeight+bh/2, w.Height-bh/2)

	b := scene.NewBox(core.V(w.Width+bw/2, y), bw, bh, core.ColorRed, kind)
	b.SetVelocity(g.scrollVelocity())
	h := g.spawnBody(b, frames...)
	g.watchCharacter(h)

	if !g.loops.laser {
		g.audio.PlayOnChannel(audio.ChannelLaser, audio.SoundLaser, true)
		g.loops.laser = true
	}
	return h
}

func (g *Game) spawnShuriken() scene.Handle {
	size := g.cfg.Shurikens.Size
	w := g.cfg.World
	y := g.uniform(w.FloorHeight+size/2, w.Height-size/2)

	b := scene.NewBox(core.V(w.Width+size/2, y), size, size, core.ColorGray, scene.KindShuriken)
	b.SetVelocity(g.scrollVelocity())
	h := g.spawnBody(b, texShuriken)
	g.watchCharacter(h)
	return h
}

func (g *Game) spawnPowerup() scene.Handle {
	p := g.cfg.Powerups
	w := g.cfg.World
	y := g.uniform(w.FloorHeight+p.Size/2, w.Height-p.Size/2)

	vy := p.VerticalSpeed
	if g.rng.Intn(2) == 0 {
		vy = -vy
	}
	b := scene.NewBox(core.V(w.Width+p.Size/2, y), p.Size, p.Size, core.ColorYellow, scene.KindPowerup)
	b.SetVelocity(core.V(g.scrollVelocity().X(), vy))
	h := g.spawnBody(b, texPowerup)
	g.watchCharacter(h)

	g.audio.PlayOnChannel(audio.ChannelPowerup, audio.SoundPowerupSpawn, false)
	return h
}

// uniform returns a random value in [lo, hi].
func (g *Game) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// bouncePowerups reflects power-ups off the top and bottom of the field.
// The sign guards keep a box that overshoots a bound from flipping back
// and forth.
func (g *Game) bouncePowerups() {
	half := g.cfg.Powerups.Size / 2
	top := g.cfg.World.Height - half
	bottom := g.cfg.World.FloorHeight + half

	for _, b := range g.scene.OfKind(scene.KindPowerup) {
		v := b.Velocity()
		y := b.Centroid().Y()
		if y >= top && v.Y() > 0 {
			b.SetVelocity(core.V(v.X(), -v.Y()))
		} else if y <= bottom && v.Y() < 0 {
			b.SetVelocity(core.V(v.X(), -v.Y()))
		}
	}
}

func (g *Game) spinShurikens(dt float64) {
	for _, b := range g.scene.OfKind(scene.KindShuriken) {
		b.SetRotation(b.Rotation() + g.cfg.Shurikens.Spin*dt)
	}
}
