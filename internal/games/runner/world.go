package runner

import (
	"fmt"

	"github.com/vovakirdan/byte-runner/internal/assets"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// visual is how a body is drawn. Bodies without one are drawn as their
// polygon.
type visual struct {
	frames []*assets.Texture // cycled every frameTime; one entry for static sprites
	text   string
	font   *assets.Font
	color  core.Color
}

// texture returns the sprite for animation frame n.
func (v *visual) texture(n int) *assets.Texture {
	if len(v.frames) == 0 {
		return nil
	}
	return v.frames[n%len(v.frames)]
}

// hud holds the text bodies shown while playing.
type hud struct {
	score, distance, time scene.Handle
}

// forget drops the visual of a removed body and zeroes any well-known
// handle that referred to it.
func (g *Game) forget(h scene.Handle, _ *scene.Body) {
	delete(g.visuals, h)

	clearIf := func(w *scene.Handle) {
		if *w == h {
			*w = scene.Handle{}
		}
	}
	clearIf(&g.character)
	clearIf(&g.alert)
	for i := range g.backgrounds {
		clearIf(&g.backgrounds[i])
		clearIf(&g.floors[i])
	}
	clearIf(&g.hud.score)
	clearIf(&g.hud.distance)
	clearIf(&g.hud.time)
}

// spawnBody adds b with the given sprite frames.
func (g *Game) spawnBody(b *scene.Body, frames ...string) scene.Handle {
	h := g.scene.Add(b)
	if len(frames) > 0 {
		v := &visual{frames: make([]*assets.Texture, len(frames))}
		for i, p := range frames {
			v.frames[i] = g.assets.MustTexture(p)
		}
		g.visuals[h] = v
	}
	return h
}

// spawnText adds a UI text body centred at pos.
func (g *Game) spawnText(pos core.Vec, w, h float64, text, font string, c core.Color) scene.Handle {
	hd := g.scene.Add(scene.NewBox(pos, w, h, c, scene.KindUI))
	g.visuals[hd] = &visual{text: text, font: g.assets.MustFont(font), color: c}
	return hd
}

func (g *Game) setText(h scene.Handle, text string) {
	if v, ok := g.visuals[h]; ok {
		v.text = text
	}
}

// groundY is the character's centre height when standing on the floor.
func (g *Game) groundY() float64 {
	return g.cfg.World.FloorHeight + g.cfg.Character.Height/2
}

// buildWorld adds the character, scenery and HUD. The character is always
// the first body.
func (g *Game) buildWorld() {
	w := g.cfg.World
	c := g.cfg.Character

	g.character = g.spawnBody(
		scene.NewBox(core.V(c.X, g.groundY()), c.Width, c.Height, core.ColorGreen, scene.KindCharacter),
		texCharacter,
	)

	skyH := w.Height - w.FloorHeight
	for i := range g.backgrounds {
		x := w.Width/2 + float64(i)*w.Width

		bg := scene.NewBox(core.V(x, w.FloorHeight+skyH/2), w.Width, skyH, core.ColorNight, scene.KindBackground)
		bg.SetVelocity(g.scrollVelocity())
		g.backgrounds[i] = g.spawnBody(bg, texBackground)

		fl := scene.NewBox(core.V(x, w.FloorHeight/2), w.Width, w.FloorHeight, core.ColorFloor, scene.KindBackground)
		fl.SetVelocity(g.scrollVelocity())
		g.floors[i] = g.spawnBody(fl, texFloor)
	}

	top := w.Height - 20
	g.hud.score = g.spawnText(core.V(80, top), 140, 30, "", fontHUD, core.ColorYellow)
	g.hud.distance = g.spawnText(core.V(w.Width/2, top), 200, 30, "", fontHUD, core.ColorWhite)
	g.hud.time = g.spawnText(core.V(w.Width-80, top), 140, 30, "", fontHUD, core.ColorWhite)
	g.updateHUD()
}

func (g *Game) updateHUD() {
	g.setText(g.hud.score, fmt.Sprintf("%04d", g.score))
	g.setText(g.hud.distance, fmt.Sprintf("%.0fm", g.distance))
	g.setText(g.hud.time, fmt.Sprintf("%.1fs", g.elapsed))
}

// moveCharacter applies thrust and gravity and keeps the character inside
// the field. Position was already integrated by the scene.
func (g *Game) moveCharacter(dt float64) {
	ch := g.mustBody(g.character, "character")
	w := g.cfg.World
	c := g.cfg.Character

	vel := ch.Velocity()
	vy := vel.Y() - g.cfg.Physics.Gravity*dt
	if g.thrusting {
		vy += g.cfg.Physics.Thrust * dt
	}

	pos := ch.Centroid()
	x := core.ClampF(pos.X(), c.Width/2, w.Width-c.Width/2)
	y := pos.Y()
	ceiling := w.Height - c.Height/2
	switch {
	case y <= g.groundY():
		y = g.groundY()
		if vy < 0 {
			vy = 0
		}
	case y >= ceiling:
		y = ceiling
		if vy > 0 {
			vy = 0
		}
	}

	ch.SetCentroid(core.V(x, y))
	ch.SetVelocity(core.V(vel.X(), vy))
}

// onGround reports whether the character is standing on the floor.
func (g *Game) onGround() bool {
	ch := g.mustBody(g.character, "character")
	return ch.Centroid().Y() <= g.groundY() && ch.Velocity().Y() <= 0
}

// wrapScenery moves a tile that has left the screen to the right of its
// partner.
func (g *Game) wrapScenery() {
	wrap := func(tiles [2]scene.Handle, what string) {
		for i := range tiles {
			b := g.mustBody(tiles[i], what)
			other := g.mustBody(tiles[1-i], what)
			if b.Centroid().X()+g.cfg.World.Width/2 < 0 {
				b.SetCentroid(core.V(other.Centroid().X()+g.cfg.World.Width, b.Centroid().Y()))
			}
		}
	}
	wrap(g.backgrounds, "background")
	wrap(g.floors, "floor")
}

// animate advances sprite frames and picks the character pose.
func (g *Game) animate(dt float64) {
	g.animClock += dt
	for g.animClock >= frameTime {
		g.animClock -= frameTime
		g.frame++
	}

	ch := g.mustBody(g.character, "character")
	flying := g.thrusting || ch.Velocity().Y() > 0
	shield := g.powers.shield > 0

	var path string
	switch {
	case flying && shield:
		path = texCharacterShieldFlying
	case flying:
		path = texCharacterFlying
	case !g.onGround() && shield:
		path = texCharacterShield
	case !g.onGround():
		path = texCharacter
	case shield:
		path = texCharacterShieldRun[g.frame%len(texCharacterShieldRun)]
	default:
		path = texCharacterRun[g.frame%len(texCharacterRun)]
	}
	if v, ok := g.visuals[g.character]; ok {
		v.frames[0] = g.assets.MustTexture(path)
	}
}
