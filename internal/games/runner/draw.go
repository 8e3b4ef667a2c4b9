package runner

import (
	"math"

	"github.com/vovakirdan/byte-runner/internal/assets"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// Renderer draws in world coordinates.
type Renderer interface {
	DrawPolygon(points []core.Vec, c core.Color)
	DrawImage(tex *assets.Texture, dst core.Box, rotationDeg float64)
	DrawText(font *assets.Font, text string, dst core.Box, c core.Color)
	Present()
}

// drawLayer orders bodies back to front.
func drawLayer(k scene.Kind) int {
	switch k {
	case scene.KindBackground:
		return 0
	case scene.KindCharacter:
		return 2
	case scene.KindUI:
		return 3
	default:
		return 1
	}
}

// Draw renders every body, then presents the frame. Within a layer bodies
// are drawn in scene order.
func (g *Game) Draw(r Renderer) {
	for layer := range 4 {
		for h, b := range g.scene.All() {
			if drawLayer(b.Kind()) == layer {
				g.drawBody(r, h, b)
			}
		}
	}
	r.Present()
}

func (g *Game) drawBody(r Renderer, h scene.Handle, b *scene.Body) {
	w, ht := b.Size()
	dst := core.BoxAround(b.Centroid(), w, ht)

	v, ok := g.visuals[h]
	switch {
	case !ok:
		r.DrawPolygon(b.Shape(), b.Color())
	case v.font != nil:
		r.DrawText(v.font, v.text, dst, v.color)
	default:
		if tex := v.texture(g.frame); tex != nil {
			r.DrawImage(tex, dst, b.Rotation()*180/math.Pi)
		}
	}
}
