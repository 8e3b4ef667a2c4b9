package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/byte-runner/internal/assets"
	"github.com/vovakirdan/byte-runner/internal/core"
)

// Canvas rasterizes world-space draw calls onto a Screen. World y points up
// and the screen's y points down, so rows are flipped.
type Canvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
	frames uint64
}

// NewCanvas creates a canvas mapping a worldW by worldH field onto s.
func NewCanvas(s *core.Screen, worldW, worldH float64) *Canvas {
	return &Canvas{screen: s, worldW: worldW, worldH: worldH}
}

// Frames returns how many frames have been presented.
func (c *Canvas) Frames() uint64 {
	return c.frames
}

func (c *Canvas) scaleX() float64 { return float64(c.screen.Width()) / c.worldW }
func (c *Canvas) scaleY() float64 { return float64(c.screen.Height()) / c.worldH }

// toWorld returns the world position of the centre of cell (x, y).
func (c *Canvas) toWorld(x, y int) core.Vec {
	wx := (float64(x) + 0.5) / c.scaleX()
	wy := c.worldH - (float64(y)+0.5)/c.scaleY()
	return core.V(wx, wy)
}

// cellRect returns the cells covered by a world box, clipped to the screen.
// Every box covers at least one cell so small bodies stay visible.
func (c *Canvas) cellRect(b core.Box) core.Rect {
	sx, sy := c.scaleX(), c.scaleY()
	x0 := int(math.Floor(b.Min.X() * sx))
	x1 := int(math.Ceil(b.Max.X() * sx))
	y0 := int(math.Floor((c.worldH - b.Max.Y()) * sy))
	y1 := int(math.Ceil((c.worldH - b.Min.Y()) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, 0, c.screen.Width())
	x1 = core.Clamp(x1, 0, c.screen.Width())
	y0 = core.Clamp(y0, 0, c.screen.Height())
	y1 = core.Clamp(y1, 0, c.screen.Height())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawPolygon fills every cell whose centre lies inside points.
func (c *Canvas) DrawPolygon(points []core.Vec, col core.Color) {
	if len(points) < 3 {
		return
	}
	poly := core.Polygon(points)
	r := c.cellRect(poly.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if poly.Contains(c.toWorld(x, y)) {
				c.screen.Set(x, y, '█', col)
			}
		}
	}
}

// DrawImage paints tex into dst. Art rows are sampled to fit the cells and
// spaces are left transparent. Terminal cells cannot rotate, so rotation
// only picks which art frame the game sends.
func (c *Canvas) DrawImage(tex *assets.Texture, dst core.Box, _ float64) {
	r := c.cellRect(dst)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	switch {
	case tex.Box:
		c.screen.DrawRect(r, ' ', tex.Color)
		c.screen.DrawBox(r, tex.Color)
	case len(tex.Art) == 0:
		c.screen.DrawRect(r, tex.Glyph, tex.Color)
	default:
		rows := len(tex.Art)
		for y := range r.H {
			line := []rune(tex.Art[y*rows/r.H])
			if len(line) == 0 {
				continue
			}
			for x := range r.W {
				ch := line[x*len(line)/r.W]
				if ch == ' ' {
					continue
				}
				c.screen.Set(r.X+x, r.Y+y, ch, tex.Color)
			}
		}
	}
}

// DrawText centres text in dst on the row nearest its middle.
func (c *Canvas) DrawText(font *assets.Font, text string, dst core.Box, col core.Color) {
	r := c.cellRect(dst)
	if r.H <= 0 {
		return
	}
	row := r.Y + r.H/2
	x := r.X + (r.W-utf8.RuneCountInString(text))/2
	bold := font != nil && font.Bold

	i := 0
	for _, ch := range text {
		c.screen.SetCell(x+i, row, core.Cell{Rune: ch, Color: col, Bold: bold})
		i++
	}
}

// Present finishes a frame. The screen is read by the Bubble Tea view.
func (c *Canvas) Present() {
	c.frames++
}
