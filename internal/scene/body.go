// Package scene holds the simulated bodies of a run and the collision watches
// between them.
//
// Bodies live in a slot map and are referenced by generational handles. A
// removed body's handle never resolves again, so code that outlives a body
// cannot reach freed state by accident.
package scene

import (
	"fmt"

	"github.com/vovakirdan/byte-runner/internal/core"
)

// Kind is the closed set of body variants.
type Kind int

const (
	KindCharacter Kind = iota
	KindObstacle
	KindShuriken
	KindPowerup
	KindCoin
	KindHeatSeekRocket
	KindBackground
	KindVerticalLaser
	KindHorizontalLaser
	KindAlert
	KindUI
)

var kindNames = [...]string{
	KindCharacter:       "character",
	KindObstacle:        "obstacle",
	KindShuriken:        "shuriken",
	KindPowerup:         "powerup",
	KindCoin:            "coin",
	KindHeatSeekRocket:  "rocket",
	KindBackground:      "background",
	KindVerticalLaser:   "vertical_laser",
	KindHorizontalLaser: "horizontal_laser",
	KindAlert:           "alert",
	KindUI:              "ui",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Hazard reports whether touching a body of this kind ends the run.
func (k Kind) Hazard() bool {
	switch k {
	case KindObstacle, KindShuriken, KindHeatSeekRocket, KindVerticalLaser, KindHorizontalLaser:
		return true
	}
	return false
}

// Reapable reports whether bodies of this kind are discarded once they
// scroll off the left edge.
func (k Kind) Reapable() bool {
	switch k {
	case KindCharacter, KindBackground, KindAlert, KindUI:
		return false
	}
	return true
}

// Body is a simulated entity. Its shape is stored in local coordinates
// around the centroid; the world-space shape is derived on demand.
type Body struct {
	local    core.Polygon
	centroid core.Vec
	velocity core.Vec
	rotation float64
	weight   float64
	color    core.Color
	kind     Kind
	removed  bool

	world core.Polygon
	dirty bool
}

// NewBody creates a body from a shape given in any frame. The shape is
// re-expressed around its area centroid, which becomes the body's position.
// Shapes with fewer than three vertices are a programming error.
func NewBody(shape core.Polygon, weight float64, color core.Color, kind Kind) *Body {
	if len(shape) < 3 {
		panic(fmt.Sprintf("scene: %s body needs at least 3 vertices, got %d", kind, len(shape)))
	}
	c := shape.Centroid()
	return &Body{
		local:    shape.Translate(c.Mul(-1)),
		centroid: c,
		weight:   weight,
		color:    color,
		kind:     kind,
		dirty:    true,
	}
}

// NewBox creates a w by h rectangular body centred at pos.
func NewBox(pos core.Vec, w, h float64, color core.Color, kind Kind) *Body {
	b := NewBody(core.RectPolygon(w, h), 1, color, kind)
	b.SetCentroid(pos)
	return b
}

// Shape returns the polygon in world space at the current centroid and
// rotation. The slice is cached and must not be modified.
func (b *Body) Shape() core.Polygon {
	if b.dirty || b.world == nil {
		shape := b.local
		if b.rotation != 0 {
			shape = shape.Rotate(b.rotation, core.Vec{})
		}
		b.world = shape.Translate(b.centroid)
		b.dirty = false
	}
	return b.world
}

// LocalShape returns the shape relative to the centroid, ignoring rotation.
func (b *Body) LocalShape() core.Polygon { return b.local }

// Size returns the width and height of the unrotated shape.
func (b *Body) Size() (w, h float64) {
	box := b.local.Bounds()
	return box.W(), box.H()
}

// Centroid returns the body's position.
func (b *Body) Centroid() core.Vec { return b.centroid }

// SetCentroid moves the body to p.
func (b *Body) SetCentroid(p core.Vec) {
	b.centroid = p
	b.dirty = true
}

// Translate moves the body by d.
func (b *Body) Translate(d core.Vec) {
	b.SetCentroid(b.centroid.Add(d))
}

// Velocity returns the body's velocity in world units per second.
func (b *Body) Velocity() core.Vec { return b.velocity }

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(v core.Vec) { b.velocity = v }

// Rotation returns the rotation in radians.
func (b *Body) Rotation() float64 { return b.rotation }

// SetRotation sets the rotation in radians.
func (b *Body) SetRotation(theta float64) {
	b.rotation = theta
	b.dirty = true
}

// Weight is carried for completeness; the integrator ignores it.
func (b *Body) Weight() float64 { return b.weight }

// Color returns the fill colour used when the body has no texture.
func (b *Body) Color() core.Color { return b.color }

// Kind returns the body's variant tag.
func (b *Body) Kind() Kind { return b.kind }

// Removed reports whether the body has been taken out of its scene.
func (b *Body) Removed() bool { return b.removed }
