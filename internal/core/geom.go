// Package core provides the fundamental types shared by the simulation and the
// terminal platform: world-space geometry, the SAT collision test, input
// frames and the cell screen buffer. It has no dependency on Bubble Tea so the
// game logic stays pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a 2D vector in world space. It is an alias of mgl64.Vec2, so the
// usual Add, Sub, Mul, Dot and Len operations come with it.
type Vec = mgl64.Vec2

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Perp returns v rotated a quarter turn counter-clockwise.
func Perp(v Vec) Vec {
	return Vec{-v[1], v[0]}
}

// Rotate returns v rotated by theta radians about the origin.
func Rotate(v Vec, theta float64) Vec {
	return mgl64.Rotate2D(theta).Mul2x1(v)
}

// Polygon is a convex polygon given as vertices in counter-clockwise order.
// The last vertex connects back to the first.
type Polygon []Vec

// RectPolygon returns a w by h rectangle centred on the origin.
func RectPolygon(w, h float64) Polygon {
	hw, hh := w/2, h/2
	return Polygon{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}
}

// RegularPolygon returns an n-sided regular polygon of circumradius r centred
// on the origin. Circles are approximated this way.
func RegularPolygon(n int, r float64) Polygon {
	p := make(Polygon, n)
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		p[i] = Vec{r * math.Cos(theta), r * math.Sin(theta)}
	}
	return p
}

// Clone returns a copy that shares no memory with p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Translate returns p moved by d.
func (p Polygon) Translate(d Vec) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// Rotate returns p rotated by theta radians about the given point.
func (p Polygon) Rotate(theta float64, about Vec) Polygon {
	rot := mgl64.Rotate2D(theta)
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = rot.Mul2x1(v.Sub(about)).Add(about)
	}
	return out
}

// Area returns the signed area. Counter-clockwise polygons are positive.
func (p Polygon) Area() float64 {
	var a float64
	n := len(p)
	for i := range n {
		j := (i + 1) % n
		a += p[i][0]*p[j][1] - p[j][0]*p[i][1]
	}
	return a / 2
}

// Centroid returns the area centroid. Degenerate polygons fall back to the
// mean of their vertices.
func (p Polygon) Centroid() Vec {
	area := p.Area()
	if math.Abs(area) < 1e-12 {
		return p.Mean()
	}
	var cx, cy float64
	n := len(p)
	for i := range n {
		j := (i + 1) % n
		cross := p[i][0]*p[j][1] - p[j][0]*p[i][1]
		cx += (p[i][0] + p[j][0]) * cross
		cy += (p[i][1] + p[j][1]) * cross
	}
	k := 1 / (6 * area)
	return Vec{cx * k, cy * k}
}

// Mean returns the average of the vertices.
func (p Polygon) Mean() Vec {
	if len(p) == 0 {
		return Vec{}
	}
	var sum Vec
	for _, v := range p {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(p)))
}

// Bounds returns the axis-aligned box enclosing p.
func (p Polygon) Bounds() Box {
	if len(p) == 0 {
		return Box{}
	}
	b := Box{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		b.Min[0] = math.Min(b.Min[0], v[0])
		b.Min[1] = math.Min(b.Min[1], v[1])
		b.Max[0] = math.Max(b.Max[0], v[0])
		b.Max[1] = math.Max(b.Max[1], v[1])
	}
	return b
}

// Contains reports whether pt lies inside or on the boundary of p.
// p must be convex and counter-clockwise.
func (p Polygon) Contains(pt Vec) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := range n {
		a, b := p[i], p[(i+1)%n]
		edge := b.Sub(a)
		rel := pt.Sub(a)
		if edge[0]*rel[1]-edge[1]*rel[0] < 0 {
			return false
		}
	}
	return true
}

// Box is an axis-aligned rectangle in world space.
type Box struct {
	Min, Max Vec
}

// BoxAround returns a w by h box centred on c.
func BoxAround(c Vec, w, h float64) Box {
	return Box{
		Min: Vec{c[0] - w/2, c[1] - h/2},
		Max: Vec{c[0] + w/2, c[1] + h/2},
	}
}

// W returns the box width.
func (b Box) W() float64 { return b.Max[0] - b.Min[0] }

// H returns the box height.
func (b Box) H() float64 { return b.Max[1] - b.Min[1] }

// Center returns the middle of the box.
func (b Box) Center() Vec {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
