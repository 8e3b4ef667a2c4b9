package core

import "math"

// Collision is the result of a separating axis test.
// When Collided is true, Axis is a unit vector pointing from the first shape
// toward the second and Overlap is the penetration depth along it, so
// Axis.Mul(Overlap) is the minimum translation that separates them.
type Collision struct {
	Collided bool
	Axis     Vec
	Overlap  float64
}

// FindCollision tests two convex polygons with the separating axis theorem.
// Every edge normal of a and then of b is tried as a candidate axis. The test
// stops at the first axis whose projections do not overlap. Touching shapes
// (zero overlap) do not collide.
func FindCollision(a, b Polygon) Collision {
	if len(a) < 3 || len(b) < 3 {
		return Collision{}
	}

	ca, ok := minOverlap(a, a, b)
	if !ok {
		return Collision{}
	}
	cb, ok := minOverlap(b, a, b)
	if !ok {
		return Collision{}
	}

	best := cb
	if ca.Overlap < cb.Overlap {
		best = ca
	}
	if best.Overlap == math.MaxFloat64 {
		// every edge was degenerate
		return Collision{}
	}

	if best.Axis.Dot(b.Mean().Sub(a.Mean())) < 0 {
		best.Axis = best.Axis.Mul(-1)
	}
	best.Collided = true
	return best
}

// minOverlap projects a and b onto each edge normal of owner and returns the
// axis with the smallest overlap. ok is false as soon as a separating axis is
// found.
func minOverlap(owner, a, b Polygon) (c Collision, ok bool) {
	c.Overlap = math.MaxFloat64
	n := len(owner)
	for i := range n {
		edge := owner[i].Sub(owner[(i+1)%n])
		axis := Perp(edge)
		l := axis.Len()
		if l == 0 {
			continue
		}
		axis = axis.Mul(1 / l)

		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
		if overlap <= 0 {
			return Collision{}, false
		}
		if overlap < c.Overlap {
			c.Overlap = overlap
			c.Axis = axis
		}
	}
	return c, true
}

// project returns the interval covered by p along axis.
func project(p Polygon, axis Vec) (lo, hi float64) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, v := range p {
		d := v.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
