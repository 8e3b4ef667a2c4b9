package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v, expected (2, 6)", got)
	}
	if got := a.Mul(2); got != V(6, 8) {
		t.Errorf("Mul = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, expected -5", got)
	}
	if got := a.Len(); !near(got, 5) {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := Perp(V(1, 0)); got != V(0, 1) {
		t.Errorf("Perp = %v, expected (0, 1)", got)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(V(1, 0), math.Pi/2)
	if !near(got[0], 0) || !near(got[1], 1) {
		t.Errorf("Rotate((1,0), pi/2) = %v, expected (0, 1)", got)
	}
}

func TestPolygonCentroid(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
		want Vec
	}{
		{"centred rect", RectPolygon(4, 2), V(0, 0)},
		{"offset rect", RectPolygon(4, 2).Translate(V(10, 5)), V(10, 5)},
		{"right triangle", Polygon{{0, 0}, {3, 0}, {0, 3}}, V(1, 1)},
		{"degenerate line", Polygon{{0, 0}, {2, 0}, {4, 0}}, V(2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.poly.Centroid()
			if !near(got[0], tc.want[0]) || !near(got[1], tc.want[1]) {
				t.Errorf("Centroid() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPolygonAreaIsCounterClockwise(t *testing.T) {
	if a := RectPolygon(2, 3).Area(); !near(a, 6) {
		t.Errorf("RectPolygon area = %v, expected +6", a)
	}
	if a := RegularPolygon(12, 15).Area(); a <= 0 {
		t.Errorf("RegularPolygon area = %v, expected positive", a)
	}
}

func TestPolygonRotateAbout(t *testing.T) {
	p := Polygon{{1, 0}, {2, 0}, {1, 1}}
	got := p.Rotate(math.Pi, V(1, 0))
	want := Polygon{{1, 0}, {0, 0}, {1, -1}}
	for i := range want {
		if !near(got[i][0], want[i][0]) || !near(got[i][1], want[i][1]) {
			t.Errorf("vertex %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestPolygonBoundsAndContains(t *testing.T) {
	p := RectPolygon(10, 4).Translate(V(5, 2))
	b := p.Bounds()
	if b.Min != V(0, 0) || b.Max != V(10, 4) {
		t.Errorf("Bounds() = %+v", b)
	}
	if !near(b.W(), 10) || !near(b.H(), 4) || b.Center() != V(5, 2) {
		t.Errorf("box size/center wrong: %v x %v at %v", b.W(), b.H(), b.Center())
	}

	if !p.Contains(V(5, 2)) {
		t.Error("centre should be inside")
	}
	if !p.Contains(V(0, 0)) {
		t.Error("corner should count as inside")
	}
	if p.Contains(V(11, 2)) {
		t.Error("point right of the box should be outside")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp gave wrong results")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF gave wrong results")
	}
}
