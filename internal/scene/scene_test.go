package scene

import (
	"math"
	"testing"

	"github.com/vovakirdan/byte-runner/internal/core"
)

func box(x, y float64, kind Kind) *Body {
	return NewBox(core.V(x, y), 1, 1, core.ColorWhite, kind)
}

func TestTickIntegratesVelocity(t *testing.T) {
	s := New()
	b := box(0, 0, KindObstacle)
	b.SetVelocity(core.V(10, 0))
	s.Add(b)

	s.Tick(0.1)

	got := b.Centroid()
	if math.Abs(got[0]-1) > 1e-9 || got[1] != 0 {
		t.Errorf("centroid after tick = %v, expected (1, 0)", got)
	}
}

func TestFrozenSceneDoesNotMove(t *testing.T) {
	s := New()
	b := box(0, 0, KindObstacle)
	b.SetVelocity(core.V(10, 0))
	s.Add(b)

	s.Freeze()
	s.Tick(1)

	if b.Centroid() != core.V(0, 0) {
		t.Errorf("frozen scene moved body to %v", b.Centroid())
	}
}

func TestNewBodyRecentresShape(t *testing.T) {
	b := NewBody(core.RectPolygon(4, 2).Translate(core.V(10, 20)), 1, core.ColorWhite, KindCoin)

	if b.Centroid() != core.V(10, 20) {
		t.Errorf("centroid = %v, expected (10, 20)", b.Centroid())
	}
	if c := b.LocalShape().Centroid(); math.Abs(c[0]) > 1e-9 || math.Abs(c[1]) > 1e-9 {
		t.Errorf("local shape not centred: %v", c)
	}
	w, h := b.Size()
	if w != 4 || h != 2 {
		t.Errorf("Size() = %vx%v, expected 4x2", w, h)
	}
}

func TestBodyShapeFollowsRotation(t *testing.T) {
	b := NewBox(core.V(5, 5), 4, 2, core.ColorWhite, KindShuriken)
	b.SetRotation(math.Pi / 2)

	box := b.Shape().Bounds()
	if math.Abs(box.W()-2) > 1e-9 || math.Abs(box.H()-4) > 1e-9 {
		t.Errorf("rotated bounds = %vx%v, expected 2x4", box.W(), box.H())
	}
	if c := box.Center(); math.Abs(c[0]-5) > 1e-9 || math.Abs(c[1]-5) > 1e-9 {
		t.Errorf("rotation moved the body: %v", box.Center())
	}
}

func TestNewBodyPanicsOnDegenerateShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for two-vertex shape")
		}
	}()
	NewBody(core.Polygon{{0, 0}, {1, 0}}, 1, core.ColorWhite, KindObstacle)
}

func TestRemovePreservesOrder(t *testing.T) {
	s := New()
	char := s.Add(box(0, 0, KindCharacter))
	a := s.Add(box(1, 0, KindCoin))
	b := s.Add(box(2, 0, KindCoin))
	c := s.Add(box(3, 0, KindCoin))

	s.Remove(1)

	if s.Count() != 3 {
		t.Fatalf("Count() = %d, expected 3", s.Count())
	}
	want := []Handle{char, b, c}
	for i, h := range want {
		if s.HandleAt(i) != h {
			t.Errorf("HandleAt(%d) = %v, expected %v", i, s.HandleAt(i), h)
		}
	}
	if s.Contains(a) {
		t.Error("removed handle still resolves")
	}
	if s.Get(0).Kind() != KindCharacter {
		t.Error("index 0 must remain the character")
	}
}

func TestRemovedHandleNeverResolves(t *testing.T) {
	s := New()
	h := s.Add(box(0, 0, KindCoin))
	body, _ := s.Body(h)

	if !s.RemoveHandle(h) {
		t.Fatal("RemoveHandle returned false for a live body")
	}
	if !body.Removed() {
		t.Error("body should be flagged as removed")
	}
	if s.RemoveHandle(h) {
		t.Error("second RemoveHandle should return false")
	}

	// The slot is reused but the old handle stays dead.
	h2 := s.Add(box(0, 0, KindCoin))
	if h2 == h {
		t.Fatal("reused slot must carry a new generation")
	}
	if s.Contains(h) {
		t.Error("stale handle resolved after slot reuse")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	s := New()
	s.Add(box(0, 0, KindCharacter))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	s.Get(1)
}

func TestOnRemoveAndClear(t *testing.T) {
	s := New()
	var removed []Handle
	s.OnRemove(func(h Handle, _ *Body) { removed = append(removed, h) })

	a := s.Add(box(0, 0, KindCharacter))
	b := s.Add(box(0, 0, KindCoin))
	s.Freeze()
	s.Clear()

	if s.Count() != 0 {
		t.Errorf("Count() after Clear = %d", s.Count())
	}
	if s.Frozen() {
		t.Error("Clear should unfreeze the scene")
	}
	if len(removed) != 2 || removed[0] != a || removed[1] != b {
		t.Errorf("remove hooks saw %v, expected [%v %v]", removed, a, b)
	}
}

func TestAllToleratesRemovalDuringIteration(t *testing.T) {
	s := New()
	s.Add(box(0, 0, KindCharacter))
	for i := range 5 {
		s.Add(box(float64(i), 0, KindCoin))
	}

	seen := 0
	for h, b := range s.All() {
		seen++
		if b.Kind() == KindCoin {
			s.RemoveHandle(h)
		}
	}

	if seen != 6 {
		t.Errorf("iterated %d bodies, expected 6", seen)
	}
	if s.Count() != 1 || s.CountKind(KindCoin) != 0 {
		t.Errorf("expected only the character to remain, got %d bodies", s.Count())
	}
}

func TestKindTraits(t *testing.T) {
	tests := []struct {
		kind     Kind
		hazard   bool
		reapable bool
	}{
		{KindCharacter, false, false},
		{KindObstacle, true, true},
		{KindShuriken, true, true},
		{KindHeatSeekRocket, true, true},
		{KindVerticalLaser, true, true},
		{KindHorizontalLaser, true, true},
		{KindCoin, false, true},
		{KindPowerup, false, true},
		{KindBackground, false, false},
		{KindAlert, false, false},
		{KindUI, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if tc.kind.Hazard() != tc.hazard {
				t.Errorf("Hazard() = %v", tc.kind.Hazard())
			}
			if tc.kind.Reapable() != tc.reapable {
				t.Errorf("Reapable() = %v", tc.kind.Reapable())
			}
		})
	}
}
