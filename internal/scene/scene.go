package scene

import (
	"fmt"
	"iter"
	"slices"
)

// Handle is a stable reference to a body. The zero Handle never resolves.
type Handle struct {
	slot uint32
	gen  uint32
}

// Valid reports whether h was issued by a scene. It does not say whether the
// body is still alive; use Scene.Contains for that.
func (h Handle) Valid() bool { return h.gen != 0 }

// String formats the handle for logs.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.slot, h.gen)
}

type slot struct {
	gen  uint32
	body *Body
}

// Scene is an ordered collection of bodies. Removal keeps the relative order
// of the remaining bodies, so a body added first stays at index 0.
type Scene struct {
	slots    []slot
	free     []uint32
	order    []Handle
	watches  []*watch
	pairs    map[pair]*watch
	frozen   bool
	onRemove []func(Handle, *Body)
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{pairs: make(map[pair]*watch)}
}

// OnRemove registers fn to run whenever a body leaves the scene, including
// by Clear.
func (s *Scene) OnRemove(fn func(Handle, *Body)) {
	s.onRemove = append(s.onRemove, fn)
}

// Add inserts b at the end of the order and returns its handle.
func (s *Scene) Add(b *Body) Handle {
	var h Handle
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx].body = b
		h = Handle{slot: idx, gen: s.slots[idx].gen}
	} else {
		s.slots = append(s.slots, slot{gen: 1, body: b})
		h = Handle{slot: uint32(len(s.slots) - 1), gen: 1} //nolint:gosec // slot count is tiny
	}
	b.removed = false
	s.order = append(s.order, h)
	return h
}

// Count returns the number of live bodies.
func (s *Scene) Count() int {
	return len(s.order)
}

// Get returns the body at position i in insertion order.
// An index outside [0, Count) is a programming error and panics.
func (s *Scene) Get(i int) *Body {
	return s.slots[s.HandleAt(i).slot].body
}

// HandleAt returns the handle of the body at position i.
// An index outside [0, Count) panics.
func (s *Scene) HandleAt(i int) Handle {
	if i < 0 || i >= len(s.order) {
		panic(fmt.Sprintf("scene: index %d out of range [0,%d)", i, len(s.order)))
	}
	return s.order[i]
}

// Body resolves h. ok is false once the body has been removed.
func (s *Scene) Body(h Handle) (*Body, bool) {
	if !h.Valid() || int(h.slot) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.slot]
	if sl.gen != h.gen || sl.body == nil {
		return nil, false
	}
	return sl.body, true
}

// Contains reports whether h refers to a live body.
func (s *Scene) Contains(h Handle) bool {
	_, ok := s.Body(h)
	return ok
}

// IndexOf returns the position of h in insertion order, or -1.
func (s *Scene) IndexOf(h Handle) int {
	if !s.Contains(h) {
		return -1
	}
	return slices.Index(s.order, h)
}

// Remove deletes the body at position i, shifting later bodies down by one.
// An index outside [0, Count) panics.
func (s *Scene) Remove(i int) {
	h := s.HandleAt(i)
	s.order = slices.Delete(s.order, i, i+1)
	s.release(h)
}

// RemoveHandle deletes the body referenced by h. It returns false if the
// body was already gone.
func (s *Scene) RemoveHandle(h Handle) bool {
	i := s.IndexOf(h)
	if i < 0 {
		return false
	}
	s.Remove(i)
	return true
}

func (s *Scene) release(h Handle) {
	sl := &s.slots[h.slot]
	b := sl.body
	sl.body = nil
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	s.free = append(s.free, h.slot)
	b.removed = true
	for _, fn := range s.onRemove {
		fn(h, b)
	}
}

// All iterates over the live bodies in order. It walks a snapshot, so the
// loop body may add or remove bodies; bodies removed mid-iteration are
// skipped.
func (s *Scene) All() iter.Seq2[Handle, *Body] {
	handles := slices.Clone(s.order)
	return func(yield func(Handle, *Body) bool) {
		for _, h := range handles {
			b, ok := s.Body(h)
			if !ok {
				continue
			}
			if !yield(h, b) {
				return
			}
		}
	}
}

// OfKind iterates over the live bodies of kind k.
func (s *Scene) OfKind(k Kind) iter.Seq2[Handle, *Body] {
	return func(yield func(Handle, *Body) bool) {
		for h, b := range s.All() {
			if b.kind != k {
				continue
			}
			if !yield(h, b) {
				return
			}
		}
	}
}

// CountKind returns the number of live bodies of kind k.
func (s *Scene) CountKind(k Kind) int {
	n := 0
	for _, h := range s.order {
		if s.slots[h.slot].body.kind == k {
			n++
		}
	}
	return n
}

// Tick integrates every body's position by velocity*dt. Rotation is left to
// the caller. A frozen scene does not move.
func (s *Scene) Tick(dt float64) {
	if s.frozen {
		return
	}
	for _, h := range s.order {
		b := s.slots[h.slot].body
		if b.velocity[0] == 0 && b.velocity[1] == 0 {
			continue
		}
		b.Translate(b.velocity.Mul(dt))
	}
}

// Freeze stops integration and collision dispatch until Clear.
func (s *Scene) Freeze() { s.frozen = true }

// Frozen reports whether the scene is frozen.
func (s *Scene) Frozen() bool { return s.frozen }

// Clear removes every body and watch and unfreezes the scene.
// Remove hooks run for each body in order.
func (s *Scene) Clear() {
	order := s.order
	s.order = nil
	for _, h := range order {
		s.release(h)
	}
	s.watches = nil
	clear(s.pairs)
	s.frozen = false
}
