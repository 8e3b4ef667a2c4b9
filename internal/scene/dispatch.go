package scene

import "github.com/vovakirdan/byte-runner/internal/core"

// Contact describes an overlap between the two bodies of a watch.
type Contact struct {
	Subject     Handle
	Target      Handle
	SubjectBody *Body
	TargetBody  *Body
	core.Collision
}

// Handler responds to a contact. It may remove either body or freeze the
// scene.
type Handler interface {
	HandleCollision(s *Scene, c Contact)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(s *Scene, c Contact)

// HandleCollision calls f(s, c).
func (f HandlerFunc) HandleCollision(s *Scene, c Contact) { f(s, c) }

type pair struct {
	subject, target Handle
}

type watch struct {
	pair
	handler Handler
	dead    bool
}

// Watch registers h to run whenever subject and target overlap.
// Only one watch may exist per pair; a second registration, or one naming a
// body that is not in the scene, is rejected.
func (s *Scene) Watch(subject, target Handle, h Handler) bool {
	if h == nil || !s.Contains(subject) || !s.Contains(target) {
		return false
	}
	p := pair{subject, target}
	if _, dup := s.pairs[p]; dup {
		return false
	}
	w := &watch{pair: p, handler: h}
	s.watches = append(s.watches, w)
	s.pairs[p] = w
	return true
}

// Watches returns the number of registered watches whose bodies are both
// still alive.
func (s *Scene) Watches() int {
	n := 0
	for _, w := range s.watches {
		if !w.dead && s.Contains(w.subject) && s.Contains(w.target) {
			n++
		}
	}
	return n
}

// CheckCollisions tests every live watch once against the current world
// shapes and runs the handler of each pair that overlaps. Watches whose bodies
// have been removed are skipped and dropped. Dispatch stops early if a
// handler freezes the scene. It returns the number of handlers run.
func (s *Scene) CheckCollisions() int {
	if s.frozen {
		return 0
	}

	fired := 0
	pending := s.watches
	for _, w := range pending {
		if s.frozen {
			break
		}
		if w.dead {
			continue
		}
		sb, ok := s.Body(w.subject)
		if !ok {
			w.dead = true
			continue
		}
		tb, ok := s.Body(w.target)
		if !ok {
			w.dead = true
			continue
		}

		c := core.FindCollision(sb.Shape(), tb.Shape())
		if !c.Collided {
			continue
		}
		w.handler.HandleCollision(s, Contact{
			Subject:     w.subject,
			Target:      w.target,
			SubjectBody: sb,
			TargetBody:  tb,
			Collision:   c,
		})
		fired++
	}
	s.prune()
	return fired
}

// prune drops watches that can never fire again.
func (s *Scene) prune() {
	kept := s.watches[:0]
	for _, w := range s.watches {
		if w.dead || !s.Contains(w.subject) || !s.Contains(w.target) {
			if s.pairs[w.pair] == w {
				delete(s.pairs, w.pair)
			}
			continue
		}
		kept = append(kept, w)
	}
	clear(s.watches[len(kept):])
	s.watches = kept
}
