package runner

import (
	"hash/fnv"
	"math"
)

// Snapshot is a serializable view of a run for spectators and determinism
// checks.
type Snapshot struct {
	Tick     uint64         `json:"tick"`
	Mode     string         `json:"mode"`
	Score    int            `json:"score"`
	Distance float64        `json:"distance"`
	Elapsed  float64        `json:"elapsed"`
	Shield   float64        `json:"shield,omitempty"`
	Slowdown float64        `json:"slowdown,omitempty"`
	Pending  string         `json:"pending,omitempty"`
	Question string         `json:"question,omitempty"`
	Bodies   []BodySnapshot `json:"bodies"`
}

// BodySnapshot is one body in world coordinates.
type BodySnapshot struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Rotation float64 `json:"rot,omitempty"`
	Text     string  `json:"text,omitempty"`
}

// Snapshot returns the current state of the run.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.ticks,
		Mode:     g.mode.String(),
		Score:    g.score,
		Distance: g.distance,
		Elapsed:  g.elapsed,
		Shield:   g.powers.shield,
		Slowdown: g.powers.slow,
		Bodies:   make([]BodySnapshot, 0, g.scene.Count()),
	}
	if g.powers.hasPending {
		snap.Pending = g.powers.pending.String()
	}
	if g.quiz != nil {
		snap.Question = g.quiz.question.Text
	}

	for h, b := range g.scene.All() {
		w, ht := b.Size()
		p := b.Centroid()
		bs := BodySnapshot{
			Kind:     b.Kind().String(),
			X:        p.X(),
			Y:        p.Y(),
			W:        w,
			H:        ht,
			Rotation: b.Rotation(),
		}
		if v, ok := g.visuals[h]; ok {
			bs.Text = v.text
		}
		snap.Bodies = append(snap.Bodies, bs)
	}
	return snap
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	put := func(v uint64) {
		var b [8]byte
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(b[:])
	}

	put(snap.Tick)
	_, _ = h.Write([]byte(snap.Mode))
	put(uint64(snap.Score)) //#nosec G115 -- hash computation
	put(math.Float64bits(snap.Distance))
	put(math.Float64bits(snap.Elapsed))
	put(math.Float64bits(snap.Shield))
	put(math.Float64bits(snap.Slowdown))
	_, _ = h.Write([]byte(snap.Pending))

	for _, b := range snap.Bodies {
		_, _ = h.Write([]byte(b.Kind))
		put(math.Float64bits(b.X))
		put(math.Float64bits(b.Y))
		put(math.Float64bits(b.Rotation))
	}
	return h.Sum64()
}
