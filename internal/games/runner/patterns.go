package runner

import (
	"math/rand"

	"github.com/vovakirdan/byte-runner/internal/core"
)

// coinPattern is a coin formation.
type coinPattern int

const (
	patternLinear coinPattern = iota
	patternGrid
	patternZigzag
	numPatterns
)

// patternBounds is the area coins are placed in. Coins start just right of
// Width and must fit between Floor and Height.
type patternBounds struct {
	Width  float64
	Height float64
	Floor  float64
	Radius float64
}

func randIn(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// linearRow places n coins at one random height, 3r apart.
func linearRow(rng *rand.Rand, b patternBounds, n int) []core.Vec {
	r := b.Radius
	y := randIn(rng, b.Floor+2*r, b.Height-2*r)

	out := make([]core.Vec, n)
	for i := range out {
		out[i] = core.V(b.Width+r+float64(i)*3*r, y)
	}
	return out
}

// rectGrid places a 2-3 row by 2-4 column block of coins, 3r apart, with
// the whole block inside the field.
func rectGrid(rng *rand.Rand, b patternBounds) []core.Vec {
	r := b.Radius
	rows := 2 + rng.Intn(2)
	cols := 2 + rng.Intn(3)
	spacing := 3 * r

	top := randIn(rng, b.Floor+2*r+float64(rows-1)*spacing, b.Height-2*r)

	out := make([]core.Vec, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			out = append(out, core.V(b.Width+2*r+float64(col)*spacing, top-float64(row)*spacing))
		}
	}
	return out
}

// zigzag places 6-10 coins alternating above and below a centre line.
// The centre line leaves room for the full amplitude plus the coin radius
// on both sides.
func zigzag(rng *rand.Rand, b patternBounds) []core.Vec {
	r := b.Radius
	n := 6 + rng.Intn(5)
	amp := randIn(rng, 2*r, 4*r)
	centre := randIn(rng, b.Floor+amp+r, b.Height-amp-r)

	out := make([]core.Vec, n)
	for i := range out {
		dy := amp
		if i%2 == 1 {
			dy = -amp
		}
		out[i] = core.V(b.Width+r+float64(i)*2.5*r, centre+dy)
	}
	return out
}
