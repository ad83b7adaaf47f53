package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Scatter sets each cell of g to c independently with probability p. Cells
// that are not picked keep their value.
func Scatter(r *rand.Rand, g *Grid, c Cell, p float64) int {
	if p <= 0 {
		return 0
	}
	n := 0
	for i := range g.data {
		if r.Float64() < p {
			g.data[i] = uint8(c)
			n++
		}
	}
	return n
}
