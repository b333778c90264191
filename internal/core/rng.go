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

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillBinary marks each cell Alive with probability density.
func (r *RNG) FillBinary(g *Grid, density float64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = Dead
		if r.Chance(density) {
			cells[i] = Alive
		}
	}
}
