package core

import "math/rand/v2"

// RNG produces reproducible random fills: the same seed always yields the
// same sequence.
type RNG struct {
	src *rand.Rand
}

// NewRNG seeds a PCG generator.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.src.Float64() < p
}

// FillGrid overwrites g so each cell is alive with probability density.
func FillGrid(r *RNG, g *Grid, density float64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = r.Chance(density)
	}
}
