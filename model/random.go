package model

import "math/rand/v2"

// NewRand creates a deterministic source for the provided seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Likely returns a generator that yields a Cell with probability density
func Likely(rng *rand.Rand, density float64) func() (Cell, bool) {
	return func() (Cell, bool) {
		return Cell{}, rng.Float64() < density
	}
}
