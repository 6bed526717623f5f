package heart

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for shape sampling and particle parameters.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newTimeRand seeds a source from the wall clock for production use.
func newTimeRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
