package colour

import "math/rand"

// Rand is the source of randomness used by palette generation.
// *math/rand.Rand satisfies it; tests pass a seeded one.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- palette generation is not security sensitive
}

// between returns a uniform value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
