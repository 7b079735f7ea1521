package seasonal

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the randomness every step draws from. *rand.Rand from
// math/rand/v2 satisfies it; tests pass a seeded one or a scripted fake.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed is replaced by one
// derived from the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// chance reports true with probability p.
func chance(rng RandomSource, p float64) bool {
	return rng.Float64() < p
}

// weightedIndex picks an index into weights with probability proportional to
// its weight. Weights must be positive.
func weightedIndex(rng RandomSource, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	r := rng.IntN(total)
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
