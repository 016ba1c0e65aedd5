package sensors

import (
	"math/rand"
	"time"
)

// DefaultInterval is how often a sensor advances when no interval is configured.
const DefaultInterval = 3 * time.Second

// Rand is the random source a sensor draws from. *rand.Rand satisfies it.
// A sensor only calls its Rand while holding its own lock.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a random source seeded with seed, or with the current
// time when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// offset draws a uniform integer in [lo, hi].
func offset(rng Rand, lo, hi int) float64 {
	return float64(rng.Intn(hi-lo+1) + lo)
}

// jitter draws a fractional term in [-0.5, 0.5).
func jitter(rng Rand) float64 {
	return rng.Float64() - 0.5
}
