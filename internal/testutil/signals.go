package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicUniform32 returns n values uniform in [lo, hi) from a fixed seed.
func DeterministicUniform32(seed uint64, lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := range out {
		v := lo + rng.Float32()*(hi-lo)
		if v >= hi {
			v = math.Nextafter32(hi, lo)
		}
		out[i] = v
	}
	return out
}
