package suite

import (
	"math"
	"math/rand/v2"
)

// Inputs holds the operand buffers and the shared result buffer.
// A, B and C are read-only after construction; Result is overwritten by
// every phase.
type Inputs struct {
	A, B, C []float32
	Result  []float32
}

// NewInputs fills A, B and C with values uniform in [1, 2), drawn per index
// in a, b, c order from a PCG source seeded with seed.
func NewInputs(size int, seed uint64) Inputs {
	in := Inputs{
		A:      make([]float32, size),
		B:      make([]float32, size),
		C:      make([]float32, size),
		Result: make([]float32, size),
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	for i := 0; i < size; i++ {
		in.A[i] = uniform(rng)
		in.B[i] = uniform(rng)
		in.C[i] = uniform(rng)
	}

	return in
}

// uniform returns a value in [1, 2). Float32 rounding can land on 2 exactly,
// which is folded back to the largest float32 below 2.
func uniform(rng *rand.Rand) float32 {
	v := 1 + rng.Float32()
	if v >= 2 {
		v = math.Nextafter32(2, 1)
	}
	return v
}

// Len returns the buffer length.
func (in Inputs) Len() int {
	return len(in.Result)
}
