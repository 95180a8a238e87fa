package suite

// Timings holds mean milliseconds per operation family.
type Timings struct {
	Mul    float64
	Add    float64
	MulAdd float64
}

// SeparateTotal is the cost of a multiply followed by a separate add.
func (t Timings) SeparateTotal() float64 {
	return t.Mul + t.Add
}

// Speedup is SeparateTotal divided by the fused time. It is 0 when the fused
// time is 0.
func (t Timings) Speedup() float64 {
	return ratio(t.SeparateTotal(), t.MulAdd)
}

// Result is the outcome of one Suite.Run.
type Result struct {
	Kernel  string
	Size    int
	Repeats int

	// Batch holds one timing per operation over the whole buffer.
	Batch Timings

	// Single holds the sums, over every index, of the per-index scalar timings.
	Single Timings
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
