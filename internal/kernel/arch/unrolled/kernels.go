// Package unrolled provides 4-way hand-unrolled batch kernels.
//
// Each iteration loads four lanes of every input before storing four lanes of
// dst, so dst may be the same slice as any input.
package unrolled

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		a0, a1, a2, a3 := a[i], a[i+1], a[i+2], a[i+3]
		b0, b1, b2, b3 := b[i], b[i+1], b[i+2], b[i+3]
		dst[i] = a0 * b0
		dst[i+1] = a1 * b1
		dst[i+2] = a2 * b2
		dst[i+3] = a3 * b3
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		a0, a1, a2, a3 := a[i], a[i+1], a[i+2], a[i+3]
		b0, b1, b2, b3 := b[i], b[i+1], b[i+2], b[i+3]
		dst[i] = a0 + b0
		dst[i+1] = a1 + b1
		dst[i+2] = a2 + b2
		dst[i+3] = a3 + b3
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// MulAddBlock performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
// Slices must have equal length. Panics if lengths differ.
func MulAddBlock(dst, a, b, c []float32) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	a = a[:n]
	b = b[:n]
	c = c[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		a0, a1, a2, a3 := a[i], a[i+1], a[i+2], a[i+3]
		b0, b1, b2, b3 := b[i], b[i+1], b[i+2], b[i+3]
		c0, c1, c2, c3 := c[i], c[i+1], c[i+2], c[i+3]
		dst[i] = a0*b0 + c0
		dst[i+1] = a1*b1 + c1
		dst[i+2] = a2*b2 + c2
		dst[i+3] = a3*b3 + c3
	}

	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}
