package kernel

// Mul returns a * b.
func Mul(a, b float32) float32 {
	return a * b
}

// Add returns a + b.
func Add(a, b float32) float32 {
	return a + b
}

// MulAdd returns a * b + c.
func MulAdd(a, b, c float32) float32 {
	return a*b + c
}

// MulTo stores a * b in *dst. A nil dst is a no-op.
func MulTo(dst *float32, a, b float32) {
	if dst != nil {
		*dst = Mul(a, b)
	}
}

// AddTo stores a + b in *dst. A nil dst is a no-op.
func AddTo(dst *float32, a, b float32) {
	if dst != nil {
		*dst = Add(a, b)
	}
}

// MulAddTo stores a * b + c in *dst. A nil dst is a no-op.
func MulAddTo(dst *float32, a, b, c float32) {
	if dst != nil {
		*dst = MulAdd(a, b, c)
	}
}
