// Package kernel contains the float32 arithmetic primitives under measurement.
//
// Every operation comes in two forms:
//
// Scalar:
//   - Mul: a * b
//   - Add: a + b
//   - MulAdd: a * b + c
//
// Batch (element-wise over equal-length slices):
//   - MulBlock: dst[i] = a[i] * b[i]
//   - AddBlock: dst[i] = a[i] + b[i]
//   - MulAddBlock: dst[i] = a[i] * b[i] + c[i]
//
// Batch forms dispatch to a registered kernel (see the registry subpackage).
// The highest-priority kernel compatible with the CPU is used unless Use
// selects one by name.
//
// # Aliasing
//
// dst may be the same slice as any input. Index i of every input is read
// before index i of dst is written. Overlaps shifted by a non-zero offset
// are not supported.
package kernel
