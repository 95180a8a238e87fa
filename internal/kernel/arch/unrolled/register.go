package unrolled

import (
	"github.com/cwbudde/algo-fmabench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the unrolled kernels. They need no SIMD extension but are
// preferred over the plain loops.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,

		MulBlock:    MulBlock,
		AddBlock:    AddBlock,
		MulAddBlock: MulAddBlock,
	})
}
