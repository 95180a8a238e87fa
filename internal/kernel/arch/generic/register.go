package generic

import (
	"github.com/cwbudde/algo-fmabench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the plain-loop kernels as the baseline fallback.
//
// Priority: 0 (lowest)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		MulBlock:    MulBlock,
		AddBlock:    AddBlock,
		MulAddBlock: MulAddBlock,
	})
}
