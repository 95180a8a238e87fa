package kernel

// Blank imports register the batch kernels with the global registry.

import (
	_ "github.com/cwbudde/algo-fmabench/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-fmabench/internal/kernel/arch/unrolled"
)
