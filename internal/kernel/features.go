package kernel

import (
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// DescribeFeatures renders detected CPU features as "arch [ext ...]".
func DescribeFeatures(f cpu.Features) string {
	var ext []string
	if f.HasSSE2 {
		ext = append(ext, "sse2")
	}
	if f.HasAVX2 {
		ext = append(ext, "avx2")
	}
	if f.HasNEON {
		ext = append(ext, "neon")
	}
	if f.ForceGeneric {
		ext = append(ext, "force-generic")
	}

	arch := f.Architecture
	if arch == "" {
		arch = "unknown"
	}
	return arch + " [" + strings.Join(ext, " ") + "]"
}
