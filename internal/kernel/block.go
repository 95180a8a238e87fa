package kernel

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-fmabench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Auto selects the highest-priority kernel supported by the CPU.
const Auto = "auto"

// ErrUnknownKernel is returned by Use for names nobody registered.
var ErrUnknownKernel = errors.New("unknown kernel")

var (
	active   atomic.Pointer[registry.OpEntry]
	initOnce sync.Once
)

func lookupAuto() *registry.OpEntry {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no batch implementation registered")
	}
	if !entry.Complete() {
		panic("kernel: selected implementation missing batch operations")
	}
	return entry
}

func current() *registry.OpEntry {
	if entry := active.Load(); entry != nil {
		return entry
	}
	initOnce.Do(func() {
		active.CompareAndSwap(nil, lookupAuto())
	})
	return active.Load()
}

// Use selects the batch kernel registered under name. Auto (or "") restores
// CPU-based selection.
func Use(name string) error {
	var entry *registry.OpEntry
	switch name {
	case "", Auto:
		entry = registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			return fmt.Errorf("kernel: no implementation supported by %s", cpu.DetectFeatures().Architecture)
		}
	default:
		entry = registry.Global.ByName(name)
		if entry == nil {
			return fmt.Errorf("%w: %q (available: %v)", ErrUnknownKernel, name, Names())
		}
	}

	if !entry.Complete() {
		return fmt.Errorf("kernel: %s is missing batch operations", entry.Name)
	}

	active.Store(entry)
	return nil
}

// Active returns the name of the kernel the batch forms dispatch to.
func Active() string {
	return current().Name
}

// Names lists the registered kernels, highest priority first.
func Names() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock(dst, a, b []float32) {
	current().MulBlock(dst, a, b)
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float32) {
	current().AddBlock(dst, a, b)
}

// MulAddBlock performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
// Slices must have equal length. Panics if lengths differ.
func MulAddBlock(dst, a, b, c []float32) {
	current().MulAddBlock(dst, a, b, c)
}
