package suite

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fmabench/internal/bench"
	"github.com/cwbudde/algo-fmabench/internal/kernel"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultSeed seeds the input generator unless configured otherwise.
const DefaultSeed = 42

// DefaultSize is the default buffer length.
const DefaultSize = 10_000

// Config defines one benchmark run.
type Config struct {
	Size    int    // elements per buffer
	Repeats int    // timed repetitions per measurement
	Seed    uint64 // input generator seed
	Kernel  string // batch kernel name, or kernel.Auto
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Size:    DefaultSize,
		Repeats: bench.DefaultRepeats,
		Seed:    DefaultSeed,
		Kernel:  kernel.Auto,
	}
}

// Validate checks that the run is well defined.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1: %d", ErrInvalidConfig, c.Size)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be >= 1: %d", ErrInvalidConfig, c.Repeats)
	}
	return nil
}
