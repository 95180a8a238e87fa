// Package suite runs the scalar versus batch arithmetic benchmark.
//
// A run measures MulBlock, AddBlock and MulAddBlock over whole buffers, then
// measures the scalar forms once per index. Each per-index measurement has its
// own repeat loop, so the single-element path performs size × repeats scalar
// calls per operation family against repeats batch calls.
package suite

import (
	"io"
	"log/slog"

	"github.com/cwbudde/algo-fmabench/internal/bench"
	"github.com/cwbudde/algo-fmabench/internal/kernel"
)

// Suite holds the configuration and buffers of one benchmark run.
type Suite struct {
	cfg    Config
	in     Inputs
	timer  bench.Timer
	logger *slog.Logger
}

// Option configures a Suite.
type Option func(*Suite)

// WithLogger sets the logger used for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Suite) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimer replaces the wall-clock timer.
func WithTimer(t bench.Timer) Option {
	return func(s *Suite) {
		s.timer = t
	}
}

// New validates cfg, selects the batch kernel and allocates the buffers.
func New(cfg Config, opts ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := kernel.Use(cfg.Kernel); err != nil {
		return nil, err
	}

	s := &Suite{
		cfg:    cfg,
		timer:  bench.NewTimer(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.in = NewInputs(cfg.Size, cfg.Seed)
	return s, nil
}

// Inputs returns the suite's buffers.
func (s *Suite) Inputs() Inputs {
	return s.in
}

// Run executes the batch phase followed by the single-element phase.
func (s *Suite) Run() Result {
	res := Result{
		Kernel:  kernel.Active(),
		Size:    s.cfg.Size,
		Repeats: s.cfg.Repeats,
	}

	s.logger.Debug("batch phase", "kernel", res.Kernel, "size", res.Size, "repeats", res.Repeats)
	res.Batch = s.runBatch()
	s.logger.Debug("batch phase done",
		"mul_ms", res.Batch.Mul, "add_ms", res.Batch.Add, "muladd_ms", res.Batch.MulAdd)

	s.logger.Debug("single-element phase", "measurements", 3*s.cfg.Size)
	res.Single = s.runSingle()
	s.logger.Debug("single-element phase done",
		"mul_ms", res.Single.Mul, "add_ms", res.Single.Add, "muladd_ms", res.Single.MulAdd)

	return res
}

func (s *Suite) runBatch() Timings {
	a, b, c, result := s.in.A, s.in.B, s.in.C, s.in.Result
	n := s.cfg.Repeats

	var t Timings
	t.Mul = s.timer.Mean(n, func() {
		kernel.MulBlock(result, a, b)
	})
	t.Add = s.timer.Mean(n, func() {
		kernel.AddBlock(result, result, c)
	})
	t.MulAdd = s.timer.Mean(n, func() {
		kernel.MulAddBlock(result, a, b, c)
	})
	return t
}

func (s *Suite) runSingle() Timings {
	a, b, c, result := s.in.A, s.in.B, s.in.C, s.in.Result
	n := s.cfg.Repeats

	var t Timings
	for i := range result {
		t.Mul += s.timer.Mean(n, func() {
			kernel.MulTo(&result[i], a[i], b[i])
		})
		t.Add += s.timer.Mean(n, func() {
			kernel.AddTo(&result[i], result[i], c[i])
		})
		t.MulAdd += s.timer.Mean(n, func() {
			kernel.MulAddTo(&result[i], a[i], b[i], c[i])
		})
	}
	return t
}
