// Package bench times repeated executions of a zero-argument operation.
//
// Repetitions run sequentially on the calling goroutine. Each one is timed
// with its own pair of clock readings, so clock overhead is included in the
// result and not corrected for.
package bench

import "time"

// DefaultRepeats is the repeat count used when none is configured.
const DefaultRepeats = 10_000

// Timer measures operations with a configurable clock.
type Timer struct {
	now func() time.Time
}

// NewTimer returns a Timer reading the monotonic wall clock.
func NewTimer() Timer {
	return Timer{now: time.Now}
}

// NewTimerWithClock returns a Timer reading now. Intended for tests.
func NewTimerWithClock(now func() time.Time) Timer {
	if now == nil {
		now = time.Now
	}
	return Timer{now: now}
}

// Mean invokes op exactly repeats times and returns the mean elapsed time
// per invocation in milliseconds. repeats <= 0 returns 0 without calling op.
func (t Timer) Mean(repeats int, op func()) float64 {
	if repeats <= 0 {
		return 0
	}

	now := t.now
	if now == nil {
		now = time.Now
	}

	var total time.Duration
	for range repeats {
		start := now()
		op()
		total += now().Sub(start)
	}

	return Milliseconds(total) / float64(repeats)
}

// Mean times op with the wall clock. See Timer.Mean.
func Mean(repeats int, op func()) float64 {
	return NewTimer().Mean(repeats, op)
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
