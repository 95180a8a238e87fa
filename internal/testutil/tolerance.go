package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSlice32NearlyEqual fails t if got and want differ in length or if
// any element pair exceeds the relative tolerance rel.
func RequireSlice32NearlyEqual(t *testing.T, got, want []float32, rel float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.True(t, NearlyEqual32(got[i], want[i], rel),
			"index %d: got %v, want %v (rel tol %v)", i, got[i], want[i], rel)
	}
}

// RequireSlice32Equal fails t unless got and want match exactly.
func RequireSlice32Equal(t *testing.T, got, want []float32) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.Equal(t, want[i], got[i], "index %d", i)
	}
}

// NearlyEqual32 reports whether a and b agree within relative tolerance rel.
func NearlyEqual32(a, b float32, rel float64) bool {
	if a == b {
		return true
	}
	x, y := float64(a), float64(b)
	return math.Abs(x-y) <= rel*math.Max(math.Abs(x), math.Abs(y))
}

// RequireNonNegative fails t if v is negative, NaN or Inf.
func RequireNonNegative(t *testing.T, name string, v float64) {
	t.Helper()
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0) || v < 0,
		"%s: expected finite non-negative value, got %v", name, v)
}
