package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputsDeterministic(t *testing.T) {
	first := NewInputs(500, DefaultSeed)
	second := NewInputs(500, DefaultSeed)

	assert.Equal(t, first.A, second.A)
	assert.Equal(t, first.B, second.B)
	assert.Equal(t, first.C, second.C)
}

func TestNewInputsSeedChangesData(t *testing.T) {
	assert.NotEqual(t, NewInputs(64, 42).A, NewInputs(64, 43).A)
}

func TestNewInputsRangeAndLength(t *testing.T) {
	in := NewInputs(2048, DefaultSeed)

	require.Equal(t, 2048, in.Len())
	for name, buf := range map[string][]float32{"a": in.A, "b": in.B, "c": in.C} {
		require.Len(t, buf, 2048, name)
		for i, v := range buf {
			if v < 1 || v >= 2 {
				t.Fatalf("%s[%d] = %v, want [1, 2)", name, i, v)
			}
		}
	}
	for _, v := range in.Result {
		require.Zero(t, v)
	}
}

func TestNewInputsInterleaved(t *testing.T) {
	// Growing the buffer keeps the prefix, since values are drawn per index.
	small := NewInputs(10, DefaultSeed)
	large := NewInputs(20, DefaultSeed)

	assert.Equal(t, small.A, large.A[:10])
	assert.Equal(t, small.C, large.C[:10])
}

func TestNewInputsEmpty(t *testing.T) {
	in := NewInputs(0, DefaultSeed)
	assert.Zero(t, in.Len())
}
