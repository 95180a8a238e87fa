package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fmabench/internal/kernel"
	"github.com/cwbudde/algo-fmabench/internal/report"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// reportRows returns the five data rows split into trimmed cells.
func reportRows(t *testing.T, out string) [][]string {
	t.Helper()
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "| ") || strings.HasPrefix(line, "| Operation") {
			continue
		}
		parts := strings.Split(strings.Trim(line, "|"), "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		rows = append(rows, parts)
	}
	return rows
}

func TestExecuteSmallRun(t *testing.T) {
	code, out, stderr := execute(t, "--size", "100", "--repeats", "50")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, out, report.Title)

	rows := reportRows(t, out)
	require.Len(t, rows, 5)

	names := []string{"Multiply", "Add", "FusedMulAdd", "Separate Total", "Speedup (Fused)"}
	for i, row := range rows {
		require.Len(t, row, 3)
		assert.Equal(t, names[i], row[0])
		for _, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err, cell)
			assert.GreaterOrEqual(t, v, 0.0, "%s: %s", row[0], cell)
		}
	}

	fused, err := strconv.ParseFloat(rows[2][1], 64)
	require.NoError(t, err)
	if fused > 0 {
		speedup, err := strconv.ParseFloat(rows[4][1], 64)
		require.NoError(t, err)
		assert.Greater(t, speedup, 0.0)
	}
}

func TestExecuteMalformedSize(t *testing.T) {
	code, out, stderr := execute(t, "--size", "abc")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "invalid argument")
}

func TestExecuteMalformedRepeats(t *testing.T) {
	code, out, _ := execute(t, "--repeats", "1.5")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestExecuteZeroSizeRejected(t *testing.T) {
	code, out, stderr := execute(t, "--size", "0")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "size must be >= 1")
}

func TestExecuteZeroRepeatsRejected(t *testing.T) {
	code, out, stderr := execute(t, "--size", "10", "--repeats", "0")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "repeats must be >= 1")
}

func TestExecuteIgnoresUnknownArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string // expected substring of the debug log
	}{
		{"unknown flags and positionals", []string{"--warmup", "--size", "8", "stray", "--repeats", "2", "-x", "-v"}, "size=8"},
		{"trailing size without value", []string{"-v", "--repeats", "1", "--size"}, "size=10000"},
		{"trailing repeats without value", []string{"-v", "--size", "2", "--repeats"}, "repeats=10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := execute(t, tt.args...)

			require.Equal(t, 0, code, stderr)
			assert.Len(t, reportRows(t, out), 5)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestDropDanglingValueFlag(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{nil, nil},
		{[]string{"--size"}, []string{}},
		{[]string{"--repeats", "1", "--size"}, []string{"--repeats", "1"}},
		{[]string{"--size", "5"}, []string{"--size", "5"}},
		{[]string{"--size", "--repeats"}, []string{"--size"}},
		{[]string{"-v"}, []string{"-v"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dropDanglingValueFlag(tt.args), "%q", tt.args)
	}
}

func TestExecuteUnknownKernel(t *testing.T) {
	code, out, stderr := execute(t, "--size", "4", "--repeats", "1", "--kernel", "avx9000")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "unknown kernel")
}

func TestExecuteNamedKernelVerbose(t *testing.T) {
	defer func() { _ = kernel.Use(kernel.Auto) }()

	code, out, stderr := execute(t, "--size", "4", "--repeats", "2", "--kernel", "generic", "-v")

	require.Equal(t, 0, code, stderr)
	assert.Len(t, reportRows(t, out), 5)
	assert.Contains(t, stderr, "kernel=generic")
	assert.Contains(t, stderr, "run complete")
}

func TestExecuteQuietByDefault(t *testing.T) {
	code, _, stderr := execute(t, "--size", "4", "--repeats", "2")

	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestExecuteHelp(t *testing.T) {
	// Help wins over every other argument and skips the benchmark.
	for _, args := range [][]string{{"--help"}, {"-h", "--size", "2", "--repeats", "1"}} {
		code, out, _ := execute(t, args...)

		assert.Equal(t, 0, code, "%q", args)
		assert.Contains(t, out, "--repeats", "%q", args)
		assert.NotContains(t, out, report.Title, "%q", args)
	}
}
