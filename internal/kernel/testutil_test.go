package kernel

import (
	"strconv"

	"github.com/cwbudde/algo-fmabench/internal/testutil"
)

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"10K", 10000},
	{"64K", 65536},
}

var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 100, 1000, 1023, 1024, 1025}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

// fmaTol allows for the compiler fusing a*b+c into a single rounding.
const fmaTol = 1e-6

func testInputs(n int) (a, b, c []float32) {
	return testutil.DeterministicUniform32(1, 1, 2, n),
		testutil.DeterministicUniform32(2, 1, 2, n),
		testutil.DeterministicUniform32(3, 1, 2, n)
}
