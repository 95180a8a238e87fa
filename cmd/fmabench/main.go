// Command fmabench compares scalar and batch float32 multiply, add and
// fused multiply-add.
//
// Usage:
//
//	fmabench [--size N] [--repeats N] [--kernel NAME] [--seed N] [-v]
//
// Every batch operation runs over the whole buffer, averaged over repeats.
// Every scalar operation is measured once per index, each measurement
// averaged over repeats, and the per-index means are summed.
//
// Examples:
//
//	fmabench
//	fmabench --size 100 --repeats 50
//	fmabench --kernel generic -v
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
)

var exit = os.Exit

// valueFlags consume the argument that follows them.
var valueFlags = []string{"--size", "--repeats", "--kernel", "--seed"}

func main() {
	exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}

// Execute runs the root command with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(dropDanglingValueFlag(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// dropDanglingValueFlag removes a trailing value flag that has nothing after
// it. Such a flag is not a "--name value" pair, so it is ignored like any
// other unrecognized argument.
func dropDanglingValueFlag(args []string) []string {
	if n := len(args); n > 0 && slices.Contains(valueFlags, args[n-1]) {
		return args[:n-1]
	}
	return args
}
