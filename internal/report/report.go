// Package report renders benchmark results as a fixed-width text table.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-fmabench/internal/suite"
)

// Title heads every report.
const Title = "== Benchmark Results =="

// Column widths, excluding the leading "| ".
const (
	opWidth     = 16
	batchWidth  = 30
	singleWidth = 35
)

// Row is one line of the results table.
type Row struct {
	Operation string
	Batch     float64
	Single    float64
}

// Rows returns the table body in display order: Multiply, Add, FusedMulAdd,
// Separate Total, Speedup (Fused).
func Rows(r suite.Result) []Row {
	return []Row{
		{"Multiply", r.Batch.Mul, r.Single.Mul},
		{"Add", r.Batch.Add, r.Single.Add},
		{"FusedMulAdd", r.Batch.MulAdd, r.Single.MulAdd},
		{"Separate Total", r.Batch.SeparateTotal(), r.Single.SeparateTotal()},
		{"Speedup (Fused)", r.Batch.Speedup(), r.Single.Speedup()},
	}
}

// Render writes the titled table for r to w.
func Render(w io.Writer, r suite.Result) error {
	title := lipgloss.NewRenderer(w).NewStyle().Bold(true).Render(Title)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n\n", title)
	fmt.Fprintf(bw, "| %-*s| %-*s| %-*s|\n",
		opWidth, "Operation",
		batchWidth, "Batch Operations Time (ms)",
		singleWidth, "Single Element Operations Time (ms)")

	rows := Rows(r)
	for i, row := range rows {
		if i == 0 || i == 3 {
			writeSeparator(bw)
		}
		fmt.Fprintf(bw, "| %-*s| %-*.8f| %-*.8f|\n",
			opWidth, row.Operation,
			batchWidth, row.Batch,
			singleWidth, row.Single)
	}

	return bw.Flush()
}

func writeSeparator(w io.Writer) {
	fmt.Fprintf(w, "|%s|%s|%s|\n", strings.Repeat("-", opWidth+1), strings.Repeat("-", batchWidth+1), strings.Repeat("-", singleWidth+1))
}
