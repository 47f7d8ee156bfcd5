// Package bench is a tiny wall-clock harness for the performance
// demonstrations. It times a function over a fixed number of iterations
// and renders side-by-side comparisons as a table.
//
// The numbers are illustrative output for a human reading the demo, not
// measurements to assert on; tests only check shape, never timings.
package bench

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Result is one timed run.
type Result struct {
	Name    string
	N       int
	Elapsed time.Duration
}

// PerOp returns the mean time per iteration.
func (r Result) PerOp() time.Duration {
	if r.N <= 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.N)
}

// Measure runs f(i) for i in [0, n) and records the total elapsed time.
func Measure(name string, n int, f func(i int)) Result {
	start := time.Now()
	for i := 0; i < n; i++ {
		f(i)
	}
	return Result{Name: name, N: n, Elapsed: time.Since(start)}
}

// RenderTable writes the results as an aligned comparison table.
func RenderTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Variant", "Iterations", "Total", "Per Op"})
	for _, r := range results {
		table.Append([]string{
			r.Name,
			strconv.Itoa(r.N),
			r.Elapsed.String(),
			r.PerOp().String(),
		})
	}
	table.Render()
}
