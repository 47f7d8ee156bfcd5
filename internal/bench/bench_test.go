package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeasureRunsNTimes(t *testing.T) {
	calls := 0
	r := Measure("count", 17, func(int) { calls++ })

	require.Equal(t, 17, calls)
	require.Equal(t, 17, r.N)
	require.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
}

func TestMeasurePassesIndex(t *testing.T) {
	var got []int
	Measure("indices", 3, func(i int) { got = append(got, i) })
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestPerOp(t *testing.T) {
	r := Result{Name: "x", N: 4, Elapsed: 400 * time.Millisecond}
	require.Equal(t, 100*time.Millisecond, r.PerOp())

	require.Zero(t, Result{Name: "empty"}.PerOp())
}

func TestRenderTable(t *testing.T) {
	var sb strings.Builder
	RenderTable(&sb, []Result{
		{Name: "naive", N: 100, Elapsed: time.Second},
		{Name: "tuned", N: 100, Elapsed: time.Millisecond},
	})

	out := sb.String()
	require.Contains(t, out, "naive")
	require.Contains(t, out, "tuned")
	require.Contains(t, out, "100")
}
