package fib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtSmall(t *testing.T) {
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		require.Equal(t, w, At(uint(n)), "F(%d)", n)
	}
}

// TestNaiveAgreesWithMemoized cross-checks the two forms on the range
// where the naive one is still affordable.
func TestNaiveAgreesWithMemoized(t *testing.T) {
	for n := uint(0); n <= 20; n++ {
		require.Equal(t, At(n), Naive(n), "F(%d)", n)
	}
}

// TestAt35 pins the large-n value the memoized form must produce in
// bounded time. The naive form is deliberately excluded here.
func TestAt35(t *testing.T) {
	require.Equal(t, uint64(9_227_465), At(35))
}

func TestAtMaxExact(t *testing.T) {
	// F(93) is the last Fibonacci number that fits in a uint64.
	require.Equal(t, uint64(12_200_160_415_121_876_738), At(MaxExact))
}

func BenchmarkAt35(b *testing.B) {
	for i := 0; i < b.N; i++ {
		At(35)
	}
}
