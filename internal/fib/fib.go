// Package fib computes Fibonacci numbers (0-indexed, F(0)=0, F(1)=1).
//
// At is the memoized form: it builds the sequence bottom-up in O(n) time
// and O(n) space. Naive is the exponential double recursion, kept only as
// the anti-pattern baseline for the performance demonstrations; never use
// it for n beyond the mid-thirties.
//
// Results are exact up to n = 93; larger n overflows uint64 and is out of
// scope.
package fib

// MaxExact is the largest n for which the result fits in a uint64.
const MaxExact = 93

// At returns F(n) using a memo table seeded with F(0)=0 and F(1)=1, each
// later entry the sum of the two preceding ones.
func At(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	memo := make([]uint64, n+1)
	memo[1] = 1
	for i := uint(2); i <= n; i++ {
		memo[i] = memo[i-1] + memo[i-2]
	}
	return memo[n]
}

// Naive returns F(n) by double recursion without memoization. Exponential
// time; exists to be measured against At, not to be used.
func Naive(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return Naive(n-1) + Naive(n-2)
}
