package feed

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser(1, "Alice", "alice@example.com")
	require.Equal(t, uint32(1), u.ID)
	require.Empty(t, u.Posts())

	_, ok := u.LastPost()
	require.False(t, ok)
}

func TestAddPost(t *testing.T) {
	u := NewUser(1, "Alice", "alice@example.com")
	u.AddPost(101)
	u.AddPost(102)
	u.AddPost(103)

	require.Equal(t, []uint32{101, 102, 103}, u.Posts())

	last, ok := u.LastPost()
	require.True(t, ok)
	require.Equal(t, uint32(103), last)
}

func TestContainsPostEdges(t *testing.T) {
	u := NewUser(1, "Alice", "alice@example.com")

	// Empty sequence: absent.
	require.False(t, u.ContainsPost(42))

	for _, id := range []uint32{10, 20, 30, 40, 50} {
		u.AddPost(id)
	}

	tests := []struct {
		name string
		id   uint32
		want bool
	}{
		{"below minimum", 5, false},
		{"first element", 10, true},
		{"middle element", 30, true},
		{"last element", 50, true},
		{"gap", 25, false},
		{"above maximum", 99, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, u.ContainsPost(tc.id))
		})
	}
}

// TestBinarySearchMatchesLinearScan is the oracle property: for any sorted
// sequence and any query, binary search and linear scan agree.
func TestBinarySearchMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		u := NewUser(1, "Alice", "alice@example.com")
		next := uint32(0)
		for i := 0; i < trial%37; i++ {
			next += uint32(rng.Intn(5) + 1) // strictly increasing
			u.AddPost(next)
		}
		for q := 0; q < 50; q++ {
			id := uint32(rng.Intn(int(next) + 10))
			require.Equal(t, containsLinear(u.Posts(), id), u.ContainsPost(id),
				"trial=%d id=%d posts=%v", trial, id, u.Posts())
		}
	}
}

func BenchmarkContainsPost(b *testing.B) {
	u := NewUser(1, "Alice", "alice@example.com")
	for i := uint32(0); i < 10_000; i++ {
		u.AddPost(i * 2)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.ContainsPost(uint32(i%20_000) | 1) // mostly misses
	}
}
