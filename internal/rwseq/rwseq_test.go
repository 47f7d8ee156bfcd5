package rwseq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCopies(t *testing.T) {
	s := New(1, 2, 3)

	snap := s.Snapshot()
	require.Equal(t, []int{1, 2, 3}, snap)

	// Mutating the snapshot must not touch the sequence.
	snap[0] = 99
	again := s.Snapshot()
	require.Equal(t, []int{1, 2, 3}, again)
}

func TestAppendVisibleAfterRelease(t *testing.T) {
	s := New(1, 2, 3)
	s.Append(4)
	require.Equal(t, []int{1, 2, 3, 4}, s.Snapshot())

	v, ok := s.At(3)
	require.True(t, ok)
	require.Equal(t, 4, v)

	_, ok = s.At(4)
	require.False(t, ok)
}

// TestConcurrentReaders starts many readers against sequential writers and
// checks every snapshot is a consistent prefix-ordered view: lengths only
// grow, and every observed element matches its index seed.
func TestConcurrentReaders(t *testing.T) {
	s := New()
	const writes = 100
	const readers = 8

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := 0
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := s.Snapshot()
				require.GreaterOrEqual(t, len(snap), prev)
				prev = len(snap)
				for i, v := range snap {
					require.Equal(t, i, v)
				}
			}
		}()
	}

	for i := 0; i < writes; i++ {
		s.Append(i)
	}
	close(stop)
	wg.Wait()

	require.Equal(t, writes, s.Len())
}
