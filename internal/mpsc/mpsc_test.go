package mpsc

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestSingleSender(t *testing.T) {
	rx, tx := New[string](1)

	go func() {
		require.NoError(t, tx.Send("hello"))
		tx.Close()
	}()

	got := rx.Drain()
	require.Equal(t, []string{"hello"}, got)
}

// TestClonedSenders checks exactly-k delivery: k senders, one distinct
// message each, exactly k messages at the receiver once all senders are
// closed. No duplication, no loss.
func TestClonedSenders(t *testing.T) {
	for _, k := range []int{1, 3} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			rx, tx := New[int](0)

			var wg sync.WaitGroup
			for i := 0; i < k; i++ {
				s := tx.Clone()
				wg.Add(1)
				go func(id int, s *Sender[int]) {
					defer wg.Done()
					require.NoError(t, s.Send(id))
					s.Close()
				}(i, s)
			}
			// Release the original sender; the queue closes once the
			// clones finish.
			tx.Close()

			got := rx.Drain()
			wg.Wait()

			sort.Ints(got)
			want := make([]int, k)
			for i := range want {
				want[i] = i
			}
			require.Equal(t, want, got)
		})
	}
}

func TestPerSenderOrder(t *testing.T) {
	rx, tx := New[int](8)

	require.NoError(t, tx.Send(1))
	require.NoError(t, tx.Send(2))
	require.NoError(t, tx.Send(3))
	tx.Close()

	require.Equal(t, []int{1, 2, 3}, rx.Drain())
}

func TestSendOnClosedSender(t *testing.T) {
	rx, tx := New[int](1)
	tx.Close()

	err := tx.Send(1)
	require.True(t, errors.Is(err, ErrClosed))

	_, ok := rx.Recv()
	require.False(t, ok)
}

func TestCloseIdempotent(t *testing.T) {
	rx, tx := New[int](1)
	tx.Close()
	tx.Close() // must not panic or double-close the channel

	_, ok := rx.Recv()
	require.False(t, ok)
}

func TestCloneOfClosedSenderPanics(t *testing.T) {
	_, tx := New[int](1)
	tx.Close()
	require.Panics(t, func() { tx.Clone() })
}
