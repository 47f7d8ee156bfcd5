package lab

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kolkov/golab/internal/counter"
	"github.com/kolkov/golab/internal/lockorder"
	"github.com/kolkov/golab/internal/mpsc"
	"github.com/kolkov/golab/internal/rwseq"
)

func init() {
	register(Demo{
		Name:    "counter-unsynced",
		Topic:   TopicConcurrency,
		Variant: Buggy,
		Summary: "unsynchronized counter increments: lost updates and an unawaited read",
		Run:     runCounterUnsynced,
	})
	register(Demo{
		Name:    "counter-mutex",
		Topic:   TopicConcurrency,
		Variant: Fixed,
		Summary: "mutex-protected counter: N goroutines, N increments, no lost updates",
		Run:     runCounterMutex,
	})
	register(Demo{
		Name:    "rwlock-readers",
		Topic:   TopicConcurrency,
		Variant: Fixed,
		Summary: "read/write lock: many readers, one writer, consistent snapshots",
		Run:     runRWLockReaders,
	})
	register(Demo{
		Name:    "channels-mpsc",
		Topic:   TopicConcurrency,
		Variant: Fixed,
		Summary: "multi-producer/single-consumer hand-off with cloned senders",
		Run:     runChannelsMPSC,
	})
	register(Demo{
		Name:    "deadlock-ordered",
		Topic:   TopicConcurrency,
		Variant: Fixed,
		Summary: "two-resource acquisition in global ID order: no circular wait",
		Run:     runDeadlockOrdered,
	})
}

// runCounterUnsynced reproduces the two classic counter bugs: increments
// without a lock (lost updates) and reading the result before the workers
// have been awaited.
func runCounterUnsynced(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Unsynchronized Counter (BUGGY) ===")
	fmt.Fprintln(out)

	const goroutines = 10
	const perGoroutine = 1000

	var value int // shared, unprotected
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				value++ // BUG: read-modify-write without a lock
			}
		}()
	}

	// BUG: reading before wg.Wait(); the workers are still running.
	fmt.Fprintf(out, "Premature read (workers not awaited): %d\n", value)

	wg.Wait()

	expected := goroutines * perGoroutine
	fmt.Fprintf(out, "Final value:    %d\n", value)
	fmt.Fprintf(out, "Expected value: %d\n", expected)
	if value != expected {
		fmt.Fprintln(out, "✗ updates were lost (this is the bug being demonstrated)")
	} else {
		fmt.Fprintln(out, "note: the race got lucky this run; the bug is still there")
	}
	return nil
}

// runCounterMutex is the corrected counter: every increment goes through
// the lock, every worker is awaited before the final read.
func runCounterMutex(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Mutex-Protected Counter ===")
	fmt.Fprintln(out)

	for _, n := range []int{1, 5, 10} {
		c := counter.New(0)
		skipped := counter.IncrementN(c, n)

		v, err := c.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%2d goroutines -> counter = %2d (skipped %d)\n", n, v, skipped)
		if v == n {
			fmt.Fprintln(out, "  ✓ no lost updates")
		}
	}
	return nil
}

// runRWLockReaders demonstrates the read/write lock policy: writers are
// exclusive, readers are concurrent, and a writer's append is visible to
// every reader that starts after the writer released.
func runRWLockReaders(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Read/Write-Locked Sequence ===")
	fmt.Fprintln(out)

	seq := rwseq.New(1, 2, 3, 4, 5)
	var wg sync.WaitGroup

	// Writers append sequentially distinct values.
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			seq.Append(v)
		}(100 + i)
	}

	// Readers take consistent snapshots while the writers run.
	results := make([][]int, 4)
	for i := range results {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = seq.Snapshot()
		}(i)
	}

	wg.Wait()

	for i, snap := range results {
		fmt.Fprintf(out, "reader %d saw %d elements: %v\n", i, len(snap), snap)
	}
	final := seq.Snapshot()
	fmt.Fprintf(out, "final sequence: %v\n", final)
	if len(final) == 8 {
		fmt.Fprintln(out, "✓ all three appends visible after release")
	}
	return nil
}

// runChannelsMPSC hands one message per cloned sender to a single
// receiver. The receive loop ends naturally once every sender, including
// the original, is closed.
func runChannelsMPSC(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== MPSC Channel Hand-Off ===")
	fmt.Fprintln(out)

	rx, tx := mpsc.New[string](0)

	var wg sync.WaitGroup
	for i := 1; i <= 3; i++ {
		s := tx.Clone()
		wg.Add(1)
		go func(id int, s *mpsc.Sender[string]) {
			defer wg.Done()
			defer s.Close()
			if err := s.Send(fmt.Sprintf("message from producer %d", id)); err != nil {
				fmt.Fprintf(out, "producer %d: send failed: %v\n", id, err)
				return
			}
		}(i, s)
	}
	// Release the original sender so the queue can close.
	tx.Close()

	msgs := rx.Drain()
	wg.Wait()

	for _, m := range msgs {
		fmt.Fprintf(out, "received: %s\n", m)
	}
	fmt.Fprintf(out, "got %d messages from 3 producers\n", len(msgs))
	if len(msgs) == 3 {
		fmt.Fprintln(out, "✓ exactly one message per producer, no loss, no duplication")
	}
	return nil
}

// runDeadlockOrdered runs two actors that both need both resources.
// Acquisition is structural (always ascending resource ID), so every
// interleaving completes; the context deadline is a tripwire, not a fix.
func runDeadlockOrdered(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Ordered Two-Resource Acquisition ===")
	fmt.Fprintln(out)

	r1 := lockorder.NewResource(1)
	r2 := lockorder.NewResource(2)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	actor := func(name string, first, second *lockorder.Resource) func() error {
		return func() error {
			release, err := lockorder.AcquirePair(first, second)
			if err != nil {
				return err
			}
			defer release()
			time.Sleep(50 * time.Millisecond) // widen the contention window
			first.SetValue(first.Value() + 1)
			second.SetValue(second.Value() + 1)
			fmt.Fprintf(out, "%s acquired both resources\n", name)
			return nil
		}
	}

	// The actors name the resources in opposite orders; AcquirePair
	// ignores argument order and locks by ascending ID.
	err := lockorder.Join(ctx,
		actor("actor 1", r1, r2),
		actor("actor 2", r2, r1),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ both actors completed: no circular wait possible")
	return nil
}
