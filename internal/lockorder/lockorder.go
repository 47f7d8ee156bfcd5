// Package lockorder implements deterministic two-resource acquisition.
//
// When concurrent actors each need exclusive access to two shared
// resources, circular wait is impossible if every actor acquires in the
// same global order. The order here is structural, not conventional:
// AcquirePair always locks the lower resource ID first, regardless of
// argument order, so callers cannot get it wrong.
package lockorder

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Resource is a lockable shared value with a unique ID. IDs define the
// global acquisition order.
type Resource struct {
	id  int
	mu  sync.Mutex
	val int
}

// NewResource returns an unlocked resource with the given ID.
func NewResource(id int) *Resource {
	return &Resource{id: id}
}

// ID returns the resource's position in the global acquisition order.
func (r *Resource) ID() int { return r.id }

// Value returns the protected value. Only meaningful while holding the
// resource via AcquirePair.
func (r *Resource) Value() int { return r.val }

// SetValue updates the protected value. Only valid while holding the
// resource via AcquirePair.
func (r *Resource) SetValue(v int) { r.val = v }

func (r *Resource) lock()   { r.mu.Lock() }
func (r *Resource) unlock() { r.mu.Unlock() }

// AcquirePair locks both resources in ascending ID order and returns a
// release function that unlocks them in the reverse order. Passing the
// same resource twice is an error: a second acquisition would self-deadlock.
func AcquirePair(a, b *Resource) (release func(), err error) {
	if a == b || a.id == b.id {
		return nil, errors.Newf("lockorder: duplicate resource ID %d in pair", a.id)
	}
	first, second := a, b
	if second.id < first.id {
		first, second = second, first
	}
	first.lock()
	second.lock()
	return func() {
		second.unlock()
		first.unlock()
	}, nil
}

// Join runs every actor in its own goroutine and waits for all of them.
// If the actors have not completed before ctx is done, Join returns the
// context error instead of blocking forever; the stuck goroutines are
// leaked, which is exactly the failure the bounded wait exists to surface.
func Join(ctx context.Context, actors ...func() error) error {
	var g errgroup.Group
	for _, actor := range actors {
		g.Go(actor)
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "lockorder: actors did not complete")
	}
}
