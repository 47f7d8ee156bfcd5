// Package ref implements explicit reference-counted ownership cells with
// non-owning weak handles.
//
// A value lives while at least one Strong handle remains. Weak handles
// never extend the value's lifetime: Get on a weak handle reports absent
// immediately after the last Strong release, deterministically, with no
// dependence on garbage collection timing.
//
// Release of an already-released Strong handle panics. Use-after-free is a
// bug worth crashing on, not a condition to paper over.
package ref

import "sync"

type box[T any] struct {
	mu     sync.Mutex
	val    T
	strong int
	weak   int
	onZero func(T)
}

// Strong is an owning handle. Handles are not safe for concurrent use;
// clone one handle per goroutine. The shared cell itself is synchronized.
type Strong[T any] struct {
	b        *box[T]
	released bool
}

// Weak is a non-owning handle created by Downgrade. Get resolves the value
// while owning handles remain and reports absent afterwards.
type Weak[T any] struct {
	b *box[T]
}

// NewStrong places v in a fresh cell and returns its first owning handle.
func NewStrong[T any](v T) *Strong[T] {
	return NewStrongFunc(v, nil)
}

// NewStrongFunc is NewStrong with a hook invoked once, with the value,
// when the last owning handle is released. Used to cascade releases
// through owned children.
func NewStrongFunc[T any](v T, onZero func(T)) *Strong[T] {
	return &Strong[T]{b: &box[T]{val: v, strong: 1, onZero: onZero}}
}

// Clone returns a new owning handle for the same cell.
func (s *Strong[T]) Clone() *Strong[T] {
	s.check()
	s.b.mu.Lock()
	s.b.strong++
	s.b.mu.Unlock()
	return &Strong[T]{b: s.b}
}

// Downgrade returns a non-owning handle for the same cell.
func (s *Strong[T]) Downgrade() *Weak[T] {
	s.check()
	s.b.mu.Lock()
	s.b.weak++
	s.b.mu.Unlock()
	return &Weak[T]{b: s.b}
}

// Get returns the value. Panics if this handle was released.
func (s *Strong[T]) Get() T {
	s.check()
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	return s.b.val
}

// Release drops this owning handle. When the last one is dropped the
// value is reclaimed: the onZero hook runs and weak handles start
// reporting absent. Releasing the same handle twice panics.
func (s *Strong[T]) Release() {
	s.check()
	s.released = true

	s.b.mu.Lock()
	s.b.strong--
	last := s.b.strong == 0
	var v T
	var hook func(T)
	if last {
		v, hook = s.b.val, s.b.onZero
		var zero T
		s.b.val = zero
		s.b.onZero = nil
	}
	s.b.mu.Unlock()

	// Run the cascade outside the cell lock; it releases other cells.
	if last && hook != nil {
		hook(v)
	}
}

// Counts returns the number of live owning handles and the number of weak
// handles ever created for this cell.
func (s *Strong[T]) Counts() (strong, weak int) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	return s.b.strong, s.b.weak
}

func (s *Strong[T]) check() {
	if s.released {
		panic("ref: use of released strong handle")
	}
}

// Get resolves the weak handle. The second result is false once every
// owning handle has been released.
func (w *Weak[T]) Get() (T, bool) {
	w.b.mu.Lock()
	defer w.b.mu.Unlock()
	if w.b.strong == 0 {
		var zero T
		return zero, false
	}
	return w.b.val, true
}
