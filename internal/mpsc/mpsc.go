// Package mpsc implements a multiple-producer/single-consumer hand-off
// queue on top of a Go channel.
//
// Any number of cloned senders may enqueue. The single receiver drains in
// per-sender send order; there is no global cross-sender interleaving
// guarantee. The queue closes naturally once every sender, including the
// original, has been closed, which terminates the receive loop.
package mpsc

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// ErrClosed is returned by Send on a sender that was already closed.
var ErrClosed = errors.New("mpsc: send on closed sender")

type queue[T any] struct {
	ch      chan T
	senders atomic.Int32
}

// Sender enqueues values. Each Sender handle must be closed exactly once;
// Clone creates an independent handle sharing the same queue.
//
// A single Sender handle must not be used from multiple goroutines; clone
// one handle per producer instead.
type Sender[T any] struct {
	q      *queue[T]
	closed bool
}

// Receiver drains the queue. There must be exactly one consumer.
type Receiver[T any] struct {
	q *queue[T]
}

// New creates a queue with the given buffer size and returns its single
// receiver and the original sender.
func New[T any](buf int) (*Receiver[T], *Sender[T]) {
	q := &queue[T]{ch: make(chan T, buf)}
	q.senders.Store(1)
	return &Receiver[T]{q: q}, &Sender[T]{q: q}
}

// Clone returns a new sender handle for the same queue. Cloning a closed
// sender panics: the queue may already be closed underneath it.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed {
		panic("mpsc: clone of closed sender")
	}
	s.q.senders.Add(1)
	return &Sender[T]{q: s.q}
}

// Send enqueues v, blocking if the buffer is full until the receiver
// drains. Returns ErrClosed if this handle was closed.
func (s *Sender[T]) Send(v T) error {
	if s.closed {
		return errors.WithStack(ErrClosed)
	}
	s.q.ch <- v
	return nil
}

// Close releases this sender handle. When the last handle is closed the
// underlying channel is closed and the receiver's loop terminates. Close
// is idempotent per handle.
func (s *Sender[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.q.senders.Add(-1) == 0 {
		close(s.q.ch)
	}
}

// Recv blocks until a value is available or every sender has been closed.
// The second result is false once the queue is closed and drained.
func (r *Receiver[T]) Recv() (T, bool) {
	v, ok := <-r.q.ch
	return v, ok
}

// Drain receives until the queue is closed and returns everything in
// arrival order.
func (r *Receiver[T]) Drain() []T {
	var out []T
	for v := range r.q.ch {
		out = append(out, v)
	}
	return out
}
