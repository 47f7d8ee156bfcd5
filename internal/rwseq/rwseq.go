// Package rwseq implements a growable integer sequence guarded by a
// read/write lock: many concurrent readers or one exclusive writer, never
// both.
package rwseq

import "sync"

// Seq is a read/write-locked sequence of ints.
type Seq struct {
	mu   sync.RWMutex
	vals []int
}

// New returns a sequence seeded with vals.
func New(vals ...int) *Seq {
	s := &Seq{vals: make([]int, len(vals))}
	copy(s.vals, vals)
	return s
}

// Append adds v to the end of the sequence under the write lock. The value
// is visible to every reader that starts after Append returns.
func (s *Seq) Append(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals = append(s.vals, v)
}

// Snapshot returns a copy of the sequence taken under the read lock. The
// copy is a consistent view: no writer can interleave mid-read.
func (s *Seq) Snapshot() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.vals))
	copy(out, s.vals)
	return out
}

// At returns the element at index i, or false if i is out of range.
func (s *Seq) At(i int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.vals) {
		return 0, false
	}
	return s.vals[i], true
}

// Len returns the current length under the read lock.
func (s *Seq) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vals)
}
