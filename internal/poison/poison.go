// Package poison implements a mutual-exclusion lock whose acquisition is
// fallible.
//
// A holder that terminates abnormally (panics) inside a guarded section
// leaves the protected data in an unknown state. Instead of wedging every
// later acquirer, the lock is marked poisoned and subsequent Lock calls
// return ErrPoisoned. Callers treat that as a recoverable condition: log it
// and route around, never abort.
//
// The poison flag is advisory. Heal clears it once a caller has restored
// the protected data to a consistent state.
package poison

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// ErrPoisoned is returned by Lock after a prior holder panicked while
// holding the lock. Test with errors.Is.
var ErrPoisoned = errors.New("poison: lock poisoned by a prior holder")

// Mutex is a mutual-exclusion lock with poison tracking.
//
// The zero value is an unlocked, healthy Mutex.
type Mutex struct {
	mu       sync.Mutex
	poisoned atomic.Bool
}

// Guard represents held exclusive access. It must be released exactly once
// via Unlock.
type Guard struct {
	m    *Mutex
	done bool
}

// Lock blocks until exclusive access is obtained, then checks the poison
// flag. If the lock is poisoned the access is released immediately and
// ErrPoisoned is returned.
func (m *Mutex) Lock() (*Guard, error) {
	m.mu.Lock()
	if m.poisoned.Load() {
		m.mu.Unlock()
		return nil, errors.Wrapf(ErrPoisoned, "acquire")
	}
	return &Guard{m: m}, nil
}

// Unlock releases the access obtained by Lock. Unlocking twice panics, the
// same way sync.Mutex does.
func (g *Guard) Unlock() {
	if g.done {
		panic("poison: unlock of released guard")
	}
	g.done = true
	g.m.mu.Unlock()
}

// With runs f while holding the lock.
//
// If f panics, the lock is marked poisoned, the panic is converted into an
// error, and the lock is released so other goroutines are not blocked
// forever. Returns ErrPoisoned (wrapped) when the lock was already
// poisoned on entry.
func (m *Mutex) With(f func()) (err error) {
	g, err := m.Lock()
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			m.poisoned.Store(true)
			g.Unlock()
			err = errors.Newf("poison: holder panicked: %v", r)
			return
		}
		g.Unlock()
	}()
	f()
	return nil
}

// Poisoned reports whether a prior holder panicked while holding the lock.
func (m *Mutex) Poisoned() bool {
	return m.poisoned.Load()
}

// Heal clears the poison flag. The caller asserts that the protected data
// has been restored to a consistent state.
func (m *Mutex) Heal() {
	m.poisoned.Store(false)
}
