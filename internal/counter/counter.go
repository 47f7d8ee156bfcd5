// Package counter implements the shared counter used throughout the
// concurrency demonstrations: a single integer incremented by many
// goroutines under a poisonable mutual-exclusion lock.
//
// Invariant: with a healthy lock, the final value equals the initial value
// plus the number of successful increments. No lost updates.
package counter

import (
	"sync"
	"sync/atomic"

	"github.com/kolkov/golab/internal/poison"
)

// Counter is a lock-guarded integer. The zero value is ready to use.
type Counter struct {
	mu    poison.Mutex
	value int
}

// New returns a counter starting at v.
func New(v int) *Counter {
	return &Counter{value: v}
}

// Inc adds one to the counter. Returns poison.ErrPoisoned (wrapped) if a
// prior holder panicked while holding the lock; the increment is skipped.
func (c *Counter) Inc() error {
	g, err := c.mu.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()
	c.value++
	return nil
}

// Add adds delta to the counter under the lock.
func (c *Counter) Add(delta int) error {
	g, err := c.mu.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()
	c.value += delta
	return nil
}

// Update applies f to the current value under the lock. A panicking f
// poisons the lock; the panic is reported as an error.
func (c *Counter) Update(f func(int) int) error {
	return c.mu.With(func() {
		c.value = f(c.value)
	})
}

// Value reads the counter under the lock. The read is only meaningful once
// every goroutine mutating the counter has been awaited.
func (c *Counter) Value() (int, error) {
	g, err := c.mu.Lock()
	if err != nil {
		return 0, err
	}
	defer g.Unlock()
	return c.value, nil
}

// Heal clears the lock's poison flag after the caller restored the value.
func (c *Counter) Heal() {
	c.mu.Heal()
}

// IncrementN runs n goroutines, each performing exactly one increment, and
// waits for all of them before returning. Increments that observed a
// poisoned lock are skipped; the number skipped is returned so callers can
// log it.
func IncrementN(c *Counter, n int) (skipped int) {
	var wg sync.WaitGroup
	var skip atomic.Int64
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.Inc(); err != nil {
				skip.Add(1)
			}
		}()
	}
	wg.Wait()
	return int(skip.Load())
}
