// Package lab is the public face of golab, a teaching corpus of paired
// buggy/fixed demonstration programs for four topic areas: concurrency
// primitives, error handling, memory/ownership management, and
// micro-performance optimization.
//
// # Quick Start
//
// Run demos through the golab tool:
//
//	$ golab list
//	$ golab run counter-mutex
//	$ golab run --all
//
// Or programmatically:
//
//	r := lab.NewRunner(nil)
//	for _, d := range lab.All() {
//		_ = r.Run(context.Background(), d)
//	}
//
// # Structure
//
// Every demonstration is registered as a [Demo] with a topic, a variant
// (buggy or fixed), and a Run function that writes human-readable progress
// lines. Buggy variants reproduce a pitfall at runtime: lost updates,
// panics on unchecked errors, leaked ownership cycles. Fixed variants show
// the corrected pattern and verify their own invariants as they go.
//
// The demos deliberately re-derive the same small patterns instead of
// factoring them into shared infrastructure; pedagogical repetition is the
// point. The reusable primitives live under internal/: a poisonable mutex,
// a lock-guarded counter, a read/write-locked sequence, an MPSC hand-off
// queue, ordered two-resource acquisition, explicit strong/weak reference
// cells, a weak-parent tree, memoized Fibonacci, and a sorted post-ID
// index.
//
// # Running Buggy Variants
//
// Buggy demos misbehave on purpose. The [Runner] converts a demo panic
// into an error at the demo boundary, so one crashing demo never takes
// down a --all run. Demos that are unsafe even under a recover (the
// inverted-lock-order deadlock) are not registered at all; see
// examples/deadlock_inverted for the standalone, watchdog-guarded version.
package lab
