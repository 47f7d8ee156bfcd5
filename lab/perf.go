package lab

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/golab/internal/bench"
	"github.com/kolkov/golab/internal/counter"
	"github.com/kolkov/golab/internal/feed"
	"github.com/kolkov/golab/internal/fib"
)

func init() {
	register(Demo{
		Name:    "perf-naive",
		Topic:   TopicPerf,
		Variant: Buggy,
		Summary: "quadratic string building, linear scans, exponential recursion",
		Run:     runPerfNaive,
	})
	register(Demo{
		Name:    "perf-tuned",
		Topic:   TopicPerf,
		Variant: Fixed,
		Summary: "preallocation, binary search, memoization, batched locking",
		Run:     runPerfTuned,
	})
}

const (
	concatItems = 2000
	scanQueries = 2000
	lockOps     = 10000
)

func demoUser() *feed.User {
	u := feed.NewUser(1, "Alice", "alice@example.com")
	for i := uint32(0); i < 5000; i++ {
		u.AddPost(i * 2)
	}
	return u
}

// runPerfNaive measures the anti-patterns. Every variant here produces a
// correct answer; the waste is the lesson.
func runPerfNaive(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Micro-Performance: Naive Variants (BUGGY) ===")
	fmt.Fprintln(out)

	u := demoUser()
	posts := u.Posts()

	results := []bench.Result{
		bench.Measure("string += concat", 1, func(int) {
			s := ""
			for i := 0; i < concatItems; i++ {
				s += fmt.Sprintf("item%d, ", i) // quadratic: re-copies every time
			}
			_ = s
		}),
		bench.Measure("append without prealloc", 1, func(int) {
			var xs []int
			for i := 0; i < 100_000; i++ {
				xs = append(xs, i) // regrows and re-copies repeatedly
			}
		}),
		bench.Measure("linear post scan", scanQueries, func(i int) {
			id := uint32(i)
			for _, p := range posts { // O(n) per lookup
				if p == id {
					break
				}
			}
		}),
		bench.Measure("map with string keys", 1, func(int) {
			m := make(map[string]int)
			for i := 0; i < 50_000; i++ {
				m[fmt.Sprintf("user-%d", i)] = i // formats and hashes a string per op
			}
		}),
		bench.Measure("naive fibonacci(30)", 1, func(int) {
			_ = fib.Naive(30) // exponential double recursion
		}),
		bench.Measure("lock per operation", 1, func(int) {
			c := counter.New(0)
			for i := 0; i < lockOps; i++ {
				_ = c.Inc() // acquire/release 10k times
			}
		}),
	}

	bench.RenderTable(out, results)
	fmt.Fprintln(out, "✗ correct answers, wasteful routes")
	return nil
}

// runPerfTuned measures the corrected variants of the same work.
func runPerfTuned(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Micro-Performance: Tuned Variants ===")
	fmt.Fprintln(out)

	u := demoUser()

	results := []bench.Result{
		bench.Measure("strings.Builder with Grow", 1, func(int) {
			var b strings.Builder
			b.Grow(concatItems * 10)
			for i := 0; i < concatItems; i++ {
				fmt.Fprintf(&b, "item%d, ", i)
			}
			_ = b.String()
		}),
		bench.Measure("append with prealloc", 1, func(int) {
			xs := make([]int, 0, 100_000)
			for i := 0; i < 100_000; i++ {
				xs = append(xs, i)
			}
		}),
		bench.Measure("binary post search", scanQueries, func(i int) {
			u.ContainsPost(uint32(i)) // O(log n) per lookup
		}),
		bench.Measure("map with int keys", 1, func(int) {
			m := make(map[int]int, 50_000)
			for i := 0; i < 50_000; i++ {
				m[i] = i
			}
		}),
		bench.Measure("memoized fibonacci(35)", 1, func(int) {
			_ = fib.At(35)
		}),
		bench.Measure("single lock, batched ops", 1, func(int) {
			c := counter.New(0)
			_ = c.Update(func(v int) int { // one acquisition for the batch
				for i := 0; i < lockOps; i++ {
					v++
				}
				return v
			})
		}),
	}

	bench.RenderTable(out, results)
	fmt.Fprintf(out, "memoized fibonacci(35) = %d\n", fib.At(35))
	fmt.Fprintln(out, "✓ same answers, bounded work")
	return nil
}
