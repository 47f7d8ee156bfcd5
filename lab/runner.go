package lab

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner executes demos with structured logging and a panic boundary.
type Runner struct {
	// Log receives one start and one end record per demo run. Defaults
	// to slog.Default.
	Log *slog.Logger

	// Out receives the demos' human-readable output. Defaults to stdout.
	Out io.Writer

	// Timeout bounds a single demo run. Zero means no bound.
	Timeout time.Duration
}

// NewRunner returns a runner writing demo output to stdout. A nil logger
// selects slog.Default.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{Log: log}
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Run executes one demo. A panicking demo is recovered here and reported
// as an error: abnormal termination of a single demonstration is a
// recoverable condition at this boundary, not a process abort.
func (r *Runner) Run(ctx context.Context, d Demo) error {
	return r.run(ctx, d, r.out())
}

func (r *Runner) run(ctx context.Context, d Demo, out io.Writer) (err error) {
	runID := uuid.NewString()
	log := r.logger().With(
		"run_id", runID, "demo", d.Name, "topic", d.Topic, "variant", string(d.Variant))

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	log.Info("demo starting")
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Newf("demo %s panicked: %v", d.Name, rec)
		}
		if err != nil {
			log.Error("demo failed", "dur", time.Since(start), "err", err)
			return
		}
		log.Info("demo finished", "dur", time.Since(start))
	}()

	return d.Run(ctx, out)
}

// RunAll executes the given demos (all registered ones if names is empty)
// with at most parallelism running at once. When running in parallel each
// demo's output is buffered and flushed whole, so interleaving never
// garbles the transcript. Every demo runs even if an earlier one fails;
// the errors are combined.
func (r *Runner) RunAll(ctx context.Context, names []string, parallelism int) error {
	demos := All()
	if len(names) > 0 {
		demos = demos[:0:0]
		for _, name := range names {
			d, err := ByName(name)
			if err != nil {
				return err
			}
			demos = append(demos, d)
		}
	}
	if parallelism < 1 {
		parallelism = 1
	}

	var g errgroup.Group
	g.SetLimit(parallelism)

	var mu sync.Mutex // guards Out
	var errsMu sync.Mutex
	var failed error

	for _, d := range demos {
		d := d
		g.Go(func() error {
			var buf bytes.Buffer
			err := r.run(ctx, d, &buf)

			mu.Lock()
			_, _ = io.Copy(r.out(), &buf)
			mu.Unlock()

			if err != nil {
				errsMu.Lock()
				failed = errors.CombineErrors(failed, err)
				errsMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failed
}
