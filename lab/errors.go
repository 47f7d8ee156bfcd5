package lab

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/kolkov/golab/internal/config"
)

func init() {
	register(Demo{
		Name:    "config-unchecked",
		Topic:   TopicErrors,
		Variant: Buggy,
		Summary: "blind use of a possibly-failed result: ignores the error, then panics",
		Run:     runConfigUnchecked,
	})
	register(Demo{
		Name:    "config-validated",
		Topic:   TopicErrors,
		Variant: Fixed,
		Summary: "classified errors: parse vs validation vs I/O, with local fallbacks",
		Run:     runConfigValidated,
	})
}

// runConfigUnchecked discards the error from a fallible load and charges
// ahead with the nil result. The panic is real; the Runner's boundary
// recover is what keeps the process alive.
func runConfigUnchecked(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Unchecked Config Load (BUGGY) ===")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "loading config.yaml and ignoring the error...")
	cfg, _ := config.Load("config.yaml") // BUG: error discarded

	// BUG: cfg is nil when the load failed; this dereference panics.
	fmt.Fprintf(out, "listening on %s:%d\n", cfg.Host, cfg.Port)
	return nil
}

// runConfigValidated inspects every fallible outcome: parse failures,
// validation failures, and I/O failures each get their own handling, and
// a failed load recovers locally with the default config.
func runConfigValidated(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Validated Configuration ===")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Port validation ---")
	for _, s := range []string{"8080", "99999", "0", "65536", "abc"} {
		port, err := config.ValidatePort(s)
		switch {
		case err == nil:
			fmt.Fprintf(out, "  %-6q -> valid port %d\n", s, port)
		case errors.Is(err, config.ErrParse):
			fmt.Fprintf(out, "  %-6q -> parse failure: %v\n", s, err)
		case errors.Is(err, config.ErrValidation):
			fmt.Fprintf(out, "  %-6q -> validation failure: %v\n", s, err)
		default:
			fmt.Fprintf(out, "  %-6q -> %v\n", s, err)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Mixed numeric input ---")
	inputs := []string{"123", "not_a_number", "456", "invalid"}
	vals, err := config.ParseInts(inputs)
	fmt.Fprintf(out, "  inputs: %q\n", inputs)
	fmt.Fprintf(out, "  parsed: %v\n", vals)
	if err != nil {
		fmt.Fprintf(out, "  failures reported, not swallowed: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Debug level ---")
	cfg := config.Default()
	if err := cfg.SetDebugLevel("debug"); err == nil {
		fmt.Fprintf(out, "  level set to %q\n", cfg.DebugLevel())
	}
	if err := cfg.SetDebugLevel("bogus"); err != nil {
		fmt.Fprintf(out, "  rejected: %v\n", err)
		fmt.Fprintf(out, "  level unchanged: %q\n", cfg.DebugLevel())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- File loading with fallback ---")
	if _, err := config.Load("config.yaml"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(out, "  config.yaml not found (surfaced, not swallowed)")
		} else {
			fmt.Fprintf(out, "  load failed: %v\n", err)
		}
	}
	fallback := config.LoadOrDefault("config.yaml", slog.Default())
	fmt.Fprintf(out, "  using %s:%d, timeout %v, level %q\n",
		fallback.Host, fallback.Port, fallback.Timeout, fallback.DebugLevel())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Panic recovery at a boundary ---")
	xs := []int{1, 2, 3}
	v, err := Recovered(func() int { return xs[7] })
	if err != nil {
		fmt.Fprintf(out, "  abnormal termination intercepted: %v\n", err)
		v = 0
		fmt.Fprintf(out, "  using fallback value: %d\n", v)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ every fallible outcome was inspected")
	return nil
}
