// Package main implements the golab CLI.
//
// golab runs the lab's demonstration programs: paired buggy/fixed demos
// covering concurrency primitives, error handling, memory/ownership
// management, and micro-performance optimization.
//
// Usage:
//
//	golab list                  # show every registered demo
//	golab run counter-mutex     # run one demo
//	golab run --all             # run everything
//	golab version               # lab version info
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "golab [command] (flags)",
	Short: "golab teaching-lab demo runner",
	Long:  ``,
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		listCmd,
		runCmd,
		versionCmd,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the structured logger shared by all commands. Demo
// output goes to stdout; run records go to stderr so transcripts stay
// clean when piped.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
