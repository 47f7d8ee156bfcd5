package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kolkov/golab/lab"
)

var (
	runAll      bool
	parallelism int
	timeout     time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run [demo]...",
	Short: "run one or more demos by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !runAll && len(args) == 0 {
			return fmt.Errorf("name at least one demo, or pass --all")
		}
		if runAll && len(args) > 0 {
			return fmt.Errorf("--all and explicit demo names are mutually exclusive")
		}

		r := &lab.Runner{
			Log:     newLogger(),
			Out:     cmd.OutOrStdout(),
			Timeout: timeout,
		}
		return r.RunAll(cmd.Context(), args, parallelism)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print lab version info",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := lab.GetInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "golab %s (%d demos, topics: %v)\n",
			info.Version, info.Demos, info.Topics)
	},
}

func init() {
	runCmd.Flags().BoolVar(
		&runAll, "all", false, "run every registered demo")
	runCmd.Flags().IntVarP(
		&parallelism, "parallelism", "p", 1, "number of demos to run at once")
	runCmd.Flags().DurationVarP(
		&timeout, "timeout", "t", time.Minute, "per-demo time limit (0 for none)")
}
