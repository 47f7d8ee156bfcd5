package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kolkov/golab/lab"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list registered demos by topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
		for _, topic := range lab.Topics() {
			fmt.Fprintf(w, "%s\t\t\n", topic)
			for _, d := range lab.ByTopic(topic) {
				fmt.Fprintf(w, "  %s\t[%s]\t%s\n", d.Name, d.Variant, d.Summary)
			}
		}
		return w.Flush()
	},
}
