package commands

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/graphmesh/internal/app"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <document.yaml>",
		Short: "Populate a style document and report template usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Stats(cmd.Context(), args[0], app.Options{Parallel: c.parallel})
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), args[0], report)
		},
	}
	cmd.Flags().IntVarP(&c.parallel, "parallel", "p", 0, "Populate with this many goroutines on a shared cache")
	return cmd
}
