package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/example"
	"github.com/spf13/cobra"
)

func newEvalCommand(gf *graphFlags) *cobra.Command {
	var (
		queries  int
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Measure how often greedy descent finds the exact nearest point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if queries <= 0 {
				return fmt.Errorf("%w: queries must be positive, got %d", core.ErrInvalidConfiguration, queries)
			}
			g, f, err := gf.buildGraph(cmd)
			if err != nil {
				return err
			}
			// Targets come from a generator derived from the graph seed so runs repeat.
			targets := example.RandomTargets(queries, g.Dimension(), core.NewRand(*f.Seed+1))

			var bar io.Writer
			if progress {
				bar = cmd.ErrOrStderr()
			}
			report, err := example.Evaluate(context.Background(), g, targets, f.Workers, bar)
			if err != nil {
				return err
			}

			stats := g.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Indexed %d points (%d dimensions, top level %d, M=%d, %d edges)\n",
				stats.Count, stats.Dimension, stats.TopLevel, stats.MaxNeighbours, stats.Edges)
			fmt.Fprintf(out, "Queries:     %d\n", report.Queries)
			fmt.Fprintf(out, "Recall@1:    %.3f\n", report.Recall)
			fmt.Fprintf(out, "Moves/query: %.2f\n", report.MeanSteps)
			fmt.Fprintf(out, "Elapsed:     %s\n", report.Elapsed)
			return nil
		},
	}
	cmd.Flags().IntVarP(&queries, "queries", "q", 1000, "Number of random targets")
	cmd.Flags().BoolVar(&progress, "progress", true, "Show a progress bar on stderr")
	return cmd
}
