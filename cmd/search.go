package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/example"
	"github.com/spf13/cobra"
)

// searchOutput is the JSON shape of a search result.
type searchOutput struct {
	PointID int           `json:"point_id"`
	Coords  []float64     `json:"coords"`
	Steps   int           `json:"steps"`
	Trace   map[int][]int `json:"trace"`
}

func newSearchCommand(gf *graphFlags) *cobra.Command {
	var (
		target []float64
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Build a graph and search it for one target",
		Long: `Build a layered graph and run one greedy descent query, printing the
point found and the walk taken at every level.

Examples:
  hwalk search --target 1,1
  hwalk search -n 2000 -m 8 --decay 0.3 --seed 7 --target -0.5,2
  hwalk search --config hwalk.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, err := gf.buildGraph(cmd)
			if err != nil {
				return err
			}
			if len(target) == 0 {
				target = make([]float64, g.Dimension())
				for i := range target {
					target[i] = 1
				}
			}
			res, err := g.Search(context.Background(), target)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			return writeSearch(cmd.OutOrStdout(), res, asJSON)
		},
	}
	cmd.Flags().Float64SliceVarP(&target, "target", "t", nil, "Target coordinates (default: all ones)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the result as JSON")
	return cmd
}

func writeSearch(w io.Writer, res core.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(searchOutput{
			PointID: res.PointID,
			Coords:  res.Coords,
			Steps:   res.Steps,
			Trace:   res.Trace,
		})
	}
	fmt.Fprintf(w, "Walk:\n%s", example.FormatTrace(res.Trace))
	fmt.Fprintf(w, "Final position:\nindex: %d\nposition: %s\n", res.PointID, example.FormatCoords(res.Coords))
	return nil
}
