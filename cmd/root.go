// Package cmd implements the hwalk command line.
package cmd

import (
	"fmt"

	"github.com/patrikhermansson/hwalk/config"
	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/hnsw"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// graphFlags are the flags shared by every subcommand.
type graphFlags struct {
	configPath string
	points     int
	dimension  int
	m          int
	decay      float64
	seed       int64
	maxSteps   int
	workers    int
	distance   string
}

// NewRootCommand assembles the hwalk command tree.
func NewRootCommand() *cobra.Command {
	gf := &graphFlags{}
	root := &cobra.Command{
		Use:   "hwalk",
		Short: "Layered proximity graph with greedy descent search",
		Long: `hwalk builds a hierarchy of random proximity graphs over gaussian points
and locates the point nearest a target by greedy descent from the top level.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&gf.configPath, "config", "c", "", "Path to a YAML configuration file")
	flags.IntVarP(&gf.points, "points", "n", 0, "Number of points (default 500)")
	flags.IntVarP(&gf.dimension, "dim", "d", 0, "Dimensionality of the points (default 2)")
	flags.IntVarP(&gf.m, "max-neighbours", "m", 0, "Max neighbours per point and level (default 5)")
	flags.Float64Var(&gf.decay, "decay", 0, "Level decay probability in (0, 1] (default 0.5)")
	flags.Int64Var(&gf.seed, "seed", 0, "Random seed (default HWALK_SEED or the clock)")
	flags.IntVar(&gf.maxSteps, "max-steps", 0, "Move budget per level walk (default: level size)")
	flags.IntVarP(&gf.workers, "workers", "w", 0, "Concurrent queries (default: number of CPUs)")
	flags.StringVar(&gf.distance, "distance", "", "Distance metric: squared_euclidean, euclidean or manhattan")

	root.AddCommand(newSearchCommand(gf), newEvalCommand(gf))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// settings loads the configuration file and applies any flags set on cmd.
func (gf *graphFlags) settings(cmd *cobra.Command) (*config.File, error) {
	f, err := config.Load(gf.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("points") {
		f.Points = &gf.points
	}
	if flags.Changed("dim") {
		f.Dimension = &gf.dimension
	}
	if flags.Changed("max-neighbours") {
		f.MaxNeighbours = &gf.m
	}
	if flags.Changed("decay") {
		f.LevelDecay = &gf.decay
	}
	if flags.Changed("seed") {
		seed := gf.seed
		f.Seed = &seed
	}
	if flags.Changed("max-steps") {
		f.MaxSteps = gf.maxSteps
	}
	if flags.Changed("workers") {
		f.Workers = gf.workers
	}
	if flags.Changed("distance") {
		f.Distance = gf.distance
	}
	return f, nil
}

// buildGraph builds the graph described by the merged settings. The returned
// file always carries the seed that was used.
func (gf *graphFlags) buildGraph(cmd *cobra.Command) (*hnsw.Graph, *config.File, error) {
	f, err := gf.settings(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts, err := f.Options()
	if err != nil {
		return nil, nil, err
	}
	seed := f.SeedOrDefault()
	f.Seed = &seed
	cfg := f.Graph()
	log.Debug().Msgf("Building graph: %+v, seed %d", cfg, seed)
	g, err := hnsw.Build(cfg, core.NewRand(seed), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("build failed: %w", err)
	}
	return g, f, nil
}
