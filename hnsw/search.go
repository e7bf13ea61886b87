package hnsw

import (
	"context"
	"fmt"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/metrics"
	"github.com/rs/zerolog/log"
)

// EntryPoint returns the lowest id present at the top level.
func (g *Graph) EntryPoint() (int, error) {
	if g == nil || g.store == nil || g.store.Len() == 0 {
		return 0, core.ErrEmptyGraph
	}
	return g.layers[g.TopLevel()].members[0], nil
}

// Search descends from the top level to level 0, walking greedily at each
// level and starting every walk where the previous one ended. Either the full
// result is returned or an error; there are no partial traces.
func (g *Graph) Search(ctx context.Context, target []float64) (core.Result, error) {
	res, err := g.search(ctx, target)
	if err != nil {
		metrics.Searches.WithLabelValues("error").Inc()
		return core.Result{}, err
	}
	metrics.Searches.WithLabelValues("ok").Inc()
	return res, nil
}

func (g *Graph) search(ctx context.Context, target []float64) (core.Result, error) {
	entry, err := g.EntryPoint()
	if err != nil {
		return core.Result{}, err
	}
	if len(target) != g.store.Dimension() {
		return core.Result{}, fmt.Errorf("%w: target has dimension %d, graph has %d",
			core.ErrInvalidQuery, len(target), g.store.Dimension())
	}

	trace := make(map[int][]int, len(g.layers))
	steps := 0
	current := entry
	for level := g.TopLevel(); level >= 0; level-- {
		next, walk, err := g.Walk(ctx, current, target, level)
		if err != nil {
			return core.Result{}, fmt.Errorf("search from entry %d: %w", entry, err)
		}
		trace[level] = walk
		steps += len(walk) - 1
		current = next
	}

	log.Debug().Msgf("Search settled on point %d after %d moves", current, steps)
	return core.Result{
		PointID: current,
		Coords:  g.store.Coords(current),
		Trace:   trace,
		Steps:   steps,
	}, nil
}

// Check interface compliance at compile time.
var _ core.Searcher = (*Graph)(nil)
