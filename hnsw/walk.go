package hnsw

import (
	"context"
	"fmt"
	"strconv"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/metrics"
	"github.com/rs/zerolog/log"
)

// Walk performs a greedy walk at one level: starting from entry it repeatedly
// moves to whichever of the current point and its neighbours is nearest to
// target, and stops when the current point wins. The trace holds every visited
// id, entry first and result last.
//
// The current point is ranked ahead of its neighbours, so a neighbour at equal
// distance never causes a move and consecutive trace distances strictly
// decrease. The walk fails with core.ErrNonConvergence once it has made more
// moves than the step budget allows, and with ctx's error if ctx is done.
func (g *Graph) Walk(ctx context.Context, entry int, target []float64, level int) (int, []int, error) {
	if len(target) != g.store.Dimension() {
		return 0, nil, fmt.Errorf("%w: target has dimension %d, graph has %d",
			core.ErrInvalidQuery, len(target), g.store.Dimension())
	}
	if level < 0 || level >= len(g.layers) {
		return 0, nil, fmt.Errorf("%w: level %d outside 0..%d", core.ErrInvalidQuery, level, g.TopLevel())
	}
	l := &g.layers[level]
	if !l.contains(entry) {
		return 0, nil, fmt.Errorf("%w: point %d is not present at level %d", core.ErrInvalidQuery, entry, level)
	}

	budget := g.maxSteps
	if budget <= 0 {
		budget = len(l.members)
	}

	current := entry
	trace := []int{entry}
	candidates := make([]Point, 0, l.degree+1)
	for moves := 0; ; moves++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, fmt.Errorf("walk at level %d interrupted: %w", level, err)
		}

		candidates = candidates[:0]
		candidates = append(candidates, g.store.view(current))
		for _, id := range l.list(current) {
			candidates = append(candidates, g.store.view(id))
		}
		best, err := rank(g.distance, target, candidates, 1)
		if err != nil {
			return 0, nil, err
		}

		next := best[0].ID
		if next == current {
			metrics.WalkSteps.WithLabelValues(strconv.Itoa(level)).Observe(float64(moves))
			log.Debug().Msgf("Walk at level %d converged on %d after %d moves", level, current, moves)
			return current, trace, nil
		}
		if moves >= budget {
			return 0, nil, fmt.Errorf("%w: level %d walk exceeded %d moves", core.ErrNonConvergence, level, budget)
		}
		trace = append(trace, next)
		current = next
	}
}
