package hnsw

import (
	"fmt"
	"sort"

	"github.com/patrikhermansson/hwalk/core"
)

// Nearest returns the ids of the k candidates nearest to target under squared
// Euclidean distance, nearest first. Candidates at equal distance keep their
// relative input order.
func Nearest(target []float64, candidates []Point, k int) ([]int, error) {
	return NearestBy(core.SquaredEuclidean, target, candidates, k)
}

// NearestBy is Nearest with a caller-supplied distance function.
func NearestBy(distance core.DistanceFunc, target []float64, candidates []Point, k int) ([]int, error) {
	ranked, err := rank(distance, target, candidates, k)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(ranked))
	for i, n := range ranked {
		ids[i] = n.ID
	}
	return ids, nil
}

// rank orders candidates by distance to target and keeps the first k.
func rank(distance core.DistanceFunc, target []float64, candidates []Point, k int) ([]core.Neighbor, error) {
	if k <= 0 {
		return []core.Neighbor{}, nil
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: asked for %d nearest of none", core.ErrEmptyCandidateSet, k)
	}
	ranked := make([]core.Neighbor, len(candidates))
	for i, c := range candidates {
		ranked[i] = core.Neighbor{ID: c.ID, Distance: distance(target, c.Coords)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked[:min(k, len(ranked))], nil
}
