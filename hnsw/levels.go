package hnsw

import (
	"fmt"
	"math/rand/v2"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat/distuv"
)

// MaxLevelCap is the upper bound for a point's level.
const MaxLevelCap = 32

// geometricLevel counts failed trials before the first success, so the result
// is a zero-based geometric draw with stop probability trial.P.
func geometricLevel(trial distuv.Bernoulli) int {
	level := 0
	for level < MaxLevelCap && trial.Rand() == 0 {
		level++
	}
	return level
}

// GeneratePoints draws n points of the given dimension with standard normal
// coordinates and geometric levels with stop probability decay.
func GeneratePoints(n, dim int, decay float64, rng *rand.Rand) (*PointStore, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: point count must be positive, got %d", core.ErrInvalidConfiguration, n)
	}
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", core.ErrInvalidConfiguration, dim)
	}
	if !(decay > 0 && decay <= 1) {
		return nil, fmt.Errorf("%w: level decay must be in (0, 1], got %v", core.ErrInvalidConfiguration, decay)
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	trial := distuv.Bernoulli{P: decay, Src: rng}

	coords := make([][]float64, n)
	levels := make([]int, n)
	for i := range coords {
		c := make([]float64, dim)
		for d := range c {
			c[d] = normal.Rand()
		}
		coords[i] = c
		levels[i] = geometricLevel(trial)
	}
	store, err := NewPointStore(coords, levels)
	if err != nil {
		return nil, err
	}
	log.Debug().Msgf("Generated %d points (dim=%d, decay=%v, top level %d)", n, dim, decay, store.TopLevel())
	return store, nil
}
