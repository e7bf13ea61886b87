package hnsw

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/metrics"
	"github.com/rs/zerolog/log"
)

// Config holds the parameters of a generated graph.
type Config struct {
	PointCount    int     // number of points to draw
	Dimension     int     // coordinates per point
	MaxNeighbours int     // neighbour list bound M
	LevelDecay    float64 // stop probability of the level draw, in (0, 1]
}

// DefaultConfig mirrors the reference construction: 500 points in the plane,
// 5 neighbours and a level decay of one half.
func DefaultConfig() Config {
	return Config{
		PointCount:    500,
		Dimension:     2,
		MaxNeighbours: 5,
		LevelDecay:    0.5,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.PointCount <= 0:
		return fmt.Errorf("%w: point count must be positive, got %d", core.ErrInvalidConfiguration, c.PointCount)
	case c.Dimension <= 0:
		return fmt.Errorf("%w: dimension must be positive, got %d", core.ErrInvalidConfiguration, c.Dimension)
	case c.MaxNeighbours <= 0:
		return fmt.Errorf("%w: max neighbours must be positive, got %d", core.ErrInvalidConfiguration, c.MaxNeighbours)
	case !(c.LevelDecay > 0 && c.LevelDecay <= 1):
		return fmt.Errorf("%w: level decay must be in (0, 1], got %v", core.ErrInvalidConfiguration, c.LevelDecay)
	}
	return nil
}

// Build draws the points described by cfg and links them into a layered graph.
// All randomness comes from rng.
func Build(cfg Config, rng *rand.Rand, opts ...Option) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	store, err := GeneratePoints(cfg.PointCount, cfg.Dimension, cfg.LevelDecay, rng)
	if err != nil {
		return nil, err
	}
	g, err := NewGraph(store, cfg.MaxNeighbours, rng, opts...)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.BuildDuration.Observe(elapsed.Seconds())
	log.Info().Msgf("Graph ready in %s", elapsed)
	return g, nil
}
