package hnsw_test

import (
	"errors"
	"testing"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/hnsw"
)

func TestConfig_Validate(t *testing.T) {
	valid := hnsw.DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*hnsw.Config)
	}{
		{"zero points", func(c *hnsw.Config) { c.PointCount = 0 }},
		{"zero dimension", func(c *hnsw.Config) { c.Dimension = 0 }},
		{"zero neighbours", func(c *hnsw.Config) { c.MaxNeighbours = 0 }},
		{"zero decay", func(c *hnsw.Config) { c.LevelDecay = 0 }},
		{"decay above one", func(c *hnsw.Config) { c.LevelDecay = 1.01 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := hnsw.DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
			if _, err := hnsw.Build(cfg, core.NewRand(1)); !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("Build: expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestBuild_HigherDimension(t *testing.T) {
	cfg := hnsw.Config{PointCount: 200, Dimension: 8, MaxNeighbours: 4, LevelDecay: 0.5}
	g, err := hnsw.Build(cfg, core.NewRand(5), hnsw.WithDistance("euclidean", core.Euclidean))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Dimension() != 8 || g.Len() != 200 || g.MaxNeighbours() != 4 {
		t.Errorf("unexpected graph shape: %+v", g.Stats())
	}
	if g.Stats().Distance != "euclidean" {
		t.Errorf("expected euclidean distance, got %q", g.Stats().Distance)
	}
}
