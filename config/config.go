// Package config loads graph and query settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/hnsw"
	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout. Nil graph fields mean "use the default"; a
// value that is present, zero included, is passed on to validation. MaxSteps
// and Workers treat zero as their default.
type File struct {
	Points        *int     `yaml:"points"`
	Dimension     *int     `yaml:"dimension"`
	MaxNeighbours *int     `yaml:"max_neighbours"`
	LevelDecay    *float64 `yaml:"level_decay"`
	Seed          *int64   `yaml:"seed"`
	MaxSteps      int      `yaml:"max_steps"`
	Workers       int      `yaml:"workers"`
	Distance      string   `yaml:"distance"`
}

// Load reads and parses the YAML file at path. Environment variables in the
// file are expanded, and unknown keys are rejected. An empty path yields an
// empty File.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}
	return Parse(os.ExpandEnv(string(data)))
}

// Parse decodes YAML text into a File.
func Parse(text string) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(strings.NewReader(text))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidConfiguration, err)
	}
	return &f, nil
}

// Graph merges the fields that are set over hnsw.DefaultConfig. The result is
// not validated.
func (f *File) Graph() hnsw.Config {
	cfg := hnsw.DefaultConfig()
	if f.Points != nil {
		cfg.PointCount = *f.Points
	}
	if f.Dimension != nil {
		cfg.Dimension = *f.Dimension
	}
	if f.MaxNeighbours != nil {
		cfg.MaxNeighbours = *f.MaxNeighbours
	}
	if f.LevelDecay != nil {
		cfg.LevelDecay = *f.LevelDecay
	}
	return cfg
}

// Options translates the search settings into graph options.
func (f *File) Options() ([]hnsw.Option, error) {
	var opts []hnsw.Option
	if f.MaxSteps > 0 {
		opts = append(opts, hnsw.WithMaxSteps(f.MaxSteps))
	}
	if f.Distance != "" {
		fn, ok := core.Distances[f.Distance]
		if !ok {
			return nil, fmt.Errorf("%w: unknown distance %q", core.ErrInvalidConfiguration, f.Distance)
		}
		opts = append(opts, hnsw.WithDistance(f.Distance, fn))
	}
	return opts, nil
}

// SeedOrDefault returns the configured seed, or core.GetSeed() when none is set.
func (f *File) SeedOrDefault() int64 {
	if f.Seed != nil {
		return *f.Seed
	}
	return core.GetSeed()
}
