package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/hnsw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := Parse(`
points: 1000
dimension: 3
max_neighbours: 8
level_decay: 0.25
seed: 42
max_steps: 64
workers: 4
distance: euclidean
`)
	require.NoError(t, err)
	require.NotNil(t, f.Points)
	assert.Equal(t, 1000, *f.Points)
	assert.Equal(t, 4, f.Workers)
	require.NotNil(t, f.Seed)
	assert.Equal(t, int64(42), f.SeedOrDefault())

	cfg := f.Graph()
	assert.Equal(t, hnsw.Config{PointCount: 1000, Dimension: 3, MaxNeighbours: 8, LevelDecay: 0.25}, cfg)

	opts, err := f.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse("points: 10\nneighbours: 3\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidConfiguration))
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, hnsw.DefaultConfig(), f.Graph())
}

func TestGraph_ExplicitZeroIsKept(t *testing.T) {
	f, err := Parse("points: 0\nlevel_decay: 0\n")
	require.NoError(t, err)
	cfg := f.Graph()
	assert.Equal(t, 0, cfg.PointCount)
	assert.Equal(t, 0.0, cfg.LevelDecay)
	assert.Equal(t, hnsw.DefaultConfig().Dimension, cfg.Dimension)
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfiguration)
}

func TestOptions_UnknownDistance(t *testing.T) {
	f := &File{Distance: "hamming"}
	_, err := f.Options()
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points: ${HWALK_TEST_POINTS}\n"), 0o644))
	t.Setenv("HWALK_TEST_POINTS", "77")

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.Points)
	assert.Equal(t, 77, *f.Points)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}
