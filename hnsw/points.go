package hnsw

import (
	"fmt"

	"github.com/patrikhermansson/hwalk/core"
)

// Point is a read-only view of one indexed point.
type Point struct {
	ID       int       // unique identifier, equal to the point's position in the store
	Coords   []float64 // coordinates
	MaxLevel int       // highest level the point participates in
}

// PointStore holds the immutable set of indexed points.
// Coordinates live in one flat arena with a fixed stride.
type PointStore struct {
	dim      int
	coords   []float64
	levels   []int
	topLevel int
}

// NewPointStore copies coords and levels into a new store. Point i gets id i.
func NewPointStore(coords [][]float64, levels []int) (*PointStore, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("%w: point set is empty", core.ErrInvalidConfiguration)
	}
	if len(coords) != len(levels) {
		return nil, fmt.Errorf("%w: %d coordinate vectors but %d levels",
			core.ErrInvalidConfiguration, len(coords), len(levels))
	}
	dim := len(coords[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: points must have at least one dimension", core.ErrInvalidConfiguration)
	}
	s := &PointStore{
		dim:    dim,
		coords: make([]float64, 0, dim*len(coords)),
		levels: make([]int, len(levels)),
	}
	for i, c := range coords {
		if len(c) != dim {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d",
				core.ErrInvalidConfiguration, i, len(c), dim)
		}
		if levels[i] < 0 {
			return nil, fmt.Errorf("%w: point %d has negative level %d",
				core.ErrInvalidConfiguration, i, levels[i])
		}
		s.coords = append(s.coords, c...)
		s.levels[i] = levels[i]
		if levels[i] > s.topLevel {
			s.topLevel = levels[i]
		}
	}
	return s, nil
}

// Len returns the number of points.
func (s *PointStore) Len() int { return len(s.levels) }

// Dimension returns the dimensionality shared by all points.
func (s *PointStore) Dimension() int { return s.dim }

// TopLevel returns the maximum MaxLevel across all points.
func (s *PointStore) TopLevel() int { return s.topLevel }

// vector returns the coordinates of id without copying.
func (s *PointStore) vector(id int) []float64 {
	start := id * s.dim
	return s.coords[start : start+s.dim : start+s.dim]
}

// view returns id as a Point backed by the arena. Only for in-package
// readers; exported accessors hand out copies.
func (s *PointStore) view(id int) Point {
	return Point{ID: id, Coords: s.vector(id), MaxLevel: s.levels[id]}
}

// Point returns a copy of the point with the given id.
func (s *PointStore) Point(id int) (Point, bool) {
	if id < 0 || id >= len(s.levels) {
		return Point{}, false
	}
	return Point{ID: id, Coords: s.Coords(id), MaxLevel: s.levels[id]}, true
}

// Coords returns a copy of the coordinates of id, or nil if id is unknown.
func (s *PointStore) Coords(id int) []float64 {
	if id < 0 || id >= len(s.levels) {
		return nil
	}
	out := make([]float64, s.dim)
	copy(out, s.vector(id))
	return out
}

// Points returns a copy of every point in id order.
func (s *PointStore) Points() []Point {
	out := make([]Point, len(s.levels))
	for id := range s.levels {
		out[id], _ = s.Point(id)
	}
	return out
}

// Members returns, in ascending id order, the ids of every point whose MaxLevel
// is at least level.
func (s *PointStore) Members(level int) []int {
	var ids []int
	for id, l := range s.levels {
		if l >= level {
			ids = append(ids, id)
		}
	}
	return ids
}
