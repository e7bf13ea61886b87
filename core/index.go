package core

import "context"

// Searcher is implemented by structures that locate the point nearest a target.
type Searcher interface {
	// Search returns the point the structure judges nearest to target.
	Search(ctx context.Context, target []float64) (Result, error)
	// Stats returns metadata about the structure.
	Stats() IndexStats
}

// Result is the outcome of a single query.
type Result struct {
	PointID int           // id of the point the search settled on
	Coords  []float64     // coordinates of that point (a copy)
	Trace   map[int][]int // visited point ids per level, in visitation order
	Steps   int           // number of moves made across all levels
}

// Neighbor holds a neighbor's id and its computed distance.
type Neighbor struct {
	ID       int
	Distance float64
}

// IndexStats contains metadata about the index.
type IndexStats struct {
	Count         int    // total number of indexed points
	Dimension     int    // dimensionality of points
	TopLevel      int    // highest populated level
	MaxNeighbours int    // neighbour list bound per level
	Edges         int    // total directed edges across all levels
	Distance      string // name of the distance metric
}
