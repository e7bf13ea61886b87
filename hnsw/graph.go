package hnsw

import (
	"fmt"
	"math/rand/v2"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// layer is the adjacency of one level. Neighbour lists have a fixed length
// (degree) and are stored back to back in member order.
type layer struct {
	members    []int // ids present at this level, ascending
	slot       []int // id -> position in members, -1 when absent
	degree     int   // length of every neighbour list
	neighbours []int // len(members)*degree ids
}

func (l *layer) contains(id int) bool {
	return id >= 0 && id < len(l.slot) && l.slot[id] >= 0
}

func (l *layer) list(id int) []int {
	pos := l.slot[id]
	start := pos * l.degree
	return l.neighbours[start : start+l.degree : start+l.degree]
}

// Graph is the layered proximity graph. It is never modified after NewGraph
// returns, so any number of goroutines may search it concurrently.
type Graph struct {
	store        *PointStore
	m            int
	layers       []layer
	distance     core.DistanceFunc
	distanceName string
	maxSteps     int
}

// Option configures a Graph.
type Option func(*Graph)

// WithDistance replaces squared Euclidean as the ranking metric.
func WithDistance(name string, fn core.DistanceFunc) Option {
	return func(g *Graph) {
		g.distanceName = name
		g.distance = fn
	}
}

// WithMaxSteps caps the number of moves a single level walk may make.
// Zero or negative means the number of members of the walked level.
func WithMaxSteps(n int) Option {
	return func(g *Graph) {
		g.maxSteps = n
	}
}

// NewGraph links every point of store, at every level it participates in, to
// up to m other members of that level chosen uniformly at random. Levels are
// built concurrently; each level draws its seed from rng up front so the
// result only depends on rng's state.
func NewGraph(store *PointStore, m int, rng *rand.Rand, opts ...Option) (*Graph, error) {
	if store == nil || store.Len() == 0 {
		return nil, fmt.Errorf("%w: point store is empty", core.ErrInvalidConfiguration)
	}
	if m <= 0 {
		return nil, fmt.Errorf("%w: max neighbours must be positive, got %d", core.ErrInvalidConfiguration, m)
	}
	g := &Graph{
		store:        store,
		m:            m,
		layers:       make([]layer, store.TopLevel()+1),
		distance:     core.SquaredEuclidean,
		distanceName: "squared_euclidean",
	}
	for _, opt := range opts {
		opt(g)
	}

	seeds := make([]int64, len(g.layers))
	for level := range seeds {
		seeds[level] = rng.Int64()
	}

	var eg errgroup.Group
	for level := range g.layers {
		eg.Go(func() error {
			l, err := buildLayer(store, level, m, core.NewRand(seeds[level]))
			if err != nil {
				return err
			}
			g.layers[level] = l
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("Built layered graph with %d points, M=%d, top level %d, distance=%s",
		store.Len(), m, store.TopLevel(), g.distanceName)
	return g, nil
}

// NewGraphFromAdjacency builds a graph from explicit neighbour lists, where
// adjacency[level][id] lists the neighbours of id at level. Every member of a
// level needs a list of exactly min(m, members-1) distinct other members.
func NewGraphFromAdjacency(store *PointStore, m int, adjacency []map[int][]int, opts ...Option) (*Graph, error) {
	if store == nil || store.Len() == 0 {
		return nil, fmt.Errorf("%w: point store is empty", core.ErrInvalidConfiguration)
	}
	if m <= 0 {
		return nil, fmt.Errorf("%w: max neighbours must be positive, got %d", core.ErrInvalidConfiguration, m)
	}
	if len(adjacency) != store.TopLevel()+1 {
		return nil, fmt.Errorf("%w: adjacency has %d levels, points span %d",
			core.ErrInvalidConfiguration, len(adjacency), store.TopLevel()+1)
	}
	g := &Graph{
		store:        store,
		m:            m,
		layers:       make([]layer, len(adjacency)),
		distance:     core.SquaredEuclidean,
		distanceName: "squared_euclidean",
	}
	for _, opt := range opts {
		opt(g)
	}
	for level, lists := range adjacency {
		l, err := layerFromLists(store, level, m, lists)
		if err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", core.ErrInvalidConfiguration, level, err)
		}
		g.layers[level] = l
	}
	return g, nil
}

func layerFromLists(store *PointStore, level, m int, lists map[int][]int) (layer, error) {
	l, err := emptyLayer(store, level, m)
	if err != nil {
		return layer{}, err
	}
	for id := range lists {
		if !l.contains(id) {
			return layer{}, fmt.Errorf("point %d is not a member", id)
		}
	}
	for pos, id := range l.members {
		list, ok := lists[id]
		if !ok && l.degree > 0 {
			return layer{}, fmt.Errorf("point %d has no neighbour list", id)
		}
		if len(list) != l.degree {
			return layer{}, fmt.Errorf("point %d has %d neighbours, want %d", id, len(list), l.degree)
		}
		seen := make(map[int]bool, len(list))
		for _, nb := range list {
			switch {
			case nb == id:
				return layer{}, fmt.Errorf("point %d lists itself", id)
			case !l.contains(nb):
				return layer{}, fmt.Errorf("point %d lists non-member %d", id, nb)
			case seen[nb]:
				return layer{}, fmt.Errorf("point %d lists %d twice", id, nb)
			}
			seen[nb] = true
		}
		copy(l.neighbours[pos*l.degree:], list)
	}
	return l, nil
}

// emptyLayer sets up membership and storage for level with no edges filled in.
func emptyLayer(store *PointStore, level, m int) (layer, error) {
	members := store.Members(level)
	if len(members) == 0 {
		return layer{}, fmt.Errorf("level %d has no members", level)
	}
	l := layer{
		members: members,
		slot:    make([]int, store.Len()),
		degree:  min(m, len(members)-1),
	}
	for id := range l.slot {
		l.slot[id] = -1
	}
	for pos, id := range members {
		l.slot[id] = pos
	}
	l.neighbours = make([]int, len(members)*l.degree)
	return l, nil
}

// buildLayer selects the neighbour lists of one level.
func buildLayer(store *PointStore, level, m int, rng *rand.Rand) (layer, error) {
	l, err := emptyLayer(store, level, m)
	if err != nil || l.degree == 0 {
		return l, err
	}
	members := l.members

	others := len(members) - 1
	picks := make([]int, l.degree)
	for pos := range members {
		dst := l.neighbours[pos*l.degree : (pos+1)*l.degree]
		if others <= m {
			// Everyone else, in id order.
			i := 0
			for p, id := range members {
				if p != pos {
					dst[i] = id
					i++
				}
			}
			continue
		}
		// Sample positions among the others and skip over pos itself.
		sampleuv.WithoutReplacement(picks, others, rng)
		for i, p := range picks {
			if p >= pos {
				p++
			}
			dst[i] = members[p]
		}
	}
	log.Debug().Msgf("Level %d: %d members, %d neighbours each", level, len(members), l.degree)
	return l, nil
}

// Len returns the number of points in the graph.
func (g *Graph) Len() int { return g.store.Len() }

// Dimension returns the dimensionality of the indexed points.
func (g *Graph) Dimension() int { return g.store.Dimension() }

// TopLevel returns the highest populated level.
func (g *Graph) TopLevel() int { return len(g.layers) - 1 }

// MaxNeighbours returns the configured neighbour bound M.
func (g *Graph) MaxNeighbours() int { return g.m }

// Distance returns the ranking metric.
func (g *Graph) Distance() core.DistanceFunc { return g.distance }

// Store returns the point store the graph was built from.
func (g *Graph) Store() *PointStore { return g.store }

// Members returns a copy of the ids present at level, ascending.
func (g *Graph) Members(level int) []int {
	if level < 0 || level >= len(g.layers) {
		return nil
	}
	return append([]int(nil), g.layers[level].members...)
}

// Neighbours returns a copy of the neighbour list of id at level. The second
// result is false if id is not present at that level.
func (g *Graph) Neighbours(id, level int) ([]int, bool) {
	if level < 0 || level >= len(g.layers) || !g.layers[level].contains(id) {
		return nil, false
	}
	return append([]int(nil), g.layers[level].list(id)...), true
}

// Stats returns counts describing the graph.
func (g *Graph) Stats() core.IndexStats {
	edges := 0
	for _, l := range g.layers {
		edges += len(l.neighbours)
	}
	return core.IndexStats{
		Count:         g.store.Len(),
		Dimension:     g.store.Dimension(),
		TopLevel:      g.TopLevel(),
		MaxNeighbours: g.m,
		Edges:         edges,
		Distance:      g.distanceName,
	}
}
