package hnsw_test

import (
	"errors"
	"testing"

	"github.com/patrikhermansson/hwalk/core"
	"github.com/patrikhermansson/hwalk/hnsw"
)

func points(coords ...[]float64) []hnsw.Point {
	out := make([]hnsw.Point, len(coords))
	for i, c := range coords {
		out[i] = hnsw.Point{ID: i * 10, Coords: c}
	}
	return out
}

func TestNearest(t *testing.T) {
	cands := points(
		[]float64{5, 0}, // id 0, dist 25
		[]float64{1, 0}, // id 10, dist 1
		[]float64{0, 2}, // id 20, dist 4
		[]float64{0, 1}, // id 30, dist 1
		[]float64{3, 0}, // id 40, dist 9
	)
	target := []float64{0, 0}

	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"k=1", 1, []int{10}},
		{"k=3 keeps tie order", 3, []int{10, 30, 20}},
		{"k larger than candidates", 10, []int{10, 30, 20, 40, 0}},
		{"k=0", 0, []int{}},
		{"negative k", -1, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hnsw.Nearest(target, cands, tt.k)
			if err != nil {
				t.Fatalf("Nearest failed: %v", err)
			}
			if !equalInts(got, tt.want) {
				t.Errorf("Nearest(k=%d) = %v; want %v", tt.k, got, tt.want)
			}
		})
	}
}

func TestNearest_Deterministic(t *testing.T) {
	g := buildRandom(t, 200, 4, 1, 3)
	cands := g.Store().Points()
	target := []float64{0.3, -0.2}

	first, err := hnsw.Nearest(target, cands, 20)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := hnsw.Nearest(target, cands, 20)
		if err != nil {
			t.Fatalf("Nearest failed: %v", err)
		}
		if !equalInts(first, again) {
			t.Fatalf("Nearest not deterministic: %v vs %v", first, again)
		}
	}
	prev := -1.0
	for _, id := range first {
		d := core.SquaredEuclidean(target, g.Store().Coords(id))
		if d < prev {
			t.Fatalf("results not sorted by distance: %v after %v", d, prev)
		}
		prev = d
	}
}

func TestNearest_DoesNotMutate(t *testing.T) {
	cands := points([]float64{3, 0}, []float64{1, 0}, []float64{2, 0})
	if _, err := hnsw.Nearest([]float64{0, 0}, cands, 3); err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	for i, want := range []int{0, 10, 20} {
		if cands[i].ID != want {
			t.Errorf("candidate %d reordered: got id %d, want %d", i, cands[i].ID, want)
		}
	}
}

func TestNearest_Empty(t *testing.T) {
	_, err := hnsw.Nearest([]float64{0, 0}, nil, 1)
	if !errors.Is(err, core.ErrEmptyCandidateSet) {
		t.Errorf("expected ErrEmptyCandidateSet, got %v", err)
	}
	got, err := hnsw.Nearest([]float64{0, 0}, nil, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("expected empty result for k=0, got %v, %v", got, err)
	}
}

func TestNearestBy_Manhattan(t *testing.T) {
	// Under L1 (2,2) is farther than (3,0); under L2 squared it is nearer.
	cands := points([]float64{2, 2}, []float64{3, 0})
	got, err := hnsw.NearestBy(core.Manhattan, []float64{0, 0}, cands, 1)
	if err != nil {
		t.Fatalf("NearestBy failed: %v", err)
	}
	if got[0] != 10 {
		t.Errorf("expected id 10 under Manhattan, got %d", got[0])
	}
	got, _ = hnsw.Nearest([]float64{0, 0}, cands, 1)
	if got[0] != 0 {
		t.Errorf("expected id 0 under squared Euclidean, got %d", got[0])
	}
}
