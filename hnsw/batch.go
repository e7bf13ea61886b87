package hnsw

import (
	"context"
	"fmt"
	"runtime"

	"github.com/patrikhermansson/hwalk/core"
	"golang.org/x/sync/errgroup"
)

// SearchBatch runs one Search per target concurrently on at most workers
// goroutines (runtime.NumCPU() when workers <= 0). Results are returned in
// target order. The first failure cancels the remaining searches.
func (g *Graph) SearchBatch(ctx context.Context, targets [][]float64, workers int) ([]core.Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]core.Result, len(targets))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, target := range targets {
		eg.Go(func() error {
			res, err := g.Search(ctx, target)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
