package example

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/patrikhermansson/hwalk/hnsw"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Report summarises how often greedy descent finds the exact nearest point.
type Report struct {
	Queries   int           // number of targets evaluated
	Hits      int           // queries whose result equals the brute-force nearest point
	Recall    float64       // Hits / Queries
	MeanSteps float64       // average moves per query across all levels
	Elapsed   time.Duration // wall time of the batched greedy searches, excluding brute force
}

// RandomTargets draws n standard-normal targets of the given dimension.
func RandomTargets(n, dim int, rng *rand.Rand) [][]float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	targets := make([][]float64, n)
	for i := range targets {
		t := make([]float64, dim)
		for d := range t {
			t[d] = normal.Rand()
		}
		targets[i] = t
	}
	return targets
}

// Evaluate searches every target through SearchBatch on workers goroutines and
// compares each result against an exhaustive scan. Progress is drawn on
// progress unless it is nil.
func Evaluate(ctx context.Context, g *hnsw.Graph, targets [][]float64, workers int, progress io.Writer) (Report, error) {
	start := time.Now()
	results, err := g.SearchBatch(ctx, targets, workers)
	if err != nil {
		return Report{}, err
	}
	report := Report{Queries: len(targets), Elapsed: time.Since(start)}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(targets),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("evaluating"),
			progressbar.OptionOnCompletion(func() { fmt.Fprint(progress, "\n") }),
		)
	}

	everyone := g.Store().Points()
	totalSteps := 0
	for i, res := range results {
		truth, err := hnsw.NearestBy(g.Distance(), targets[i], everyone, 1)
		if err != nil {
			return Report{}, fmt.Errorf("query %d: %w", i, err)
		}
		if truth[0] == res.PointID {
			report.Hits++
		}
		totalSteps += res.Steps
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if report.Queries > 0 {
		report.Recall = float64(report.Hits) / float64(report.Queries)
		report.MeanSteps = float64(totalSteps) / float64(report.Queries)
	}
	log.Info().Msgf("Evaluated %d queries: recall@1 %.3f, %.2f moves per query", report.Queries, report.Recall, report.MeanSteps)
	return report, nil
}
