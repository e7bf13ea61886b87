// Package metrics exposes Prometheus collectors for graph construction and search.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildDuration measures how long building a layered graph takes.
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hwalk_graph_build_seconds",
			Help:    "Duration of layered graph construction in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	// Searches counts completed queries by outcome ("ok" or "error").
	Searches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwalk_searches_total",
			Help: "Total number of multi-level searches",
		},
		[]string{"outcome"},
	)

	// WalkSteps records how many moves each converged level walk made.
	WalkSteps = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hwalk_walk_steps",
			Help:    "Moves made by a greedy walk before converging",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55},
		},
		[]string{"level"},
	)
)
