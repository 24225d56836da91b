// Package metrics holds the engine's prometheus collectors. Collectors are
// registered on the default registry at init and exposed by the HTTP
// adapter at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_solve_total",
		Help: "Solve requests by outcome (solved, unsolvable).",
	}, []string{"outcome"})

	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_solve_duration_seconds",
		Help:    "Wall time of solve operations.",
		Buckets: prometheus.DefBuckets,
	})

	GenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_generate_total",
		Help: "Generated puzzles by difficulty.",
	}, []string{"difficulty"})

	GenerateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_generate_duration_seconds",
		Help:    "Wall time of puzzle generation.",
		Buckets: prometheus.DefBuckets,
	})

	SearchNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sudoku_search_nodes",
		Help:    "Backtracking nodes visited per operation.",
		Buckets: prometheus.ExponentialBuckets(64, 4, 10),
	}, []string{"op"})

	HintTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_hint_total",
		Help: "Hints served by technique; 'none' when no technique applied.",
	}, []string{"technique"})
)
