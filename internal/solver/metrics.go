package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts Solve calls by outcome.
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boggle_solve_total",
		Help: "Total board solves by result",
	}, []string{"result"})

	// solveDuration tracks time spent searching one board.
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boggle_solve_duration_seconds",
		Help:    "Board search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs to ~400ms
	})

	// solveWords tracks how many distinct words a solve returns.
	solveWords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boggle_solve_words",
		Help:    "Distinct words found per solve",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	// branchAnomalies counts starting cells whose search was abandoned.
	branchAnomalies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boggle_branch_anomalies_total",
		Help: "Starting cells dropped after an out-of-bounds access or panic",
	})
)
