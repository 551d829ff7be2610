// Package metrics provides Prometheus metrics for inspection loads.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

var (
	// LoadsTotal tracks loads by outcome
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inspections",
			Subsystem: "load",
			Name:      "runs_total",
			Help:      "Total number of loads by outcome",
		},
		[]string{"outcome"},
	)

	// LoadDuration tracks end-to-end load duration in seconds
	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "inspections",
			Subsystem: "load",
			Name:      "duration_seconds",
			Help:      "Duration of loads in seconds",
			Buckets:   []float64{0.5, 1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	// LoadInProgress is 1 while a load holds the run slot
	LoadInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "inspections",
			Subsystem: "load",
			Name:      "in_progress",
			Help:      "Whether a load is currently running",
		},
	)

	// StageDuration tracks per-stage duration in seconds
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "inspections",
			Subsystem: "stage",
			Name:      "duration_seconds",
			Help:      "Duration of pipeline stages in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"stage"},
	)

	// StageRows reports rows written by each stage of the last committed load
	StageRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "inspections",
			Subsystem: "stage",
			Name:      "rows",
			Help:      "Rows written by each stage in the last committed load",
		},
		[]string{"stage"},
	)
)

// ObserveStage records one completed stage.
func ObserveStage(stage string, d time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveLoad records a finished load.
func ObserveLoad(outcome string, d time.Duration) {
	LoadsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeRejected {
		LoadDuration.Observe(d.Seconds())
	}
}
