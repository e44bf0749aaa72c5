// Package observability exposes Prometheus metrics for the analysis pipeline
// and the history store.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resume_analyzer",
		Name:      "analyses_total",
		Help:      "Completed analyses by mode and predicted category.",
	}, []string{"mode", "category"})

	analysisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resume_analyzer",
		Name:      "analysis_errors_total",
		Help:      "Failed analyses by error kind.",
	}, []string{"kind"})

	analysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "resume_analyzer",
		Name:      "analysis_duration_seconds",
		Help:      "Wall-clock duration of one analysis run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})

	historyAppends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resume_analyzer",
		Name:      "history_appends_total",
		Help:      "History append attempts by outcome.",
	}, []string{"outcome"})

	historySize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "resume_analyzer",
		Name:      "history_records",
		Help:      "Total persisted analysis records as of the last query.",
	})
)

// RecordAnalysis counts one completed analysis and observes its duration.
func RecordAnalysis(mode, category string, elapsed time.Duration) {
	analysesTotal.WithLabelValues(mode, category).Inc()
	analysisDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// RecordAnalysisError counts a failed analysis.
func RecordAnalysisError(kind string) {
	analysisErrors.WithLabelValues(kind).Inc()
}

// RecordHistoryAppend counts an append attempt.
func RecordHistoryAppend(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	historyAppends.WithLabelValues(outcome).Inc()
}

// UpdateHistorySize records the store's total count seen by the last query.
func UpdateHistorySize(n int) {
	historySize.Set(float64(n))
}
