package sorting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// sortCounter tracks completed sort operations by strategy name and outcome.
//
// Metric name: amp_ordering_sorts_total
// Labels:
//   - strategy: The name the Sorter was configured with
//   - outcome: "ok" or "error"
//
// Example PromQL query:
//
//	sum by (strategy) (rate(amp_ordering_sorts_total{outcome="error"}[5m]))
var sortCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "amp",
		Subsystem: "ordering",
		Name:      "sorts_total",
		Help:      "Total number of sort operations",
	},
	[]string{"strategy", "outcome"},
)

// sortDuration tracks how long sort operations take, by strategy name.
//
// Metric name: amp_ordering_sort_duration_seconds
var sortDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "amp",
		Subsystem: "ordering",
		Name:      "sort_duration_seconds",
		Help:      "Duration of sort operations in seconds",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"strategy"},
)

// sortElements tracks the total number of elements passed through sorts,
// by strategy name.
//
// Metric name: amp_ordering_sorted_elements_total
var sortElements = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "amp",
		Subsystem: "ordering",
		Name:      "sorted_elements_total",
		Help:      "Total number of elements processed by sort operations",
	},
	[]string{"strategy"},
)
