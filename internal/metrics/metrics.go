// Package metrics provides Prometheus metrics for the monitoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "statusping"
)

// Probe metrics
var (
	// ChecksTotal counts executed probes by outcome status and error kind.
	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checks",
			Name:      "total",
			Help:      "Total number of executed checks",
		},
		[]string{"status", "error_kind"},
	)

	// CheckDuration tracks probe latency.
	CheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "checks",
			Name:      "duration_seconds",
			Help:      "Check latency in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// ChecksInFlight tracks probes currently holding a concurrency slot.
	ChecksInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "checks",
			Name:      "in_flight",
			Help:      "Number of checks currently executing",
		},
	)

	// CheckStoreFailuresTotal counts probe outcomes that could not be persisted.
	CheckStoreFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checks",
			Name:      "store_failures_total",
			Help:      "Total check results dropped after store write retries were exhausted",
		},
	)
)

// Scheduler metrics
var (
	// MonitorsScheduled tracks monitors with an active timer.
	MonitorsScheduled = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "monitors_scheduled",
			Help:      "Number of monitors currently scheduled",
		},
	)

	// ReconcilesTotal counts scheduler reconciliation passes.
	ReconcilesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "reconciles_total",
			Help:      "Total scheduler reconciliation passes",
		},
	)
)

// Incident metrics
var (
	// IncidentsOpenedTotal counts down transitions that opened an incident.
	IncidentsOpenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "incidents",
			Name:      "opened_total",
			Help:      "Total incidents opened",
		},
	)

	// IncidentsResolvedTotal counts up transitions that resolved an incident.
	IncidentsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "incidents",
			Name:      "resolved_total",
			Help:      "Total incidents resolved",
		},
	)
)

// Alert metrics
var (
	// AlertsDeliveredTotal counts alert deliveries by channel and result.
	AlertsDeliveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "delivered_total",
			Help:      "Total alert delivery attempts that were recorded",
		},
		[]string{"channel", "result"},
	)

	// AlertsDroppedTotal counts transition events dropped because the alert
	// queue was full.
	AlertsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "dropped_total",
			Help:      "Total transition events dropped due to a full alert queue",
		},
	)
)

// Pruner metrics
var (
	// PrunedResultsTotal counts check results removed by the retention pruner.
	PrunedResultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pruner",
			Name:      "results_total",
			Help:      "Total check results removed by retention pruning",
		},
	)
)
