// Package metrics defines the Prometheus metrics for the dispatch move
// logger. All metrics register with the default registry at package init;
// cmd/main serves them over promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movelog"

// EmailsProcessedTotal counts polled emails by outcome.
// Label:
//   - result: "handled", "skipped_sender", "skipped_stale", "error"
var EmailsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_processed_total",
		Help:      "Total number of emails polled, labelled by outcome.",
	},
	[]string{"result"},
)

// MovesExtractedTotal counts moves emitted by the extraction engine.
var MovesExtractedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moves_extracted_total",
		Help:      "Total number of moves extracted from email bodies.",
	},
)

// DedupTotal counts dedupe decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new record, persisted)
var DedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dedup_total",
		Help:      "Total number of dedupe checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// RouteLookupsTotal counts route lookups by outcome.
// Label:
//   - result: "ok", "empty" (lookup failed, degraded), "skipped" (ineligible pair)
var RouteLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_lookups_total",
		Help:      "Total number of route lookups, labelled by outcome.",
	},
	[]string{"result"},
)
