// Package metrics exposes the Prometheus collectors for the analyzer pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatementsProcessed counts uploaded statements by outcome
	// ("ok", "parse_error", "empty").
	StatementsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upi_statements_processed_total",
		Help: "Number of uploaded statements processed, by outcome.",
	}, []string{"outcome"})

	// TransactionsParsed counts transactions extracted from statements.
	TransactionsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "upi_transactions_parsed_total",
		Help: "Number of transactions successfully parsed.",
	})

	// BlocksDropped counts text blocks that failed field extraction.
	BlocksDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upi_blocks_dropped_total",
		Help: "Number of transaction blocks dropped during parsing, by reason.",
	}, []string{"reason"})

	// InsightFailures counts failed advice-service calls.
	InsightFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "upi_insight_failures_total",
		Help: "Number of failed advice service calls.",
	})

	// ReportsEvicted counts reports purged from the session store.
	ReportsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "upi_reports_evicted_total",
		Help: "Number of expired reports evicted from the session store.",
	})
)
