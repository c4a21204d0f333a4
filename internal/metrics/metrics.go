// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// HTTPRequests counts handled requests by method, route and status
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealspace",
		Name:      "http_requests_total",
		Help:      "HTTP requests processed, partitioned by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by method and route
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dealspace",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LeadFlowOutcomes counts lead flow runs by outcome (matched, unmatched, failed)
	LeadFlowOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealspace",
		Name:      "lead_flow_outcomes_total",
		Help:      "Lead flow processing results.",
	}, []string{"outcome"})

	// PeopleImported counts imported person rows by result (imported, failed)
	PeopleImported = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealspace",
		Name:      "people_import_rows_total",
		Help:      "Rows handled by person imports.",
	}, []string{"result"})
)

// Lead flow outcomes
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
	OutcomeFailed    = "failed"
)

// Registry is the registry served on /metrics
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		LeadFlowOutcomes,
		PeopleImported,
	)
}
