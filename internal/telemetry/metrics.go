// Package telemetry holds the Prometheus metrics exported on /metrics.
//
// All metrics are registered against the default registry via promauto.
// HTTP metrics are labelled by the ServeMux route pattern (for example
// "GET /tickets/{id}"), never the raw URL, so ticket ids do not create
// unbounded label cardinality.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics.
//
// Example PromQL queries:
//   - Request rate:        rate(http_requests_total[5m])
//   - 429s per route:      sum by (path) (rate(http_requests_total{status="429"}[5m]))
//   - p99 latency per route: histogram_quantile(0.99, sum by (path, le) (rate(http_request_duration_seconds_bucket[5m])))
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// Ticket workflow metrics, incremented by the services after a successful commit.
var (
	TicketsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpdesk_tickets_created_total",
			Help: "Total number of tickets opened.",
		},
	)

	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helpdesk_messages_total",
			Help: "Total number of messages appended to tickets, by author type.",
		},
		[]string{"author_type"},
	)

	// StatusTransitionsTotal counts admin updates by resulting status.
	// from == to is recorded too (priority-only updates, re-closing).
	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helpdesk_ticket_status_transitions_total",
			Help: "Total number of admin ticket updates, by previous and new status.",
		},
		[]string{"from", "to"},
	)
)

// Event stream metrics.
var EventsPublishFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "helpdesk_events_publish_failures_total",
		Help: "Total number of ticket events that could not be written to Kafka, by event type.",
	},
	[]string{"event"},
)
