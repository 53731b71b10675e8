// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Resolver Metrics
	ResolverRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_requests_total",
			Help: "Free-text recommendation requests by content type and outcome",
		},
		[]string{"content_type", "outcome"}, // outcome: "ok", "fallback", "empty_query", "ambiguous"
	)

	ResolverSourceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_source_failures_total",
			Help: "Collaborator lookups that failed and were replaced by an empty list",
		},
		[]string{"source"}, // "tmdb", "local"
	)

	ResolverSourceResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resolver_source_results",
			Help:    "Number of items returned per collaborator lookup",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
		},
		[]string{"source"},
	)

	ResolverDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resolver_duration_seconds",
			Help:    "End-to-end resolver latency including both lookups",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// External API Metrics
	TMDBRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Requests sent to the TMDB API",
		},
		[]string{"endpoint", "status"}, // status: HTTP code or "error"
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDB API request latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	WatchEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watch_events_total",
			Help: "Watchlist and history mutations",
		},
		[]string{"list", "action"}, // list: "watchlist", "history"
	)
)

// RecordDBQuery records a DuckDB query duration and, on failure, an error.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordResolverRequest counts one resolver invocation.
func RecordResolverRequest(contentType, outcome string, duration time.Duration) {
	ResolverRequests.WithLabelValues(contentType, outcome).Inc()
	if duration > 0 {
		ResolverDuration.Observe(duration.Seconds())
	}
}

// RecordSourceLookup records the size of one collaborator result, or a failure.
func RecordSourceLookup(source string, results int, err error) {
	if err != nil {
		ResolverSourceFailures.WithLabelValues(source).Inc()
		return
	}
	ResolverSourceResults.WithLabelValues(source).Observe(float64(results))
}

// RecordTMDBRequest records one outbound TMDB call.
func RecordTMDBRequest(endpoint, status string, duration time.Duration) {
	TMDBRequests.WithLabelValues(endpoint, status).Inc()
	TMDBRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordWatchEvent counts a watchlist or history mutation.
func RecordWatchEvent(list, action string) {
	WatchEvents.WithLabelValues(list, action).Inc()
}
