// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package metrics defines the Prometheus collectors exported at /metrics.

All collectors are registered on the default registry via promauto, so they
exist as soon as the package is imported. Callers should prefer the Record*
helpers over touching the vectors directly.

Resolver:
  - resolver_requests_total{content_type, outcome}
  - resolver_source_failures_total{source}: lookups absorbed into an empty list
  - resolver_source_results{source}: items returned per lookup
  - resolver_duration_seconds

TMDB and circuit breaker:
  - tmdb_requests_total{endpoint, status}
  - tmdb_request_duration_seconds{endpoint}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

HTTP and storage:
  - api_requests_total, api_request_duration_seconds, api_active_requests
  - duckdb_query_duration_seconds, duckdb_query_errors_total
  - watch_events_total{list, action}
*/
package metrics
