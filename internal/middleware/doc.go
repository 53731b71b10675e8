// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package middleware provides chi-compatible HTTP middleware shared by the API.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge keyed by route pattern
  - AccessLog: one structured zerolog line per request, warn on slow requests

Typical stack, as wired in internal/api:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)

Access handlers read the request ID with GetRequestID or log through
logging.Ctx(r.Context()), which attaches it automatically.
*/
package middleware
