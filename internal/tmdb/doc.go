// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package tmdb is a minimal client for The Movie Database discover API.
//
// Client performs GET {base}/discover/{movie|tv} with popularity ordering,
// paced by a golang.org/x/time/rate token bucket and bounded by the HTTP
// client timeout. CircuitBreakerClient wraps any Discoverer with a
// sony/gobreaker breaker; while the circuit is open calls fail immediately
// with gobreaker.ErrOpenState.
//
// Callers that must never fail on TMDB errors (the recommendation resolver)
// are expected to treat every error as an empty result.
package tmdb
