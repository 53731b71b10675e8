// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

// Package logging provides the process-wide zerolog logger for Vortax.
//
// JSON output is the default; console output is meant for local development.
// Every component derives its own child logger so entries can be filtered
// by the "component" field:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logger := logging.WithComponent("tmdb")
//	logger.Warn().Err(err).Msg("discover request failed")
//
// HTTP handlers log through Ctx, which attaches the request_id injected by
// the request ID middleware:
//
//	logging.Ctx(r.Context()).Error().Err(err).Msg("create movie")
//
// The supervisor tree requires a *slog.Logger; NewSlogLogger bridges slog
// records into the same zerolog output.
//
// Environment variables (read by internal/config, not by this package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
package logging
