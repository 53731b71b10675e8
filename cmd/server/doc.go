// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package main is the entry point for the Vortax server.

Vortax serves a small movie and TV catalog, per-user watchlists and watch
history, and free-text recommendations ("something scary but not gory")
resolved against the local catalog and TMDB discovery.

# Application Architecture

	RootSupervisor ("vortax")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService (periodic DuckDB CHECKPOINT)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (Chi router)

Initialization order:

 1. Configuration: Koanf v2 (defaults, YAML file, environment)
 2. Logging: zerolog, JSON or console output
 3. Database: DuckDB catalog, optionally seeded with starter titles
 4. TMDB: HTTP client behind a gobreaker circuit breaker (optional)
 5. Resolver: query analysis, genre mapping, dual-source fetch, merge
 6. Supervisor Tree: suture v4 with sutureslog events
 7. HTTP Server: Chi router with CORS, rate limiting, metrics

# Configuration

	# Server
	HTTP_PORT=3857
	ENVIRONMENT=production        # development exposes error details
	LOG_LEVEL=info
	LOG_FORMAT=json

	# Database
	DUCKDB_PATH=/data/vortax.duckdb
	DUCKDB_CHECKPOINT_INTERVAL=5m
	SEED_CATALOG=true

	# TMDB discovery
	TMDB_ENABLED=true
	TMDB_API_KEY=<key>

	# Resolver
	RESOLVER_DEFAULT_CONTENT_TYPE=movie
	RESOLVER_MAX_RESULTS=8

# Signal Handling

SIGINT or SIGTERM cancels the supervisor context. The HTTP server drains
for up to SHUTDOWN_TIMEOUT, the checkpoint loop flushes once more, and the
database is closed last.
*/
package main
