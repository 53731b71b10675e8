// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package config loads and validates Vortax configuration.

Sources are layered with Koanf v2, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml, /etc/vortax/config.yaml
 3. Environment variables

Environment variables use flat legacy-style names that envTransformFunc maps
onto nested koanf paths, for example:

	TMDB_API_KEY                   -> tmdb.api_key
	TMDB_TIMEOUT                   -> tmdb.timeout
	DUCKDB_PATH                    -> database.path
	RESOLVER_DEFAULT_CONTENT_TYPE  -> resolver.default_content_type
	CORS_ORIGINS                   -> security.cors_origins (comma separated)

A YAML file uses the nested names directly:

	server:
	  port: 3857
	  environment: development
	tmdb:
	  api_key: "..."
	  timeout: 5s
	resolver:
	  default_content_type: movie
	  max_results: 8

Validation errors name the environment variable that needs fixing.
*/
package config
