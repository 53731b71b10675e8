// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package services adapts Vortax components to the suture.Service interface.

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService:
  - Converts ListenAndServe/Shutdown into Serve
  - Drains connections for up to the configured shutdown timeout

CheckpointService:
  - Runs DuckDB CHECKPOINT on an interval
  - Logs failures and keeps ticking
  - Checkpoints once more on shutdown

Both implement fmt.Stringer so supervisor log lines name the service.
*/
package services
