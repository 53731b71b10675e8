// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

/*
Package supervisor provides process supervision for Vortax using suture v4.

# Overview

Long-running components are organized into two layers:

	RootSupervisor ("vortax")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A checkpoint loop that keeps failing backs off inside the data layer while
the HTTP listener keeps serving. Supervisor events (start, failure, restart,
backoff) are logged through the sutureslog adapter.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Configuration

TreeConfig zero values fall back to suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Shutdown

Canceling the Serve context stops every service. Services that ignore
cancellation past ShutdownTimeout show up in UnstoppedServiceReport.

DuckDB itself is not a supervised service. The database package owns the
connection and main closes it after the tree has stopped.
*/
package supervisor
