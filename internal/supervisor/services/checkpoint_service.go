// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package services

import (
	"context"
	"time"

	"github.com/tomtom215/vortax/internal/logging"
)

// Checkpointer is satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService folds the DuckDB write-ahead log into the database file
// on a fixed interval. Watchlist and history writes are small and frequent,
// so without it the WAL only shrinks on clean shutdown.
//
// A failed checkpoint is logged and retried on the next tick. The service
// runs one final checkpoint when its context is canceled.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	name     string
}

// NewCheckpointService creates the service. A non-positive interval means 5m.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		name:     "duckdb-checkpoint",
	}
}

// Serve implements suture.Service.
func (c *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	logger := logging.WithComponent(c.name)
	logger.Debug().Dur("interval", c.interval).Msg("Checkpoint loop started")

	for {
		select {
		case <-ticker.C:
			if err := c.db.Checkpoint(ctx); err != nil {
				logger.Warn().Err(err).Msg("Periodic checkpoint failed")
			}

		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := c.db.Checkpoint(finalCtx); err != nil {
				logger.Warn().Err(err).Msg("Final checkpoint failed")
			}
			cancel()
			return ctx.Err()
		}
	}
}

// String implements fmt.Stringer.
func (c *CheckpointService) String() string {
	return c.name
}
