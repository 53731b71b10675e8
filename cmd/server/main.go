// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/vortax/docs" // swagger spec for /swagger/*
	"github.com/tomtom215/vortax/internal/api"
	"github.com/tomtom215/vortax/internal/config"
	"github.com/tomtom215/vortax/internal/database"
	"github.com/tomtom215/vortax/internal/logging"
	"github.com/tomtom215/vortax/internal/recommend"
	"github.com/tomtom215/vortax/internal/supervisor"
	"github.com/tomtom215/vortax/internal/supervisor/services"
	"github.com/tomtom215/vortax/internal/tmdb"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Vortax exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("db_path", cfg.Database.Path).
		Bool("tmdb_enabled", cfg.TMDB.Enabled).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Vortax")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedCatalog {
		seeded, err := db.SeedCatalog(context.Background())
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if seeded {
			logging.Info().Msg("Seeded empty catalog with starter titles")
		}
	}

	// A typed nil must not reach the resolver, so discovery stays a bare
	// interface until a client exists.
	var discovery recommend.DiscoverySource
	var breaker *tmdb.CircuitBreakerClient
	if cfg.TMDB.Enabled {
		breaker = tmdb.NewCircuitBreakerClient(tmdb.NewClient(&cfg.TMDB))
		discovery = breaker
		logging.Info().Str("base_url", cfg.TMDB.BaseURL).Msg("TMDB discovery enabled")
	} else {
		logging.Info().Msg("TMDB discovery disabled, recommending from the local catalog only")
	}

	recCfg, err := recommend.ConfigFrom(cfg)
	if err != nil {
		return fmt.Errorf("resolver configuration: %w", err)
	}
	resolver, err := recommend.NewResolver(recCfg, db, discovery)
	if err != nil {
		return fmt.Errorf("create resolver: %w", err)
	}
	personal := recommend.NewPersonalBuilder(db, recCfg.Personal)

	handler := api.NewHandler(db, resolver, personal, cfg)
	if breaker != nil {
		handler.SetBreakerState(breaker.State)
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*). Set explicit origins in production.")
	}

	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(cfg.Security))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Vortax stopped")
	return nil
}
