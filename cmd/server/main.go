// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/buildmyrig/internal/api"
	"github.com/tomtom215/buildmyrig/internal/config"
	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/recommend"
	"github.com/tomtom215/buildmyrig/internal/supervisor"
	"github.com/tomtom215/buildmyrig/internal/supervisor/services"
)

const catalogStatsInterval = 30 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

// run wires every component, serves until SIGINT/SIGTERM and tears down in
// reverse order.
func run(cfg *config.Config) error {
	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Str("catalog_backend", cfg.Catalog.Backend).
		Msg("Starting BuildMyRig with supervisor tree")
	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := initCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize catalog: %w", err)
	}
	defer func() {
		if err := cat.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog store")
		}
	}()

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), cat.accessor, logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	handler := api.NewHandler(cat.cached, engine, cfg)
	if cat.importer != nil {
		handler.SetImportStatus(cat.importer)
	}
	if cat.breaker != nil {
		handler.SetBreaker(cat.breaker)
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	server := newHTTPServer(cfg, router.SetupChi())

	// Create structured logger for supervisor using our slog adapter
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	tree.AddDataService(services.NewCatalogStatsService(cat.store, catalogStatsInterval))
	if cat.importer != nil && cfg.Catalog.ImportInterval > 0 {
		tree.AddDataService(services.NewImportService(cat.importer, cfg.Catalog.ImportInterval, false))
		logging.Info().Dur("interval", cfg.Catalog.ImportInterval).Msg("Scheduled catalog import added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}

// newHTTPServer builds the listener for the API router.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
