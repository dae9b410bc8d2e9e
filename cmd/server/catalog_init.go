// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/config"
	"github.com/tomtom215/buildmyrig/internal/ingest"
	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// CatalogComponents holds the catalog store and the pieces built around it.
//
// store is the instrumented backend. cached layers the browse/stats read
// cache on top of it and is the handle used for API reads and imports, so
// writes clear the cache. With CATALOG_CACHE_TTL=0 both are the same store.
type CatalogComponents struct {
	store    catalog.Store
	cached   catalog.Store
	importer *ingest.Importer
	breaker  *catalog.BreakerAccessor
	accessor recommend.SnapshotAccessor
}

// Close closes the cache and the underlying store.
func (c *CatalogComponents) Close() error {
	return c.cached.Close()
}

// initCatalog opens the configured catalog backend, runs the startup import
// when CATALOG_IMPORT_DIR is set and seeds sample parts into an empty store.
//
// A failed startup import is logged and the server continues with whatever
// the store already holds. Failure to open or seed the store is fatal.
func initCatalog(ctx context.Context, cfg *config.Config) (*CatalogComponents, error) {
	store, err := catalog.Open(cfg)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("backend", cfg.Catalog.Backend).Msg("Catalog store opened")

	cached := catalog.Cached(store, cfg.Catalog.CacheTTL)
	components := &CatalogComponents{store: store, cached: cached, accessor: store}

	if cfg.Catalog.ImportDir != "" {
		loader := ingest.NewLoader(cfg.Catalog.ImportDir, cfg.Catalog.BenchmarkDir)
		components.importer = ingest.NewImporter(loader, cached)

		importCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
		_, err := components.importer.Import(importCtx)
		cancel()
		switch {
		case errors.Is(err, ingest.ErrNoPriceData):
			logging.Warn().Str("dir", cfg.Catalog.ImportDir).Msg("No price lists found, skipping startup import")
		case err != nil:
			logging.Warn().Err(err).Str("dir", cfg.Catalog.ImportDir).Msg("Startup import failed, continuing with existing catalog")
		}
	}

	if cfg.Catalog.SeedSampleData {
		seedCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
		_, err := catalog.EnsureSeeded(seedCtx, cached)
		cancel()
		if err != nil {
			if closeErr := cached.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing catalog store")
			}
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	if cfg.Breaker.Enabled {
		components.breaker = catalog.NewBreakerAccessor(store, &cfg.Breaker)
		components.accessor = components.breaker
		logging.Info().
			Uint32("max_requests", cfg.Breaker.MaxRequests).
			Dur("timeout", cfg.Breaker.Timeout).
			Float64("failure_ratio", cfg.Breaker.FailureRatio).
			Msg("Catalog circuit breaker enabled")
	}

	return components, nil
}
