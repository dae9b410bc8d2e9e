// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

// Package catalog provides the parts catalog behind the recommendation engine.
//
// Three backends implement Store:
//
//   - duckdb: the default. A single parts table (see internal/database).
//   - badger: an embedded key-value store. Parts are JSON values under
//     category-prefixed keys so a category read is one prefix scan.
//   - memory: a mutex-guarded map, used by tests and throwaway deployments.
//
// Every backend honors the same contract: exact brand matching with "any" or
// empty as wildcard, upserts keyed by (category, name) that keep existing
// ids, listing tie-breaks on ascending id, and snapshot reads that see all
// categories at one point in time.
//
// Decorators layer on top of any Store:
//
//   - Instrument records Prometheus query latency and errors per backend.
//   - BreakerAccessor wraps the engine's read path with a circuit breaker so
//     a failing backend is rejected fast instead of timing out per request.
//
// Seed data (30 sample parts) is embedded and loaded into an empty catalog
// by EnsureSeeded.
//
// Usage:
//
//	store, err := catalog.Open(cfg)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	reader := catalog.NewBreakerAccessor(store, &cfg.Breaker)
//	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), reader, logger)
package catalog
