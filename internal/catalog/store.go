// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/buildmyrig/internal/config"
	"github.com/tomtom215/buildmyrig/internal/database"
	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("catalog store is closed")

// Store is a parts catalog. Implementations are safe for concurrent use.
type Store interface {
	recommend.SnapshotAccessor

	// List returns one page of a category and the number of matching parts.
	List(ctx context.Context, q models.PartQuery) ([]models.Part, int, error)

	// All returns every part ordered by category then id.
	All(ctx context.Context) ([]models.Part, error)

	// Count returns the number of parts.
	Count(ctx context.Context) (int, error)

	// Stats summarizes the catalog.
	Stats(ctx context.Context) (*models.CatalogStats, error)

	// Upsert inserts or updates parts keyed by (category, name) and returns
	// the number of parts written.
	Upsert(ctx context.Context, parts []models.Part) (int, error)

	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error

	Close() error
}

var _ Store = (*database.DB)(nil)

// Open creates the store selected by cfg.Catalog.Backend, wrapped with
// query instrumentation.
func Open(cfg *config.Config) (Store, error) {
	backend := strings.ToLower(cfg.Catalog.Backend)

	var (
		store Store
		err   error
	)
	switch backend {
	case config.BackendDuckDB, "":
		backend = config.BackendDuckDB
		store, err = database.New(&cfg.Database)
	case config.BackendBadger:
		store, err = OpenBadger(cfg.Catalog.BadgerPath)
	case config.BackendMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s catalog: %w", backend, err)
	}

	return Instrument(store, backend), nil
}
