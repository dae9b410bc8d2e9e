// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	"time"

	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/models"
)

// instrumentedStore records latency and errors of every store operation.
type instrumentedStore struct {
	Store
	backend string
}

// Instrument wraps store so each operation is recorded under backend.
func Instrument(store Store, backend string) Store {
	return &instrumentedStore{Store: store, backend: backend}
}

// track starts timing op. The returned func records the outcome.
func (s *instrumentedStore) track(op string) func(error) {
	start := time.Now()
	return func(err error) {
		metrics.RecordCatalogQuery(s.backend, op, time.Since(start), err)
	}
}

func (s *instrumentedStore) Fetch(ctx context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	done := s.track("fetch")
	parts, err := s.Store.Fetch(ctx, category, filter)
	done(err)
	return parts, err
}

func (s *instrumentedStore) Snapshot(ctx context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error) {
	done := s.track("snapshot")
	out, err := s.Store.Snapshot(ctx, filters)
	done(err)
	return out, err
}

//nolint:gocritic // hugeParam: matches Store.List
func (s *instrumentedStore) List(ctx context.Context, q models.PartQuery) ([]models.Part, int, error) {
	done := s.track("list")
	parts, total, err := s.Store.List(ctx, q)
	done(err)
	return parts, total, err
}

func (s *instrumentedStore) All(ctx context.Context) ([]models.Part, error) {
	done := s.track("all")
	parts, err := s.Store.All(ctx)
	done(err)
	return parts, err
}

func (s *instrumentedStore) Count(ctx context.Context) (int, error) {
	done := s.track("count")
	n, err := s.Store.Count(ctx)
	done(err)
	return n, err
}

func (s *instrumentedStore) Stats(ctx context.Context) (*models.CatalogStats, error) {
	done := s.track("stats")
	stats, err := s.Store.Stats(ctx)
	done(err)
	if err == nil {
		counts := make(map[string]int, len(models.Categories))
		for _, cat := range models.Categories {
			counts[string(cat)] = stats.Categories[cat]
		}
		metrics.UpdateCatalogParts(counts)
	}
	return stats, err
}

func (s *instrumentedStore) Upsert(ctx context.Context, parts []models.Part) (int, error) {
	done := s.track("upsert")
	n, err := s.Store.Upsert(ctx, parts)
	done(err)
	return n, err
}
