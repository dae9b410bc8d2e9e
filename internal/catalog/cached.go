// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	"maps"
	"time"

	"github.com/tomtom215/buildmyrig/internal/cache"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/models"
)

const cacheType = "catalog"

type listResult struct {
	parts []models.Part
	total int
}

// cachedStore serves browse and statistics reads from a TTL cache. Fetch and
// Snapshot go straight to the store so recommendations always see current
// data. Any Upsert clears the cache.
type cachedStore struct {
	Store
	cache *cache.Cache
}

// Cached wraps store with a read cache whose entries live for ttl. A
// non-positive ttl returns store unchanged.
func Cached(store Store, ttl time.Duration) Store {
	if ttl <= 0 {
		return store
	}
	return &cachedStore{Store: store, cache: cache.New(ttl)}
}

// lookup returns the cached value for key, recording the outcome under op.
func (s *cachedStore) lookup(op, key string) (interface{}, bool) {
	v, ok := s.cache.Get(key)
	metrics.RecordCacheLookup(cacheType, op, ok)
	return v, ok
}

//nolint:gocritic // hugeParam: matches Store.List
func (s *cachedStore) List(ctx context.Context, q models.PartQuery) ([]models.Part, int, error) {
	key := cache.GenerateKey("list", q)
	if v, ok := s.lookup("list", key); ok {
		res := v.(listResult)
		return cloneParts(res.parts), res.total, nil
	}

	parts, total, err := s.Store.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	s.cache.Set(key, listResult{parts: cloneParts(parts), total: total})
	return parts, total, nil
}

func (s *cachedStore) All(ctx context.Context) ([]models.Part, error) {
	if v, ok := s.lookup("all", "all"); ok {
		return cloneParts(v.([]models.Part)), nil
	}

	parts, err := s.Store.All(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set("all", cloneParts(parts))
	return parts, nil
}

func (s *cachedStore) Count(ctx context.Context) (int, error) {
	if v, ok := s.lookup("count", "count"); ok {
		return v.(int), nil
	}

	n, err := s.Store.Count(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.Set("count", n)
	return n, nil
}

func (s *cachedStore) Stats(ctx context.Context) (*models.CatalogStats, error) {
	if v, ok := s.lookup("stats", "stats"); ok {
		return copyStats(v.(*models.CatalogStats)), nil
	}

	stats, err := s.Store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set("stats", copyStats(stats))
	return stats, nil
}

// Upsert writes through and clears the cache, even on error, since a
// failed batch may have been partly applied.
func (s *cachedStore) Upsert(ctx context.Context, parts []models.Part) (int, error) {
	n, err := s.Store.Upsert(ctx, parts)
	s.cache.Clear()
	return n, err
}

func (s *cachedStore) Close() error {
	s.cache.Close()
	return s.Store.Close()
}

func copyStats(st *models.CatalogStats) *models.CatalogStats {
	out := *st
	out.Categories = maps.Clone(st.Categories)
	out.Brands = maps.Clone(st.Brands)
	return &out
}
