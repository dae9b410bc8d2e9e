// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// MemoryStore keeps the catalog in process memory. Parts are copied on the
// way in and out.
type MemoryStore struct {
	mu     sync.RWMutex
	parts  map[int64]models.Part
	byKey  map[partKey]int64
	nextID int64
	closed bool
}

// NewMemoryStore creates an empty in-memory catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		parts:  make(map[int64]models.Part),
		byKey:  make(map[partKey]int64),
		nextID: 1,
	}
}

// NewMemoryStoreWith creates an in-memory catalog holding parts. Ids are
// assigned in input order.
func NewMemoryStoreWith(parts []models.Part) *MemoryStore {
	s := NewMemoryStore()
	_, _ = s.Upsert(context.Background(), parts)
	return s
}

// Upsert inserts or updates parts keyed by (category, name).
func (s *MemoryStore) Upsert(_ context.Context, parts []models.Part) (int, error) {
	for i := range parts {
		if !parts[i].Category.Valid() {
			return 0, fmt.Errorf("part %q: %w: %q", parts[i].Name, models.ErrUnknownCategory, parts[i].Category)
		}
	}
	parts = dedupeLast(parts)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}

	for i := range parts {
		p := parts[i].Clone()
		k := keyOf(&p)
		if id, ok := s.byKey[k]; ok {
			p.ID = id
		} else {
			p.ID = s.nextID
			s.nextID++
			s.byKey[k] = p.ID
		}
		s.parts[p.ID] = p
	}
	return len(parts), nil
}

// Fetch returns the parts of one category matching filter, ordered by id.
func (s *MemoryStore) Fetch(_ context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	return cloneParts(filterParts(s.sorted(), category, filter)), nil
}

// Snapshot reads every category under one read lock.
func (s *MemoryStore) Snapshot(_ context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	all := s.sorted()
	out := make(map[models.Category][]models.Part, len(models.Categories))
	for _, cat := range models.Categories {
		out[cat] = cloneParts(filterParts(all, cat, filters[cat]))
	}
	return out, nil
}

// List returns one page of a category plus the total number of matches.
//
//nolint:gocritic // hugeParam: query passed by value, normalized locally
func (s *MemoryStore) List(_ context.Context, q models.PartQuery) ([]models.Part, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, 0, ErrStoreClosed
	}
	parts, total := listParts(s.sorted(), q)
	return cloneParts(parts), total, nil
}

// All returns every part ordered by category then id.
func (s *MemoryStore) All(_ context.Context) ([]models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	return cloneParts(s.sorted()), nil
}

// Count returns the number of parts.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return len(s.parts), nil
}

// Stats summarizes the catalog.
func (s *MemoryStore) Stats(_ context.Context) (*models.CatalogStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	return computeStats(s.sorted()), nil
}

// Ping fails once the store is closed.
func (s *MemoryStore) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

// Close drops the catalog. Subsequent calls return ErrStoreClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.parts = nil
	s.byKey = nil
	return nil
}

// sorted returns the stored parts ordered by category then id.
// The caller must hold s.mu.
func (s *MemoryStore) sorted() []models.Part {
	out := make([]models.Part, 0, len(s.parts))
	for id := range s.parts {
		out = append(out, s.parts[id])
	}
	sortByCategoryAndID(out)
	return out
}
