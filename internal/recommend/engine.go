// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// CatalogAccessor reads parts for one category. Implementations are
// read-only and make no ordering guarantee.
type CatalogAccessor interface {
	Fetch(ctx context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error)
}

// SnapshotAccessor reads every category in one consistent view. The engine
// prefers it when the accessor supports it.
type SnapshotAccessor interface {
	CatalogAccessor
	Snapshot(ctx context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error)
}

// Engine produces ranked, diverse build recommendations. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog CatalogAccessor

	requestCount atomic.Int64
	emptyCount   atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine reading from catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog CatalogAccessor, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: catalog,
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Metrics returns the engine's request counters.
func (e *Engine) Metrics() EngineMetrics {
	return EngineMetrics{
		Requests:     e.requestCount.Load(),
		EmptyResults: e.emptyCount.Load(),
		Errors:       e.errorCount.Load(),
	}
}

// Recommend reads the catalog and returns up to Diversity.ReturnMax builds.
// An empty result is not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	if err := validateRequest(req); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	if e.catalog == nil {
		e.errorCount.Add(1)
		return nil, ErrNoCatalog
	}

	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	catalog, snapshot, err := e.readCatalog(ctx, req.Filters)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	resp := e.evaluate(catalog, req, start)
	resp.Stats.Snapshot = snapshot

	if resp.Empty() {
		e.emptyCount.Add(1)
	}

	logger.Debug().
		Int64("tuples_evaluated", resp.Stats.TuplesEvaluated).
		Int64("branches_pruned", resp.Stats.BranchesPruned).
		Int("valid_builds", resp.Stats.ValidBuilds).
		Int("returned", len(resp.Builds)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// RecommendFromCatalog runs the pipeline on an in-memory catalog. Filters in
// req are ignored; catalog is assumed to be already narrowed. The catalog is
// not modified.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendFromCatalog(catalog Catalog, req Request) (*Response, error) {
	req = e.prepareRequest(req)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return e.evaluate(catalog, req, time.Now()), nil
}

// prepareRequest generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Float64("budget", req.Budget).
		Str("use_case", req.UseCase).
		Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func validateRequest(req Request) error {
	if math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) || req.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive, got %v", ErrInvalidRequest, req.Budget)
	}
	for cat := range req.Filters {
		if !cat.Valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidRequest, models.ErrUnknownCategory, cat)
		}
	}
	return nil
}

// readCatalog fetches all categories, through a snapshot when supported.
func (e *Engine) readCatalog(ctx context.Context, filters map[models.Category]models.BrandFilter) (Catalog, bool, error) {
	if sa, ok := e.catalog.(SnapshotAccessor); ok {
		parts, err := sa.Snapshot(ctx, filters)
		if err != nil {
			return nil, true, fmt.Errorf("snapshot: %w", err)
		}
		return Catalog(parts), true, nil
	}

	catalog := make(Catalog, len(models.Categories))
	for _, cat := range models.Categories {
		parts, err := e.catalog.Fetch(ctx, cat, filters[cat])
		if err != nil {
			return nil, false, fmt.Errorf("fetch %s: %w", cat, err)
		}
		catalog[cat] = parts
	}
	return catalog, false, nil
}

// evaluate runs adjust, funnel, generate, rank and diversify.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) evaluate(catalog Catalog, req Request, start time.Time) *Response {
	uc := ParseUseCase(req.UseCase)
	adjusted := Adjust(catalog, uc, e.config.Boosts)

	stats := SearchStats{
		CatalogParts: make(map[models.Category]int, len(models.Categories)),
		Shortlisted:  make(map[models.Category]int, len(models.Categories)),
	}

	shortlists := make(Catalog, len(models.Categories))
	for _, cat := range models.Categories {
		stats.CatalogParts[cat] = len(adjusted[cat])
		pool := Narrow(e.config, adjusted[cat], cat, req.Budget, uc)
		shortlists[cat] = Shortlist(e.config, pool)
		stats.Shortlisted[cat] = len(shortlists[cat])
	}

	gen := Generate(&e.config.Compatibility, shortlists, req.Budget)
	stats.TuplesEvaluated = gen.Evaluated
	stats.BranchesPruned = gen.Pruned
	stats.Rejections = gen.Rejections
	stats.ValidBuilds = len(gen.Builds)

	Rank(&e.config.Scoring, gen.Builds, req.Budget)
	builds := Diversify(&e.config.Diversity, gen.Builds)

	return &Response{
		Builds:  builds,
		UseCase: uc,
		Stats:   stats,
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			LatencyMS: time.Since(start).Milliseconds(),
			Timestamp: time.Now(),
		},
	}
}
