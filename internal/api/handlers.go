// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"context"
	"time"

	"github.com/tomtom215/buildmyrig/internal/config"
	"github.com/tomtom215/buildmyrig/internal/ingest"
	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// Version is reported by the health and info endpoints. Overridden at build
// time with -ldflags "-X github.com/tomtom215/buildmyrig/internal/api.Version=...".
var Version = "1.0.0"

// PartReader is the read side of the catalog used by the browse endpoints.
// catalog.Store satisfies it.
type PartReader interface {
	All(ctx context.Context) ([]models.Part, error)
	List(ctx context.Context, q models.PartQuery) ([]models.Part, int, error)
	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*models.CatalogStats, error)
	Ping(ctx context.Context) error
}

// Recommender produces build recommendations. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// ImportStatus reports on the catalog importer. *ingest.Importer satisfies it.
type ImportStatus interface {
	LastReport() *ingest.Report
	IsRunning() bool
}

// BreakerStatus reports the catalog circuit breaker state.
type BreakerStatus interface {
	State() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: Build recommendations
//   - handlers_parts.go: Catalog browsing and statistics
//   - handlers_health.go: Health probes and API info
type Handler struct {
	catalog        PartReader
	engine         Recommender
	importer       ImportStatus
	breaker        BreakerStatus
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - catalog: Catalog store for browsing endpoints and health checks
//   - engine: Recommendation engine, usually reading through the circuit breaker
//   - cfg: Application configuration (request timeout); may be nil in tests
//
// Example:
//
//	handler := api.NewHandler(store, engine, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(catalog PartReader, engine Recommender, cfg *config.Config) *Handler {
	h := &Handler{
		catalog:   catalog,
		engine:    engine,
		startTime: time.Now(),
	}
	if cfg != nil {
		h.requestTimeout = cfg.Recommend.RequestTimeout
	}
	return h
}

// SetImportStatus attaches the importer so health reports include the last
// import. Should be called once during startup.
func (h *Handler) SetImportStatus(s ImportStatus) {
	h.importer = s
}

// SetBreaker attaches the catalog circuit breaker so health reports include
// its state. Should be called once during startup.
func (h *Handler) SetBreaker(b BreakerStatus) {
	h.breaker = b
}
