// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"errors"
	"strings"
	"time"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// UseCase selects the allocation table and performance boosts.
type UseCase string

// Recognized use cases. Any other value is carried through unchanged and
// receives general allocations with no boosts.
const (
	UseCaseGaming      UseCase = "gaming"
	UseCaseWorkstation UseCase = "workstation"
	UseCaseGeneral     UseCase = "general"
)

// ParseUseCase normalizes s. It never fails.
func ParseUseCase(s string) UseCase {
	return UseCase(strings.ToLower(strings.TrimSpace(s)))
}

// Recognized reports whether u has its own allocation and boost tables.
func (u UseCase) Recognized() bool {
	switch u {
	case UseCaseGaming, UseCaseWorkstation, UseCaseGeneral:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (u UseCase) String() string {
	return string(u)
}

// Errors returned by the engine.
var (
	// ErrInvalidRequest indicates the request failed validation. Nothing was computed.
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrCatalogUnavailable indicates the catalog could not be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrNoCatalog is returned by Recommend when the engine has no accessor.
	ErrNoCatalog = errors.New("catalog accessor not set")
)

// Request is a single recommendation request. Brand preferences must already
// be translated into per-category filters (see models.BrandFilterFor).
type Request struct {
	// RequestID correlates logs; generated when empty.
	RequestID string `json:"request_id,omitempty"`

	// Budget is the maximum total price. Must be positive.
	Budget float64 `json:"budget"`

	// Filters narrows catalog reads per category. Missing categories are unfiltered.
	Filters map[models.Category]models.BrandFilter `json:"filters,omitempty"`

	// UseCase is matched case-insensitively.
	UseCase string `json:"use_case"`
}

// Response is the result of a recommendation. An empty Builds slice is a
// valid outcome meaning no combination satisfied every constraint.
type Response struct {
	Builds   []models.Build   `json:"builds"`
	UseCase  UseCase          `json:"use_case"`
	Stats    SearchStats      `json:"stats"`
	Metadata ResponseMetadata `json:"metadata"`
}

// Empty reports whether no build was found.
func (r *Response) Empty() bool {
	return len(r.Builds) == 0
}

// SearchStats describes how much work a request took.
type SearchStats struct {
	// CatalogParts is the number of parts read per category.
	CatalogParts map[models.Category]int `json:"catalog_parts"`

	// Shortlisted is the number of candidates per category after funneling.
	Shortlisted map[models.Category]int `json:"shortlisted"`

	// TuplesEvaluated counts complete combinations that reached the leaf checks.
	TuplesEvaluated int64 `json:"tuples_evaluated"`

	// BranchesPruned counts partial combinations rejected early.
	BranchesPruned int64 `json:"branches_pruned"`

	// Rejections counts rejected branches and tuples by reason.
	Rejections map[Reason]int64 `json:"rejections"`

	// ValidBuilds is the number of builds that passed every check.
	ValidBuilds int `json:"valid_builds"`

	// Snapshot is true when all categories were read in one consistent view.
	Snapshot bool `json:"snapshot"`
}

// ResponseMetadata carries request bookkeeping.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// EngineMetrics is a point-in-time view of engine counters.
type EngineMetrics struct {
	Requests     int64 `json:"requests"`
	EmptyResults int64 `json:"empty_results"`
	Errors       int64 `json:"errors"`
}
