// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package models

import "strings"

// Listing limits for catalog browsing.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Sort fields accepted by catalog listings.
const (
	SortByPerformance = "performance_score"
	SortByPrice       = "price"
	SortByName        = "name"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// PartQuery describes a paged, sorted listing of one category.
type PartQuery struct {
	Category  Category    `json:"category"`
	Filter    BrandFilter `json:"filter"`
	SortBy    string      `json:"sort_by"`
	SortOrder string      `json:"sort_order"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}

// Normalize applies listing defaults: unknown sort fields fall back to
// performance score, unknown orders to descending, and the limit is clamped.
func (q PartQuery) Normalize() PartQuery {
	switch strings.ToLower(q.SortBy) {
	case SortByPrice, SortByName, SortByPerformance:
		q.SortBy = strings.ToLower(q.SortBy)
	default:
		q.SortBy = SortByPerformance
	}
	if strings.EqualFold(q.SortOrder, SortAsc) {
		q.SortOrder = SortAsc
	} else {
		q.SortOrder = SortDesc
	}
	if q.Limit <= 0 {
		q.Limit = DefaultListLimit
	}
	if q.Limit > MaxListLimit {
		q.Limit = MaxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// PriceRange is the cheapest and most expensive listed price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CatalogStats summarizes catalog contents.
type CatalogStats struct {
	TotalParts int              `json:"total_parts"`
	Categories map[Category]int `json:"categories"`
	Brands     map[string]int   `json:"brands"`
	PriceRange PriceRange       `json:"price_range"`
}
