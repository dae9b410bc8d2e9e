// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package models

import (
	"errors"
	"math"
	"strings"
)

// CompatibilityAllClear is the status string attached to every returned build.
const CompatibilityAllClear = "All parts compatible"

// BrandAny is the wildcard value for either half of a BrandFilter.
const BrandAny = "any"

// ErrUnknownCategory is returned when a category name is not in the closed set.
var ErrUnknownCategory = errors.New("unknown category")

// BrandFilter narrows a catalog read by manufacturer and/or silicon vendor.
// Empty fields and BrandAny both mean "no constraint".
type BrandFilter struct {
	Brand         string `json:"brand,omitempty"`
	HardwareBrand string `json:"hardware_brand,omitempty"`
}

// BrandFilterFor translates a user's brand preference for category into a
// filter. Processor and graphics preferences name the silicon vendor; every
// other category names the board or device manufacturer.
func BrandFilterFor(category Category, preference string) BrandFilter {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return BrandFilter{}
	}
	if category == CategoryCPU || category == CategoryGPU {
		return BrandFilter{Brand: BrandAny, HardwareBrand: preference}
	}
	return BrandFilter{Brand: preference, HardwareBrand: BrandAny}
}

// IsWildcard reports whether v places no constraint.
func IsWildcard(v string) bool {
	return v == "" || strings.EqualFold(v, BrandAny)
}

// Matches reports whether p passes the filter. Concrete values match exactly.
//
//nolint:gocritic // hugeParam: Part passed by value in filter loops
func (f BrandFilter) Matches(p Part) bool {
	if !IsWildcard(f.Brand) && p.Brand != f.Brand {
		return false
	}
	if !IsWildcard(f.HardwareBrand) && p.HardwareBrand != f.HardwareBrand {
		return false
	}
	return true
}

// Empty reports whether the filter has no constraints.
func (f BrandFilter) Empty() bool {
	return IsWildcard(f.Brand) && IsWildcard(f.HardwareBrand)
}

// Build is one complete recommended configuration. Builds are constructed
// once by the engine and never modified afterwards.
type Build struct {
	Parts               []Part               `json:"parts"`
	TotalPrice          float64              `json:"total_price"`
	PerformanceScore    int                  `json:"performance_score"`
	BudgetAllocation    map[Category]float64 `json:"budget_allocation"`
	CompatibilityStatus string               `json:"compatibility_status"`
	BangForBuck         float64              `json:"bang_for_buck_score"`
}

// NewBuild assembles a build from one part per category, in canonical order.
// Output figures are rounded: price to cents, value score to 4 places.
func NewBuild(parts []Part) Build {
	ordered := make([]Part, 0, len(parts))
	for _, c := range Categories {
		for i := range parts {
			if parts[i].Category == c {
				ordered = append(ordered, parts[i])
				break
			}
		}
	}

	var total float64
	var perf int
	alloc := make(map[Category]float64, len(ordered))
	for i := range ordered {
		total += ordered[i].Price
		perf += ordered[i].PerformanceScore
		alloc[ordered[i].Category] = ordered[i].Price
	}

	bang := 0.0
	if total > 0 {
		bang = float64(perf) / total
	}

	return Build{
		Parts:               ordered,
		TotalPrice:          Round(total, 2),
		PerformanceScore:    perf,
		BudgetAllocation:    alloc,
		CompatibilityStatus: CompatibilityAllClear,
		BangForBuck:         Round(bang, 4),
	}
}

// Part returns the build's part for category.
func (b *Build) Part(category Category) (Part, bool) {
	for i := range b.Parts {
		if b.Parts[i].Category == category {
			return b.Parts[i], true
		}
	}
	return Part{}, false
}

// PartIDs returns part IDs in canonical category order.
func (b *Build) PartIDs() []int64 {
	ids := make([]int64, 0, len(b.Parts))
	for _, c := range Categories {
		if p, ok := b.Part(c); ok {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Round rounds v to places decimal places, half away from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
