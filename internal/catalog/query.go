// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// filterParts returns the parts of category that pass filter, in input order.
func filterParts(parts []models.Part, category models.Category, filter models.BrandFilter) []models.Part {
	return lo.Filter(parts, func(p models.Part, _ int) bool {
		return p.Category == category && filter.Matches(p)
	})
}

// sortForQuery orders parts by the query's sort field and direction.
// Ascending id breaks ties regardless of direction.
//
//nolint:gocritic // hugeParam: normalized query passed by value
func sortForQuery(parts []models.Part, q models.PartQuery) {
	desc := q.SortOrder != models.SortAsc
	slices.SortStableFunc(parts, func(a, b models.Part) int {
		var c int
		switch q.SortBy {
		case models.SortByPrice:
			c = cmp.Compare(a.Price, b.Price)
		case models.SortByName:
			c = cmp.Compare(a.Name, b.Name)
		default:
			c = cmp.Compare(a.PerformanceScore, b.PerformanceScore)
		}
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// page returns the window [offset, offset+limit) of parts.
func page(parts []models.Part, offset, limit int) []models.Part {
	if offset >= len(parts) {
		return []models.Part{}
	}
	end := min(offset+limit, len(parts))
	return parts[offset:end]
}

// listParts applies a query to an unfiltered set of parts.
//
//nolint:gocritic // hugeParam: query passed by value, normalized locally
func listParts(all []models.Part, q models.PartQuery) ([]models.Part, int) {
	q = q.Normalize()
	matched := filterParts(all, q.Category, q.Filter)
	sortForQuery(matched, q)
	return page(matched, q.Offset, q.Limit), len(matched)
}

// computeStats summarizes parts. An empty input yields zero counts and a
// zero price range.
func computeStats(parts []models.Part) *models.CatalogStats {
	stats := &models.CatalogStats{
		TotalParts: len(parts),
		Categories: lo.CountValuesBy(parts, func(p models.Part) models.Category { return p.Category }),
		Brands:     lo.CountValuesBy(parts, func(p models.Part) string { return p.Brand }),
	}
	if len(parts) > 0 {
		prices := lo.Map(parts, func(p models.Part, _ int) float64 { return p.Price })
		stats.PriceRange = models.PriceRange{Min: lo.Min(prices), Max: lo.Max(prices)}
	}
	return stats
}

// partKey identifies a part for upserts.
type partKey struct {
	category models.Category
	name     string
}

func keyOf(p *models.Part) partKey {
	return partKey{category: p.Category, name: p.Name}
}

// dedupeLast keeps the last occurrence of each (category, name) key while
// preserving first-seen order.
func dedupeLast(parts []models.Part) []models.Part {
	last := make(map[partKey]int, len(parts))
	order := make([]partKey, 0, len(parts))
	for i := range parts {
		k := keyOf(&parts[i])
		if _, seen := last[k]; !seen {
			order = append(order, k)
		}
		last[k] = i
	}
	return lo.Map(order, func(k partKey, _ int) models.Part {
		return parts[last[k]]
	})
}

// sortByCategoryAndID orders parts the way All reports them.
func sortByCategoryAndID(parts []models.Part) {
	slices.SortFunc(parts, func(a, b models.Part) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// cloneParts deep-copies parts so callers cannot mutate store state.
func cloneParts(parts []models.Part) []models.Part {
	return lo.Map(parts, func(p models.Part, _ int) models.Part { return p.Clone() })
}
