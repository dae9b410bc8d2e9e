// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import "github.com/tomtom215/buildmyrig/internal/models"

// Catalog is a request-scoped view of the parts, grouped by category.
type Catalog map[models.Category][]models.Part

// Adjust returns a copy of catalog with performance scores scaled for the use
// case. The input is never modified; every returned part is a fresh clone.
// Scaled scores are truncated toward zero.
func Adjust(catalog Catalog, uc UseCase, boosts BoostTable) Catalog {
	boost, ok := boosts[uc]
	out := make(Catalog, len(catalog))
	for cat, parts := range catalog {
		adjusted := make([]models.Part, len(parts))
		for i := range parts {
			p := parts[i].Clone()
			if ok {
				p.PerformanceScore = scale(p.PerformanceScore, boost.factor(&p))
			}
			adjusted[i] = p
		}
		out[cat] = adjusted
	}
	return out
}

// factor returns the multiplier that applies to p.
func (b Boost) factor(p *models.Part) float64 {
	switch p.Category {
	case models.CategoryCPU:
		return b.CPU
	case models.CategoryGPU:
		return b.GPU
	case models.CategoryRAM:
		return b.RAM
	case models.CategoryStorage:
		if models.IsNVMe(*p) {
			return b.NVMe
		}
	}
	return 1
}

func scale(score int, factor float64) int {
	if factor == 1 || factor == 0 {
		return score
	}
	return int(float64(score) * factor)
}
