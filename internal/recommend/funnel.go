// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"sort"

	"github.com/samber/lo"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// Narrow reduces one category's parts to a budget-shaped pool of at most
// Funnel.PoolCap candidates. The pool is the union of three overlapping price
// bands around the category's allocation, topped up from a wider band when
// thin. Narrow never returns an empty pool while the category has any
// positively priced part.
//
//nolint:gocyclo // band construction reads best as one linear pass
func Narrow(cfg *Config, parts []models.Part, category models.Category, budget float64, uc UseCase) []models.Part {
	f := cfg.Funnel
	valid := restrict(cfg, parts, category, budget, uc)
	if len(valid) == 0 {
		return nil
	}

	categoryBudget := budget * cfg.allocation(uc, category)
	limit := cfg.Limits[category]
	minLimit := budget * limit.Min
	maxLimit := budget * limit.Max

	pool := newPoolBuilder(f.PoolCap)

	balanced := inBand(valid,
		max(minLimit*f.BalancedMinLimitFactor, categoryBudget*f.BalancedLowerAllocFactor),
		min(maxLimit, categoryBudget*f.BalancedUpperAllocFactor))
	sortByPerformance(balanced)
	pool.add(balanced, f.BalancedTop)

	value := inBand(valid, minLimit*f.ValueMinLimitFactor, categoryBudget*f.ValueUpperAllocFactor)
	sortByValue(value)
	pool.add(value, f.ValueTop)

	premiumLow := categoryBudget * f.PremiumLowerAllocFactor
	premiumHigh := maxLimit * f.PremiumMaxLimitFactor
	if premiumHigh > premiumLow {
		premium := inBand(valid, premiumLow, premiumHigh)
		sortByPerformance(premium)
		pool.add(premium, f.PremiumTop)
	}

	if pool.size() < f.TopUpTarget {
		fill := inBand(valid, minLimit*f.TopUpMinLimitFactor, maxLimit*f.TopUpMaxLimitFactor)
		sortByPerformance(fill)
		pool.fillTo(fill, f.TopUpTarget)
	}

	// Every band missed: keep the best restricted parts rather than drop the category.
	if pool.size() == 0 {
		fallback := append([]models.Part(nil), valid...)
		sortByPerformance(fallback)
		pool.fillTo(fallback, f.TopUpTarget)
	}

	return pool.parts()
}

// restrict applies the price ceiling, brand allow-list and RAM size filters,
// relaxing them in two steps when nothing survives.
func restrict(cfg *Config, parts []models.Part, category models.Category, budget float64, uc UseCase) []models.Part {
	ceiling := budget * cfg.Funnel.MaxPriceFraction
	valid := lo.Filter(parts, func(p models.Part, _ int) bool {
		return p.Price > 0 && p.Price <= ceiling && cfg.brandAllowed(p.Brand)
	})

	if category == models.CategoryRAM {
		if r, ok := cfg.RAMCapacity[uc]; ok {
			valid = lo.Filter(valid, func(p models.Part, _ int) bool {
				gb := models.CapacityGBFromName(p.Name)
				return gb >= r.MinGB && gb <= r.MaxGB
			})
		}
	}

	if len(valid) > 0 {
		return valid
	}

	valid = lo.Filter(parts, func(p models.Part, _ int) bool {
		return p.Price > 0 && p.Price <= budget
	})
	if len(valid) > 0 {
		return valid
	}

	cheapest := lo.Filter(parts, func(p models.Part, _ int) bool { return p.Price > 0 })
	sort.SliceStable(cheapest, func(i, j int) bool {
		if cheapest[i].Price != cheapest[j].Price {
			return cheapest[i].Price < cheapest[j].Price
		}
		return cheapest[i].ID < cheapest[j].ID
	})
	if len(cheapest) > cfg.Funnel.CheapestFallback {
		cheapest = cheapest[:cfg.Funnel.CheapestFallback]
	}
	return cheapest
}

// Shortlist picks the top Funnel.ShortlistSize candidates from pool by a
// blend of raw performance and performance per dollar.
func Shortlist(cfg *Config, pool []models.Part) []models.Part {
	f := cfg.Funnel
	blended := func(p *models.Part) float64 {
		return f.ShortlistPerformanceWeight*float64(p.PerformanceScore) + f.ShortlistValueWeight*p.ValuePerDollar()
	}

	out := append([]models.Part(nil), pool...)
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := blended(&out[i]), blended(&out[j])
		if bi != bj {
			return bi > bj
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > f.ShortlistSize {
		out = out[:f.ShortlistSize]
	}
	return out
}

// inBand returns the parts priced within [low, high].
func inBand(parts []models.Part, low, high float64) []models.Part {
	return lo.Filter(parts, func(p models.Part, _ int) bool {
		return p.Price >= low && p.Price <= high
	})
}

func sortByPerformance(parts []models.Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		if parts[i].PerformanceScore != parts[j].PerformanceScore {
			return parts[i].PerformanceScore > parts[j].PerformanceScore
		}
		return parts[i].ID < parts[j].ID
	})
}

func sortByValue(parts []models.Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		vi, vj := parts[i].ValuePerDollar(), parts[j].ValuePerDollar()
		if vi != vj {
			return vi > vj
		}
		return parts[i].ID < parts[j].ID
	})
}

// poolBuilder accumulates unique parts in encounter order.
type poolBuilder struct {
	limit int
	seen  map[int64]struct{}
	out   []models.Part
}

func newPoolBuilder(limit int) *poolBuilder {
	return &poolBuilder{limit: limit, seen: make(map[int64]struct{})}
}

func (b *poolBuilder) size() int { return len(b.out) }

// add appends up to top parts from ranked, skipping duplicates.
func (b *poolBuilder) add(ranked []models.Part, top int) {
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	for i := range ranked {
		b.push(ranked[i])
	}
}

// fillTo appends new parts from ranked until the pool holds target parts.
func (b *poolBuilder) fillTo(ranked []models.Part, target int) {
	for i := range ranked {
		if len(b.out) >= target {
			return
		}
		b.push(ranked[i])
	}
}

//nolint:gocritic // hugeParam: the pool keeps its own copy
func (b *poolBuilder) push(p models.Part) {
	if _, dup := b.seen[p.ID]; dup {
		return
	}
	b.seen[p.ID] = struct{}{}
	b.out = append(b.out, p)
}

func (b *poolBuilder) parts() []models.Part {
	if len(b.out) > b.limit {
		return b.out[:b.limit]
	}
	return b.out
}
