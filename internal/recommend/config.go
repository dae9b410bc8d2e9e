// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// Config contains all tunable tables for the recommendation engine.
type Config struct {
	// Allocations is the nominal share of the budget per category, per use case.
	Allocations AllocationTable `json:"allocations"`

	// Limits bounds how little or how much of the budget a category may take.
	Limits SpendLimitTable `json:"limits"`

	// BrandAllowList names the manufacturers considered during funneling.
	// Matching is case-insensitive.
	BrandAllowList []string `json:"brand_allow_list"`

	// Boosts are per-use-case performance multipliers.
	Boosts BoostTable `json:"boosts"`

	// RAMCapacity restricts memory kit sizes per use case. Use cases with no
	// entry are not restricted.
	RAMCapacity map[UseCase]CapacityRange `json:"ram_capacity"`

	// Funnel contains the price-band factors and pool sizes.
	Funnel FunnelConfig `json:"funnel"`

	// Compatibility contains the hardware rules.
	Compatibility CompatibilityConfig `json:"compatibility"`

	// Scoring contains the composite-score weights.
	Scoring ScoringConfig `json:"scoring"`

	// Diversity contains the result-set caps.
	Diversity DiversityConfig `json:"diversity"`
}

// AllocationTable maps a use case to its per-category budget fractions.
type AllocationTable map[UseCase]map[models.Category]float64

// SpendLimit is a [Min, Max] fraction of the total budget.
type SpendLimit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SpendLimitTable maps each category to its spend limit.
type SpendLimitTable map[models.Category]SpendLimit

// Boost holds multiplicative performance factors. A factor of 1 leaves the
// score unchanged.
type Boost struct {
	CPU  float64 `json:"cpu"`
	GPU  float64 `json:"gpu"`
	RAM  float64 `json:"ram"`
	NVMe float64 `json:"nvme_storage"`
}

// BoostTable maps a use case to its boost.
type BoostTable map[UseCase]Boost

// CapacityRange is an inclusive GB range.
type CapacityRange struct {
	MinGB int `json:"min_gb"`
	MaxGB int `json:"max_gb"`
}

// FunnelConfig contains the band factors used to shape each category's
// candidate pool around its allocated budget.
type FunnelConfig struct {
	// MaxPriceFraction excludes any single part above this share of the budget.
	MaxPriceFraction float64 `json:"max_price_fraction"`

	// CheapestFallback is how many of the cheapest parts are kept when no part
	// passes the restricted or relaxed filters.
	CheapestFallback int `json:"cheapest_fallback"`

	BalancedMinLimitFactor   float64 `json:"balanced_min_limit_factor"`
	BalancedLowerAllocFactor float64 `json:"balanced_lower_alloc_factor"`
	BalancedUpperAllocFactor float64 `json:"balanced_upper_alloc_factor"`
	BalancedTop              int     `json:"balanced_top"`

	ValueMinLimitFactor   float64 `json:"value_min_limit_factor"`
	ValueUpperAllocFactor float64 `json:"value_upper_alloc_factor"`
	ValueTop              int     `json:"value_top"`

	PremiumLowerAllocFactor float64 `json:"premium_lower_alloc_factor"`
	PremiumMaxLimitFactor   float64 `json:"premium_max_limit_factor"`
	PremiumTop              int     `json:"premium_top"`

	TopUpTarget         int     `json:"top_up_target"`
	TopUpMinLimitFactor float64 `json:"top_up_min_limit_factor"`
	TopUpMaxLimitFactor float64 `json:"top_up_max_limit_factor"`

	// PoolCap bounds the union of all bands.
	PoolCap int `json:"pool_cap"`

	// ShortlistSize is the per-category input to combination generation.
	ShortlistSize int `json:"shortlist_size"`

	ShortlistPerformanceWeight float64 `json:"shortlist_performance_weight"`
	ShortlistValueWeight       float64 `json:"shortlist_value_weight"`
}

// CompatibilityConfig contains the hardware compatibility rules.
type CompatibilityConfig struct {
	// DDR4OnlySockets are motherboard sockets that cannot take DDR5.
	DDR4OnlySockets []string `json:"ddr4_only_sockets"`

	// PowerOverheadWatts covers board, memory, storage and fans.
	PowerOverheadWatts int `json:"power_overhead_watts"`

	// PowerHeadroom is the mandatory PSU multiplier over estimated draw.
	PowerHeadroom float64 `json:"power_headroom"`

	// CaseFit maps a motherboard form factor to the case form factors it fits.
	CaseFit map[string][]string `json:"case_fit"`

	// MinRAMGB is the smallest acceptable memory kit.
	MinRAMGB int `json:"min_ram_gb"`

	// UndersizedStorageMarkers exclude drives whose names contain them.
	UndersizedStorageMarkers []string `json:"undersized_storage_markers"`
}

// ScoringConfig contains the composite score weights.
type ScoringConfig struct {
	PerformanceWeight float64 `json:"performance_weight"`
	UtilizationWeight float64 `json:"utilization_weight"`
	PerformanceScale  float64 `json:"performance_scale"`
}

// DiversityConfig caps the number of builds kept and returned.
type DiversityConfig struct {
	KeepMax   int `json:"keep_max"`
	ReturnMax int `json:"return_max"`
}

// DefaultBrandAllowList is the set of recognized manufacturers.
var DefaultBrandAllowList = []string{
	"Intel", "AMD", "NVIDIA", "Corsair", "MSI", "Asus", "Samsung", "G.Skill",
	"Crucial", "EVGA", "Seasonic", "Western Digital", "WD", "Gigabyte", "ASRock",
	"Thermaltake", "Cooler Master", "NZXT", "Fractal Design", "be quiet!",
	"Seagate", "Kingston", "Patriot", "TEAMGROUP", "ADATA", "SilverStone",
	"Antec", "Phanteks", "Lian Li",
}

// DefaultConfig returns the production tables.
func DefaultConfig() *Config {
	return &Config{
		Allocations: AllocationTable{
			UseCaseGaming: {
				models.CategoryCPU:         0.25,
				models.CategoryGPU:         0.30,
				models.CategoryMotherboard: 0.12,
				models.CategoryRAM:         0.12,
				models.CategoryStorage:     0.08,
				models.CategoryPSU:         0.08,
				models.CategoryCase:        0.05,
			},
			UseCaseWorkstation: {
				models.CategoryCPU:         0.28,
				models.CategoryGPU:         0.25,
				models.CategoryMotherboard: 0.12,
				models.CategoryRAM:         0.18,
				models.CategoryStorage:     0.10,
				models.CategoryPSU:         0.07,
				models.CategoryCase:        0.05,
			},
			UseCaseGeneral: {
				models.CategoryCPU:         0.26,
				models.CategoryGPU:         0.28,
				models.CategoryMotherboard: 0.12,
				models.CategoryRAM:         0.14,
				models.CategoryStorage:     0.08,
				models.CategoryPSU:         0.07,
				models.CategoryCase:        0.05,
			},
		},
		Limits: SpendLimitTable{
			models.CategoryCPU:         {Min: 0.15, Max: 0.35},
			models.CategoryGPU:         {Min: 0.15, Max: 0.40},
			models.CategoryMotherboard: {Min: 0.08, Max: 0.20},
			models.CategoryRAM:         {Min: 0.08, Max: 0.25},
			models.CategoryStorage:     {Min: 0.05, Max: 0.15},
			models.CategoryPSU:         {Min: 0.05, Max: 0.12},
			models.CategoryCase:        {Min: 0.03, Max: 0.10},
		},
		BrandAllowList: append([]string(nil), DefaultBrandAllowList...),
		Boosts: BoostTable{
			UseCaseGaming:      {CPU: 1.10, GPU: 1.15, RAM: 1, NVMe: 1},
			UseCaseWorkstation: {CPU: 1.20, GPU: 1, RAM: 1.15, NVMe: 1.10},
			UseCaseGeneral:     {CPU: 1.05, GPU: 1.05, RAM: 1, NVMe: 1},
		},
		RAMCapacity: map[UseCase]CapacityRange{
			UseCaseGaming:      {MinGB: 8, MaxGB: 32},
			UseCaseGeneral:     {MinGB: 8, MaxGB: 32},
			UseCaseWorkstation: {MinGB: 8, MaxGB: 64},
		},
		Funnel: FunnelConfig{
			MaxPriceFraction:           0.8,
			CheapestFallback:           50,
			BalancedMinLimitFactor:     0.5,
			BalancedLowerAllocFactor:   0.4,
			BalancedUpperAllocFactor:   2.5,
			BalancedTop:                12,
			ValueMinLimitFactor:        0.8,
			ValueUpperAllocFactor:      1.2,
			ValueTop:                   8,
			PremiumLowerAllocFactor:    1.2,
			PremiumMaxLimitFactor:      0.9,
			PremiumTop:                 5,
			TopUpTarget:                15,
			TopUpMinLimitFactor:        0.6,
			TopUpMaxLimitFactor:        0.8,
			PoolCap:                    20,
			ShortlistSize:              6,
			ShortlistPerformanceWeight: 0.6,
			ShortlistValueWeight:       0.4,
		},
		Compatibility: CompatibilityConfig{
			DDR4OnlySockets:    []string{models.SocketAM4, models.SocketLGA1200, models.SocketLGA1151},
			PowerOverheadWatts: 100,
			PowerHeadroom:      1.2,
			CaseFit: map[string][]string{
				"ATX":      {"ATX", "Full Tower", "Mid Tower"},
				"mATX":     {"ATX", "mATX", "Full Tower", "Mid Tower", "Mini Tower"},
				"Mini-ITX": {"ATX", "mATX", "Mini-ITX", "Full Tower", "Mid Tower", "Mini Tower", "Desktop"},
			},
			MinRAMGB:                 8,
			UndersizedStorageMarkers: []string{"32gb", "64gb", "128gb"},
		},
		Scoring: ScoringConfig{
			PerformanceWeight: 0.6,
			UtilizationWeight: 0.4,
			PerformanceScale:  1000,
		},
		Diversity: DiversityConfig{
			KeepMax:   5,
			ReturnMax: 3,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.validateAllocations(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	if len(c.BrandAllowList) == 0 {
		return fmt.Errorf("brand_allow_list must not be empty")
	}
	for uc, b := range c.Boosts {
		if b.CPU <= 0 || b.GPU <= 0 || b.RAM <= 0 || b.NVMe <= 0 {
			return fmt.Errorf("boosts.%s factors must be positive, got %+v", uc, b)
		}
	}
	for uc, r := range c.RAMCapacity {
		if r.MinGB <= 0 || r.MaxGB < r.MinGB {
			return fmt.Errorf("ram_capacity.%s must satisfy 0 < min_gb <= max_gb, got %d..%d", uc, r.MinGB, r.MaxGB)
		}
	}
	if err := c.validateFunnel(); err != nil {
		return err
	}
	if err := c.validateCompatibility(); err != nil {
		return err
	}
	if c.Scoring.PerformanceWeight < 0 || c.Scoring.UtilizationWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative, got %f/%f",
			c.Scoring.PerformanceWeight, c.Scoring.UtilizationWeight)
	}
	if c.Scoring.PerformanceScale <= 0 {
		return fmt.Errorf("scoring.performance_scale must be positive, got %f", c.Scoring.PerformanceScale)
	}
	if c.Diversity.ReturnMax <= 0 {
		return fmt.Errorf("diversity.return_max must be positive, got %d", c.Diversity.ReturnMax)
	}
	if c.Diversity.KeepMax < c.Diversity.ReturnMax {
		return fmt.Errorf("diversity.keep_max must be >= diversity.return_max, got %d < %d",
			c.Diversity.KeepMax, c.Diversity.ReturnMax)
	}
	return nil
}

func (c *Config) validateAllocations() error {
	general, ok := c.Allocations[UseCaseGeneral]
	if !ok {
		return fmt.Errorf("allocations.general is required as the fallback table")
	}
	for uc, table := range c.Allocations {
		for _, cat := range models.Categories {
			frac, ok := table[cat]
			if !ok {
				if uc != UseCaseGeneral {
					if _, fallback := general[cat]; fallback {
						continue
					}
				}
				return fmt.Errorf("allocations.%s.%s is missing", uc, cat)
			}
			if frac <= 0 || frac > 1 {
				return fmt.Errorf("allocations.%s.%s must be in (0, 1], got %f", uc, cat, frac)
			}
		}
	}
	return nil
}

func (c *Config) validateLimits() error {
	for _, cat := range models.Categories {
		lim, ok := c.Limits[cat]
		if !ok {
			return fmt.Errorf("limits.%s is missing", cat)
		}
		if lim.Min < 0 || lim.Max <= 0 || lim.Min > lim.Max {
			return fmt.Errorf("limits.%s must satisfy 0 <= min <= max, got %f..%f", cat, lim.Min, lim.Max)
		}
	}
	return nil
}

func (c *Config) validateFunnel() error {
	f := c.Funnel
	if f.MaxPriceFraction <= 0 || f.MaxPriceFraction > 1 {
		return fmt.Errorf("funnel.max_price_fraction must be in (0, 1], got %f", f.MaxPriceFraction)
	}
	if f.CheapestFallback <= 0 {
		return fmt.Errorf("funnel.cheapest_fallback must be positive, got %d", f.CheapestFallback)
	}
	if f.BalancedTop <= 0 || f.ValueTop <= 0 || f.PremiumTop <= 0 {
		return fmt.Errorf("funnel band sizes must be positive, got %d/%d/%d", f.BalancedTop, f.ValueTop, f.PremiumTop)
	}
	if f.PoolCap <= 0 {
		return fmt.Errorf("funnel.pool_cap must be positive, got %d", f.PoolCap)
	}
	if f.TopUpTarget > f.PoolCap {
		return fmt.Errorf("funnel.top_up_target must be <= funnel.pool_cap, got %d > %d", f.TopUpTarget, f.PoolCap)
	}
	if f.ShortlistSize <= 0 || f.ShortlistSize > f.PoolCap {
		return fmt.Errorf("funnel.shortlist_size must be in [1, pool_cap], got %d", f.ShortlistSize)
	}
	return nil
}

func (c *Config) validateCompatibility() error {
	cc := c.Compatibility
	if cc.PowerHeadroom < 1 {
		return fmt.Errorf("compatibility.power_headroom must be >= 1, got %f", cc.PowerHeadroom)
	}
	if cc.PowerOverheadWatts < 0 {
		return fmt.Errorf("compatibility.power_overhead_watts must be non-negative, got %d", cc.PowerOverheadWatts)
	}
	if _, ok := cc.CaseFit[models.DefaultFormFactor]; !ok {
		return fmt.Errorf("compatibility.case_fit must define %s", models.DefaultFormFactor)
	}
	if cc.MinRAMGB <= 0 {
		return fmt.Errorf("compatibility.min_ram_gb must be positive, got %d", cc.MinRAMGB)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c

	out.Allocations = make(AllocationTable, len(c.Allocations))
	for uc, table := range c.Allocations {
		t := make(map[models.Category]float64, len(table))
		for cat, frac := range table {
			t[cat] = frac
		}
		out.Allocations[uc] = t
	}

	out.Limits = make(SpendLimitTable, len(c.Limits))
	for cat, lim := range c.Limits {
		out.Limits[cat] = lim
	}

	out.BrandAllowList = append([]string(nil), c.BrandAllowList...)

	out.Boosts = make(BoostTable, len(c.Boosts))
	for uc, b := range c.Boosts {
		out.Boosts[uc] = b
	}

	out.RAMCapacity = make(map[UseCase]CapacityRange, len(c.RAMCapacity))
	for uc, r := range c.RAMCapacity {
		out.RAMCapacity[uc] = r
	}

	out.Compatibility.DDR4OnlySockets = append([]string(nil), c.Compatibility.DDR4OnlySockets...)
	out.Compatibility.UndersizedStorageMarkers = append([]string(nil), c.Compatibility.UndersizedStorageMarkers...)
	out.Compatibility.CaseFit = make(map[string][]string, len(c.Compatibility.CaseFit))
	for ff, fits := range c.Compatibility.CaseFit {
		out.Compatibility.CaseFit[ff] = append([]string(nil), fits...)
	}

	return &out
}

// allocation returns the budget fraction for category, falling back to the
// general table for unrecognized use cases.
func (c *Config) allocation(uc UseCase, category models.Category) float64 {
	if table, ok := c.Allocations[uc]; ok {
		if frac, ok := table[category]; ok {
			return frac
		}
	}
	return c.Allocations[UseCaseGeneral][category]
}

// brandAllowed reports whether brand is on the allow-list.
func (c *Config) brandAllowed(brand string) bool {
	for _, b := range c.BrandAllowList {
		if strings.EqualFold(b, brand) {
			return true
		}
	}
	return false
}
