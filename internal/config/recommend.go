// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package config

import (
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// EngineConfig returns the engine defaults with the configured overrides
// applied. The result is not validated; recommend.NewEngine does that.
func (r *RecommendConfig) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()

	if r.ShortlistSize > 0 {
		cfg.Funnel.ShortlistSize = r.ShortlistSize
	}
	if r.PoolCap > 0 {
		cfg.Funnel.PoolCap = r.PoolCap
		if cfg.Funnel.TopUpTarget > r.PoolCap {
			cfg.Funnel.TopUpTarget = r.PoolCap
		}
	}
	if r.KeepMax > 0 {
		cfg.Diversity.KeepMax = r.KeepMax
	}
	if r.ReturnMax > 0 {
		cfg.Diversity.ReturnMax = r.ReturnMax
	}
	if r.MaxPriceFraction > 0 {
		cfg.Funnel.MaxPriceFraction = r.MaxPriceFraction
	}
	if len(r.BrandAllowList) > 0 {
		cfg.BrandAllowList = append([]string(nil), r.BrandAllowList...)
	}

	return cfg
}
