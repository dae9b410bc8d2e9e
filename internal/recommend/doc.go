// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

// Package recommend implements the PC build recommendation engine.
//
// # Pipeline
//
// Each request runs five stages over a request-scoped copy of the catalog:
//
//   - Adjust: use-case performance boosts (gaming favors GPUs, workstation
//     favors CPUs, memory and NVMe storage). Returns new parts.
//   - Narrow / Shortlist: per category, shape candidates around the
//     category's share of the budget using balanced, value and premium price
//     bands, then keep the best six by a performance/value blend.
//   - Generate: branch-and-bound over one part per category. Socket, memory,
//     form factor, clearance and power rules run as soon as their parts are
//     chosen; branches that cannot fit the budget are cut.
//   - Rank: composite score of performance and budget utilization, ties
//     broken by part IDs.
//   - Diversify: drop builds repeating a kept (CPU, GPU) pair, return three.
//
// # Outcomes
//
// An empty Response.Builds means no combination satisfied every constraint.
// This is a normal result. Errors are reserved for invalid requests
// (ErrInvalidRequest) and catalog failures (ErrCatalogUnavailable).
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Budget:  1500,
//	    UseCase: "gaming",
//	    Filters: map[models.Category]models.BrandFilter{
//	        models.CategoryCPU: models.BrandFilterFor(models.CategoryCPU, "AMD"),
//	    },
//	})
//
// # Thread Safety
//
// The engine holds only configuration and counters. Requests never share
// mutable state; the accessor's parts are cloned before scores are adjusted.
package recommend
