// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"github.com/tomtom215/buildmyrig/internal/models"
)

// searchOrder fixes categories so each rule runs as soon as its parts are
// chosen: socket after the board, memory rules after the kit, clearance and
// form factor after the case, power after the PSU.
var searchOrder = []models.Category{
	models.CategoryCPU,
	models.CategoryMotherboard,
	models.CategoryRAM,
	models.CategoryGPU,
	models.CategoryCase,
	models.CategoryPSU,
	models.CategoryStorage,
}

// budgetSlack absorbs float summation-order differences when pruning on
// partial totals. The final budget check is exact.
const budgetSlack = 1e-6

// GenerateResult holds every valid build and search counters.
type GenerateResult struct {
	Builds     []models.Build
	Evaluated  int64
	Pruned     int64
	Rejections map[Reason]int64
}

// Generate enumerates one part per category from the shortlists and keeps
// every combination that fits the budget and passes all compatibility and
// minimum-requirement rules. The result is identical to filtering the full
// Cartesian product; branches are cut as soon as a rule or the budget fails.
func Generate(rules *CompatibilityConfig, shortlists Catalog, budget float64) GenerateResult {
	g := &generator{
		rules:  rules,
		budget: budget,
		levels: make([][]models.Part, len(searchOrder)),
		floor:  make([]float64, len(searchOrder)+1),
		result: GenerateResult{Rejections: make(map[Reason]int64)},
	}

	for i, cat := range searchOrder {
		parts := shortlists[cat]
		if len(parts) == 0 {
			g.result.Rejections[ReasonMissingPart]++
			return g.result
		}
		g.levels[i] = parts
	}

	// floor[i] is the cheapest possible spend on levels i and beyond.
	for i := len(searchOrder) - 1; i >= 0; i-- {
		cheapest := g.levels[i][0].Price
		for j := range g.levels[i] {
			if g.levels[i][j].Price < cheapest {
				cheapest = g.levels[i][j].Price
			}
		}
		g.floor[i] = g.floor[i+1] + cheapest
	}

	g.descend(0, 0)
	return g.result
}

type generator struct {
	rules  *CompatibilityConfig
	budget float64
	levels [][]models.Part
	floor  []float64
	sel    Selection
	result GenerateResult
}

func (g *generator) descend(depth int, spent float64) {
	if depth == len(searchOrder) {
		g.result.Evaluated++
		if spent > g.budget {
			g.result.Rejections[ReasonOverBudget]++
			return
		}
		g.result.Builds = append(g.result.Builds, models.NewBuild(g.sel.Parts()))
		return
	}

	cat := searchOrder[depth]
	slot := g.sel.slot(cat)
	parts := g.levels[depth]
	for i := range parts {
		p := &parts[i]
		total := spent + p.Price
		if total+g.floor[depth+1] > g.budget+budgetSlack {
			g.prune(ReasonOverBudget)
			continue
		}
		*slot = p
		if v := g.admit(cat); !v.OK() {
			g.prune(v.Reason)
			continue
		}
		g.descend(depth+1, total)
	}
	*slot = nil
}

func (g *generator) prune(r Reason) {
	g.result.Pruned++
	g.result.Rejections[r]++
}

// admit runs the rules that become decidable once cat has been chosen.
func (g *generator) admit(cat models.Category) Verdict {
	s := &g.sel
	switch cat {
	case models.CategoryCPU:
		if s.CPU.Tags.CPU == nil {
			return reject(ReasonMissingPart)
		}
	case models.CategoryMotherboard:
		if s.Motherboard.Tags.Motherboard == nil {
			return reject(ReasonMissingPart)
		}
		return checkSocket(s.CPU, s.Motherboard)
	case models.CategoryRAM:
		if s.RAM.Tags.RAM == nil {
			return reject(ReasonMissingPart)
		}
		if v := checkMemory(g.rules, s.Motherboard, s.RAM); !v.OK() {
			return v
		}
		return checkMinimumRAM(g.rules, s.RAM)
	case models.CategoryGPU:
		if s.GPU.Tags.GPU == nil {
			return reject(ReasonMissingPart)
		}
	case models.CategoryCase:
		if s.Case.Tags.Case == nil {
			return reject(ReasonMissingPart)
		}
		if v := checkFormFactor(g.rules, s.Motherboard, s.Case); !v.OK() {
			return v
		}
		return checkClearance(s.GPU, s.Case)
	case models.CategoryPSU:
		if s.PSU.Tags.PSU == nil {
			return reject(ReasonMissingPart)
		}
		return checkPower(g.rules, s.CPU, s.GPU, s.PSU)
	case models.CategoryStorage:
		if s.Storage.Tags.Storage == nil {
			return reject(ReasonMissingPart)
		}
		return checkMinimumStorage(g.rules, s.Storage)
	}
	return pass
}
