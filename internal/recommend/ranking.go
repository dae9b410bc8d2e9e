// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"sort"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// Score blends normalized performance with budget utilization, rewarding
// builds that spend closer to the full budget.
func Score(cfg *ScoringConfig, b *models.Build, budget float64) float64 {
	var total float64
	for i := range b.Parts {
		total += b.Parts[i].Price
	}
	utilization := 0.0
	if budget > 0 {
		utilization = total / budget
	}
	return cfg.PerformanceWeight*(float64(b.PerformanceScore)/cfg.PerformanceScale) +
		cfg.UtilizationWeight*utilization
}

// Rank sorts builds by descending score in place. Equal scores are ordered
// by the ascending part-ID tuple so output is reproducible.
func Rank(cfg *ScoringConfig, builds []models.Build, budget float64) {
	type keyed struct {
		score float64
		ids   []int64
	}
	keys := make([]keyed, len(builds))
	for i := range builds {
		keys[i] = keyed{score: Score(cfg, &builds[i], budget), ids: builds[i].PartIDs()}
	}

	idx := make([]int, len(builds))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.score != kb.score {
			return ka.score > kb.score
		}
		return lessIDs(ka.ids, kb.ids)
	})

	sorted := make([]models.Build, len(builds))
	for i, j := range idx {
		sorted[i] = builds[j]
	}
	copy(builds, sorted)
}

func lessIDs(a, b []int64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Diversify walks ranked builds and keeps a build only when no kept build
// shares its processor and graphics card. It stops after KeepMax builds and
// returns at most ReturnMax.
func Diversify(cfg *DiversityConfig, ranked []models.Build) []models.Build {
	type pair struct{ cpu, gpu int64 }
	seen := make(map[pair]struct{}, cfg.KeepMax)
	kept := make([]models.Build, 0, cfg.KeepMax)

	for i := range ranked {
		if len(kept) >= cfg.KeepMax {
			break
		}
		cpu, _ := ranked[i].Part(models.CategoryCPU)
		gpu, _ := ranked[i].Part(models.CategoryGPU)
		key := pair{cpu.ID, gpu.ID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, ranked[i])
	}

	if len(kept) > cfg.ReturnMax {
		kept = kept[:cfg.ReturnMax]
	}
	return kept
}
