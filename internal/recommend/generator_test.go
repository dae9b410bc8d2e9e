// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"fmt"
	"testing"

	"github.com/tomtom215/buildmyrig/internal/models"
)

func buildKey(b *models.Build) string {
	return fmt.Sprint(b.PartIDs())
}

// bruteForce filters the full Cartesian product with the public predicates.
func bruteForce(rules *CompatibilityConfig, c Catalog, budget float64) map[string]bool {
	out := make(map[string]bool)
	chosen := make([]models.Part, len(models.Categories))
	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(models.Categories) {
			sel := SelectionOf(chosen)
			if !CheckCompatibility(rules, &sel).OK() || !CheckMinimumRequirements(rules, &sel).OK() {
				return
			}
			if sel.TotalPrice() > budget {
				return
			}
			b := models.NewBuild(chosen)
			out[buildKey(&b)] = true
			return
		}
		for _, p := range c[models.Categories[depth]] {
			chosen[depth] = p
			walk(depth + 1)
		}
	}
	walk(0)
	return out
}

func TestGenerate_MatchesCartesianProduct(t *testing.T) {
	t.Parallel()
	rules := &DefaultConfig().Compatibility

	for seed := uint64(1); seed <= 8; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			t.Parallel()
			catalog := randomCatalog(seed, 4)
			budget := 1800.0

			want := bruteForce(rules, catalog, budget)
			got := Generate(rules, catalog, budget)

			if len(got.Builds) != len(want) {
				t.Fatalf("Generate found %d builds, brute force found %d", len(got.Builds), len(want))
			}
			for i := range got.Builds {
				if !want[buildKey(&got.Builds[i])] {
					t.Errorf("Generate returned build %s not in brute-force set", buildKey(&got.Builds[i]))
				}
			}
			if got.Evaluated > 4*4*4*4*4*4*4 {
				t.Errorf("evaluated %d tuples, more than the full product", got.Evaluated)
			}
		})
	}
}

func TestGenerate_InvariantsHold(t *testing.T) {
	t.Parallel()
	rules := &DefaultConfig().Compatibility
	catalog := randomCatalog(42, 5)
	budget := 2000.0

	res := Generate(rules, catalog, budget)
	for i := range res.Builds {
		b := &res.Builds[i]
		sel := SelectionOf(b.Parts)
		cpu, board, ram := sel.CPU.Tags.CPU, sel.Motherboard.Tags.Motherboard, sel.RAM.Tags.RAM
		gpu, psu, chassis := sel.GPU.Tags.GPU, sel.PSU.Tags.PSU, sel.Case.Tags.Case

		if b.TotalPrice > budget {
			t.Errorf("build %s over budget: %v", buildKey(b), b.TotalPrice)
		}
		if cpu.Socket != board.Socket {
			t.Errorf("build %s socket %s vs %s", buildKey(b), cpu.Socket, board.Socket)
		}
		if float64(psu.Wattage) < 1.2*float64(cpu.TDP+gpu.Power+100) {
			t.Errorf("build %s psu %dW insufficient", buildKey(b), psu.Wattage)
		}
		if ram.CapacityGB > board.MaxMemoryGB || ram.CapacityGB < 8 {
			t.Errorf("build %s ram %dGB outside [8, %d]", buildKey(b), ram.CapacityGB, board.MaxMemoryGB)
		}
		if gpu.LengthMM > chassis.MaxGPULengthMM {
			t.Errorf("build %s gpu %dmm exceeds case %dmm", buildKey(b), gpu.LengthMM, chassis.MaxGPULengthMM)
		}
	}
}

func TestGenerate_BudgetMonotonic(t *testing.T) {
	t.Parallel()
	rules := &DefaultConfig().Compatibility
	catalog := randomCatalog(99, 4)

	small := Generate(rules, catalog, 1200)
	large := Generate(rules, catalog, 1800)

	largeSet := make(map[string]bool, len(large.Builds))
	for i := range large.Builds {
		largeSet[buildKey(&large.Builds[i])] = true
	}
	for i := range small.Builds {
		if !largeSet[buildKey(&small.Builds[i])] {
			t.Errorf("build %s valid at 1200 but not at 1800", buildKey(&small.Builds[i]))
		}
	}
	if len(large.Builds) < len(small.Builds) {
		t.Errorf("larger budget found fewer builds: %d < %d", len(large.Builds), len(small.Builds))
	}
}

func TestGenerate_EmptyCategory(t *testing.T) {
	t.Parallel()
	rules := &DefaultConfig().Compatibility

	catalog := scenarioCatalog()
	catalog[models.CategoryCase] = nil

	res := Generate(rules, catalog, 1000)
	if len(res.Builds) != 0 {
		t.Fatalf("expected no builds, got %d", len(res.Builds))
	}
	if res.Rejections[ReasonMissingPart] == 0 {
		t.Error("expected missing_part rejection")
	}
}

func TestGenerate_PrunesOnSocketBeforeLeaves(t *testing.T) {
	t.Parallel()
	rules := &DefaultConfig().Compatibility

	catalog := withPart(scenarioCatalog(),
		newPart(8, models.CategoryCPU, "AMD Ryzen 7 7700X", 140, 100, "AMD", "AMD", models.RawTags{"tdp": 105}))

	res := Generate(rules, catalog, 1000)
	if len(res.Builds) != 1 {
		t.Fatalf("expected 1 build, got %d", len(res.Builds))
	}
	if res.Evaluated != 1 {
		t.Errorf("expected only the compatible tuple to reach the leaf, evaluated %d", res.Evaluated)
	}
	if res.Rejections[ReasonSocketMismatch] != 1 {
		t.Errorf("socket rejections = %d, want 1", res.Rejections[ReasonSocketMismatch])
	}
}
