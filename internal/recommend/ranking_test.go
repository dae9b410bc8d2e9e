// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// syntheticBuild creates a build whose CPU and GPU IDs are given and whose
// total price and performance are controlled through the case part.
func syntheticBuild(cpuID, gpuID int64, price float64, perf int) models.Build {
	return models.NewBuild([]models.Part{
		newPart(cpuID, models.CategoryCPU, "cpu", 0, 0, "AMD", "AMD", nil),
		newPart(gpuID, models.CategoryGPU, "gpu", 0, 0, "AMD", "AMD", nil),
		newPart(1000, models.CategoryMotherboard, "mb", 0, 0, "MSI", "MSI", nil),
		newPart(1001, models.CategoryRAM, "ram", 0, 0, "Corsair", "Corsair", nil),
		newPart(1002, models.CategoryStorage, "ssd", 0, 0, "Samsung", "Samsung", nil),
		newPart(1003, models.CategoryPSU, "psu", 0, 0, "Corsair", "Corsair", nil),
		newPart(1004, models.CategoryCase, "case", price, perf, "NZXT", "NZXT", nil),
	})
}

func TestScore(t *testing.T) {
	t.Parallel()
	cfg := &DefaultConfig().Scoring

	b := syntheticBuild(1, 2, 800, 500)
	got := Score(cfg, &b, 1000)
	want := 0.6*0.5 + 0.4*0.8
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestRank_OrdersByScoreThenIDs(t *testing.T) {
	t.Parallel()
	cfg := &DefaultConfig().Scoring

	builds := []models.Build{
		syntheticBuild(5, 6, 500, 400),
		syntheticBuild(3, 4, 900, 600),
		syntheticBuild(1, 9, 500, 400), // ties with the first; lower CPU id wins
		syntheticBuild(7, 8, 950, 300),
	}

	Rank(cfg, builds, 1000)

	wantCPU := []int64{3, 7, 1, 5}
	for i, want := range wantCPU {
		cpu, _ := builds[i].Part(models.CategoryCPU)
		if cpu.ID != want {
			t.Fatalf("rank %d cpu = %d, want %d (order %v)", i, cpu.ID, want, rankedCPUs(builds))
		}
	}
}

func rankedCPUs(builds []models.Build) []int64 {
	out := make([]int64, len(builds))
	for i := range builds {
		cpu, _ := builds[i].Part(models.CategoryCPU)
		out[i] = cpu.ID
	}
	return out
}

func TestDiversify(t *testing.T) {
	t.Parallel()
	cfg := &DefaultConfig().Diversity

	t.Run("drops repeated cpu gpu pairs", func(t *testing.T) {
		ranked := []models.Build{
			syntheticBuild(1, 2, 900, 500),
			syntheticBuild(1, 2, 880, 490),
			syntheticBuild(1, 3, 870, 480),
			syntheticBuild(4, 2, 860, 470),
		}
		got := Diversify(cfg, ranked)
		if want := []int64{1, 1, 4}; len(got) != 3 {
			t.Fatalf("got %d builds, want %d", len(got), len(want))
		}
		gpu, _ := got[1].Part(models.CategoryGPU)
		if gpu.ID != 3 {
			t.Errorf("second kept build gpu = %d, want 3", gpu.ID)
		}
	})

	t.Run("returns at most three", func(t *testing.T) {
		var ranked []models.Build
		for i := int64(0); i < 10; i++ {
			ranked = append(ranked, syntheticBuild(10+i, 20+i, 900, 500))
		}
		got := Diversify(cfg, ranked)
		if len(got) != cfg.ReturnMax {
			t.Fatalf("got %d builds, want %d", len(got), cfg.ReturnMax)
		}
		cpu, _ := got[0].Part(models.CategoryCPU)
		if cpu.ID != 10 {
			t.Errorf("first build cpu = %d, want 10", cpu.ID)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := Diversify(cfg, nil)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", got)
		}
	})
}
