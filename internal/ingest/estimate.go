// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import (
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// scoreTier assigns a score to names containing any of the fragments.
type scoreTier struct {
	fragments []string
	score     int
}

// defaultScore is used for categories without an estimation table and for
// unrecognized models.
const defaultScore = 70

var cpuTiers = []scoreTier{
	{[]string{"I9", "RYZEN 9", "THREADRIPPER"}, 95},
	{[]string{"I7", "RYZEN 7"}, 85},
	{[]string{"I5", "RYZEN 5"}, 75},
	{[]string{"I3", "RYZEN 3"}, 65},
}

const cpuFallbackScore = 60

var gpuTiers = []scoreTier{
	{[]string{"RTX 4090"}, 155},
	{[]string{"RTX 4080"}, 125},
	{[]string{"RTX 4070"}, 105},
	{[]string{"RTX 4060"}, 85},
	{[]string{"RTX 3080"}, 110},
	{[]string{"RTX 3070"}, 95},
	{[]string{"RTX 3060"}, 80},
	{[]string{"RTX 2080"}, 85},
	{[]string{"RTX 2070"}, 80},
	{[]string{"RTX 2060"}, 70},
	{[]string{"GTX 1660"}, 65},
	{[]string{"GTX 1650"}, 55},
	{[]string{"RX 7900"}, 125},
	{[]string{"RX 7800"}, 115},
	{[]string{"RX 7700"}, 100},
	{[]string{"RX 6900"}, 105},
	{[]string{"RX 6800"}, 95},
	{[]string{"RX 6700"}, 85},
	{[]string{"RX 6600"}, 75},
	{[]string{"RX 6500"}, 60},
}

// gpuPowerTiers estimates board power in watts from the model name.
var gpuPowerTiers = []scoreTier{
	{[]string{"RTX 4090"}, 450},
	{[]string{"RTX 4080"}, 320},
	{[]string{"RTX 4070"}, 200},
	{[]string{"RTX 4060"}, 115},
	{[]string{"RTX 30"}, 220},
	{[]string{"RX 7900"}, 300},
	{[]string{"RX 7800"}, 263},
	{[]string{"RX 7700"}, 245},
}

func matchTier(upper string, tiers []scoreTier, fallback int) int {
	for _, t := range tiers {
		if containsAny(upper, t.fragments) {
			return t.score
		}
	}
	return fallback
}

// EstimatePerformance scores a part from keywords in its name. It is used
// when no benchmark entry matches.
func EstimatePerformance(name string, category models.Category) int {
	upper := strings.ToUpper(name)
	switch category {
	case models.CategoryCPU:
		return matchTier(upper, cpuTiers, cpuFallbackScore)
	case models.CategoryGPU:
		return matchTier(upper, gpuTiers, defaultScore)
	case models.CategoryRAM:
		return estimateRAM(upper)
	case models.CategoryStorage:
		return estimateStorage(upper)
	default:
		return defaultScore
	}
}

func estimateRAM(upper string) int {
	switch {
	case containsAny(upper, []string{"DDR5", "5600", "6000"}):
		return 85
	case strings.Contains(upper, "DDR4"):
		switch {
		case containsAny(upper, []string{"3600", "4000"}):
			return 80
		case strings.Contains(upper, "3200"):
			return 75
		default:
			return 70
		}
	default:
		return 70
	}
}

func estimateStorage(upper string) int {
	switch {
	case containsAny(upper, []string{"NVME", "M.2"}):
		if containsAny(upper, []string{"PCIE 4.0", "PCIE 5.0"}) {
			return 90
		}
		return 85
	case strings.Contains(upper, "SSD"):
		return 75
	default:
		return 60
	}
}

// EstimateGPUPower returns the expected board power of a graphics card.
func EstimateGPUPower(name string) int {
	return matchTier(strings.ToUpper(name), gpuPowerTiers, models.DefaultGPUPower)
}
