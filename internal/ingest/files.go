// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import "github.com/tomtom215/buildmyrig/internal/models"

// priceFiles maps categories to their price list file names.
var priceFiles = map[models.Category]string{
	models.CategoryCPU:         "CPUs.csv",
	models.CategoryGPU:         "GPUs.csv",
	models.CategoryMotherboard: "Motherboards.csv",
	models.CategoryRAM:         "RAMs.csv",
	models.CategoryStorage:     "SSDs.csv",
	models.CategoryPSU:         "Power Supply.csv",
	models.CategoryCase:        "Cases.csv",
}

// benchmarkFiles maps categories to their benchmark export file names.
// Motherboards, power supplies and cases have no benchmark data.
var benchmarkFiles = map[models.Category]string{
	models.CategoryCPU:     "CPU_UserBenchmarks.csv",
	models.CategoryGPU:     "GPU_UserBenchmarks.csv",
	models.CategoryRAM:     "RAM_UserBenchmarks.csv",
	models.CategoryStorage: "SSD_UserBenchmarks.csv",
}

// PriceFile returns the price list file name for category.
func PriceFile(category models.Category) string {
	return priceFiles[category]
}

// BenchmarkFile returns the benchmark file name for category, or "" when the
// category has none.
func BenchmarkFile(category models.Category) string {
	return benchmarkFiles[category]
}

// Column names read from price lists.
const (
	colName        = "name"
	colPrice       = "price"
	colTDP         = "tdp"
	colCoreCount   = "core_count"
	colLength      = "length"
	colSocket      = "socket"
	colFormFactor  = "form_factor"
	colMemorySlots = "memory_slots"
	colMaxMemory   = "max_memory"
	colSpeed       = "speed"
	colType        = "type"
	colCapacity    = "capacity"
	colInterface   = "interface"
	colWattage     = "wattage"
	colEfficiency  = "efficiency"
	colModular     = "modular"
)

// Column names read from benchmark exports.
const (
	colModel     = "Model"
	colBenchmark = "Benchmark"
	colRank      = "Rank"
	colSamples   = "Samples"
	colURL       = "URL"
)

// Skip reasons reported per row.
const (
	SkipMissingName   = "missing_name"
	SkipMissingPrice  = "missing_price"
	SkipInvalidPrice  = "invalid_price"
	SkipNonPositive   = "non_positive_price"
	SkipMalformedLine = "malformed_row"
)
