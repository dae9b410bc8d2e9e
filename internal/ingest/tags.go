// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// buildTags derives the compatibility attributes for a price list row.
// Attributes left out fall back to the defaults applied by
// models.ResolveTags.
func buildTags(cat models.Category, name string, row map[string]string) models.RawTags {
	raw := models.RawTags{}
	set := func(key, value string) {
		if value != "" {
			raw[key] = value
		}
	}

	switch cat {
	case models.CategoryCPU:
		// Socket is derived from the model name by ResolveTags.
		set("tdp", row[colTDP])
		set("core_count", row[colCoreCount])
	case models.CategoryGPU:
		raw["pcie"] = models.DefaultGPUPCIe
		raw["power"] = EstimateGPUPower(name)
		set("length", row[colLength])
	case models.CategoryMotherboard:
		raw["socket"] = models.SocketUnknown
		set("socket", row[colSocket])
		set("form_factor", row[colFormFactor])
		set("memory_slots", row[colMemorySlots])
		set("max_memory", row[colMaxMemory])
	case models.CategoryRAM:
		raw["type"] = models.DeriveRAMType(name)
		if speed, ok := lastNumber(row[colSpeed]); ok {
			raw["speed"] = speed
		}
	case models.CategoryStorage:
		raw["type"] = storageType(name, row[colType])
		if capacity, ok := storageCapacity(row[colCapacity]); ok {
			raw["capacity"] = capacity
		}
		set("interface", row[colInterface])
	case models.CategoryPSU:
		set("wattage", row[colWattage])
		set("efficiency", row[colEfficiency])
		set("modular", row[colModular])
	case models.CategoryCase:
		raw["form_factor"] = caseFormFactor(row[colType])
		raw["max_gpu_length"] = caseMaxGPULength(row[colType])
	}
	return raw
}

// lastNumber returns the final integer in s. RAM speed columns carry the
// generation first ("5,6000").
func lastNumber(s string) (int, bool) {
	all := numberPattern.FindAllString(s, -1)
	if len(all) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(all[len(all)-1], 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

func storageType(name, column string) string {
	if column = strings.TrimSpace(column); column != "" {
		return column
	}
	if strings.Contains(strings.ToUpper(name), "HDD") {
		return "HDD"
	}
	return models.DefaultStorageType
}

// storageCapacity formats a capacity column in gigabytes as "2TB" or "500GB".
func storageCapacity(column string) (string, bool) {
	m := numberPattern.FindString(column)
	if m == "" {
		return "", false
	}
	gb, err := strconv.ParseFloat(m, 64)
	if err != nil || gb <= 0 {
		return "", false
	}
	if gb >= 1000 {
		return fmt.Sprintf("%dTB", int(gb/1000)), true
	}
	return fmt.Sprintf("%dGB", int(gb)), true
}

// caseFormFactor maps a chassis type ("ATX Mid Tower", "MicroATX Mini
// Tower") to the largest board it accepts.
func caseFormFactor(caseType string) string {
	upper := strings.ToUpper(caseType)
	switch {
	case strings.Contains(upper, "MICRO"), strings.Contains(upper, "MATX"):
		return "mATX"
	case strings.Contains(upper, "MINI"), strings.Contains(upper, "ITX"):
		return "Mini-ITX"
	default:
		return models.DefaultFormFactor
	}
}

// caseMaxGPULength estimates clearance in millimetres from the chassis size.
func caseMaxGPULength(caseType string) int {
	upper := strings.ToUpper(caseType)
	switch {
	case strings.Contains(upper, "MINI"):
		return 200
	case strings.Contains(upper, "MICRO"):
		return 300
	default:
		return models.DefaultCaseMaxGPULength
	}
}
