// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import (
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// brandAlias maps name fragments to a manufacturer. Entries are checked in
// order and the first manufacturer with a matching fragment wins.
type brandAlias struct {
	brand     string
	fragments []string
}

var manufacturers = []brandAlias{
	{"MSI", []string{"MSI"}},
	{"ASUS", []string{"ASUS", "ROG", "TUF", "PRIME", "ProArt"}},
	{"Gigabyte", []string{"Gigabyte", "AORUS"}},
	{"ASRock", []string{"ASRock"}},
	{"Corsair", []string{"Corsair"}},
	{"G.Skill", []string{"G.Skill", "Trident", "Ripjaws", "Flare"}},
	{"Samsung", []string{"Samsung"}},
	{"Western Digital", []string{"Western Digital", "WD"}},
	{"Seagate", []string{"Seagate"}},
	{"Crucial", []string{"Crucial"}},
	{"Kingston", []string{"Kingston"}},
	{"EVGA", []string{"EVGA"}},
	{"Seasonic", []string{"Seasonic"}},
	{"Thermaltake", []string{"Thermaltake"}},
	{"Cooler Master", []string{"Cooler Master"}},
	{"NZXT", []string{"NZXT"}},
	{"Fractal Design", []string{"Fractal Design"}},
	{"Lian Li", []string{"Lian Li"}},
	{"be quiet!", []string{"be quiet!"}},
	{"Phanteks", []string{"Phanteks"}},
	{"Deepcool", []string{"Deepcool"}},
	{"Montech", []string{"Montech"}},
	{"TEAMGROUP", []string{"TEAMGROUP"}},
	{"Patriot", []string{"Patriot"}},
	{"Silicon Power", []string{"Silicon Power"}},
	{"ADATA", []string{"ADATA"}},
	{"PNY", []string{"PNY"}},
	{"Zotac", []string{"Zotac"}},
	{"Sapphire", []string{"Sapphire"}},
	{"PowerColor", []string{"PowerColor"}},
	{"XFX", []string{"XFX"}},
	{"Intel", []string{"Intel"}},
	{"AMD", []string{"AMD"}},
}

// ExtractManufacturer returns the board or device maker named in a part
// name. Matching is case-insensitive; unknown names fall back to their first
// word, and an empty name yields "Unknown".
func ExtractManufacturer(name string) string {
	upper := strings.ToUpper(name)
	for _, m := range manufacturers {
		if containsAny(upper, m.fragments) {
			return m.brand
		}
	}
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "Unknown"
}

// hardwareKeywords lists, per category, the silicon vendors and the
// upper-case name fragments that identify them, in match order.
var hardwareKeywords = map[models.Category][]brandAlias{
	models.CategoryCPU: {
		{"Intel", []string{"INTEL", "CORE I", "CELERON", "PENTIUM", "XEON"}},
		{"AMD", []string{"AMD", "RYZEN", "THREADRIPPER", "ATHLON", "FX"}},
	},
	models.CategoryGPU: {
		{"NVIDIA", []string{"NVIDIA", "GEFORCE", "RTX", "GTX", "QUADRO", "TITAN"}},
		{"AMD", []string{"AMD", "RADEON", "RX ", "FIREPRO", "VEGA"}},
		{"Intel", []string{"INTEL", "ARC", "IRIS"}},
	},
	models.CategoryMotherboard: {
		{"Intel", []string{"INTEL", "LGA", "Z790", "Z690", "B660", "H610"}},
		{"AMD", []string{"AMD", "AM4", "AM5", "X570", "B550", "A520"}},
	},
}

// ExtractHardwareBrand returns the silicon vendor for processors, graphics
// cards and motherboard chipsets. Other categories, and names with no
// vendor keyword, use the manufacturer.
func ExtractHardwareBrand(name string, category models.Category) string {
	upper := strings.ToUpper(name)
	for _, vendor := range hardwareKeywords[category] {
		if containsAny(upper, vendor.fragments) {
			return vendor.brand
		}
	}
	return ExtractManufacturer(name)
}

// containsAny reports whether upper contains any fragment, compared
// case-insensitively.
func containsAny(upper string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(upper, strings.ToUpper(f)) {
			return true
		}
	}
	return false
}
