// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package models

import (
	"regexp"
	"strconv"
	"strings"
)

// Sockets produced by the name heuristics.
const (
	SocketLGA1700 = "LGA1700"
	SocketLGA1200 = "LGA1200"
	SocketLGA1151 = "LGA1151"
	SocketAM5     = "AM5"
	SocketAM4     = "AM4"
)

var (
	capacityGBPattern = regexp.MustCompile(`(?i)(\d+)\s*GB`)
	intelTierPattern  = regexp.MustCompile(`(?i)\bi[3579]\b`)
	intelModelPattern = regexp.MustCompile(`(?i)\bi[3579]\s*-?\s*(\d{4,5})`)
	ryzenModelPattern = regexp.MustCompile(`(?i)ryzen\s+(?:\d\s+)?(?:pro\s+)?(\d{4})`)
)

// DeriveCPUSocket guesses a processor socket from its marketing name.
// Intel parts map by generation, AMD parts by Ryzen series. Anything else
// resolves to SocketUnknown, which never matches a motherboard.
func DeriveCPUSocket(name string) string {
	upper := strings.ToUpper(name)

	if strings.Contains(upper, "INTEL") || intelTierPattern.MatchString(name) {
		return intelSocket(name)
	}
	if strings.Contains(upper, "AMD") || strings.Contains(upper, "RYZEN") {
		if m := ryzenModelPattern.FindStringSubmatch(name); m != nil {
			switch m[1][0] {
			case '7', '8', '9':
				return SocketAM5
			}
		}
		return SocketAM4
	}
	return SocketUnknown
}

func intelSocket(name string) string {
	gen := -1
	if m := intelModelPattern.FindStringSubmatch(name); m != nil {
		digits := m[1]
		prefix := digits[:1]
		if len(digits) == 5 {
			prefix = digits[:2]
		}
		gen, _ = strconv.Atoi(prefix)
	}

	switch {
	case gen >= 12 && gen <= 14:
		return SocketLGA1700
	case gen == 10 || gen == 11:
		return SocketLGA1200
	case gen >= 0:
		return SocketLGA1151
	}

	// No model number: fall back to generation markers anywhere in the name.
	for _, marker := range []string{"12", "13", "14"} {
		if strings.Contains(name, marker) {
			return SocketLGA1700
		}
	}
	for _, marker := range []string{"10", "11"} {
		if strings.Contains(name, marker) {
			return SocketLGA1200
		}
	}
	return SocketLGA1151
}

// DeriveRAMType reads the memory generation from a name, defaulting to DDR4.
func DeriveRAMType(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "DDR5"):
		return "DDR5"
	case strings.Contains(upper, "DDR4"):
		return "DDR4"
	case strings.Contains(upper, "DDR3"):
		return "DDR3"
	default:
		return DefaultRAMType
	}
}

// CapacityGBFromName returns the first "<n> GB" figure in name, or the
// 16 GB default when none is present.
func CapacityGBFromName(name string) int {
	m := capacityGBPattern.FindStringSubmatch(name)
	if m == nil {
		return DefaultRAMCapacityGB
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultRAMCapacityGB
	}
	return n
}

// ParseModular interprets the PSU modularity column.
func ParseModular(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "full", "semi":
		return true
	default:
		return false
	}
}

// IsNVMe reports whether a storage part's type tag is NVMe.
//
//nolint:gocritic // hugeParam: read-only helper used in filters
func IsNVMe(p Part) bool {
	return p.Tags.Storage != nil && strings.EqualFold(p.Tags.Storage.Type, "NVMe")
}
