// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tag defaults applied when a catalog entry omits or garbles an attribute.
const (
	SocketUnknown = "Unknown"

	DefaultCPUTDP   = 65
	DefaultCPUCores = 4

	DefaultGPUPower  = 150
	DefaultGPULength = 280
	DefaultGPUPCIe   = "4.0"

	DefaultFormFactor  = "ATX"
	DefaultRAMSlots    = 4
	DefaultMaxMemoryGB = 128

	DefaultRAMType       = "DDR4"
	DefaultRAMSpeedMHz   = 3200
	DefaultRAMCapacityGB = 16

	DefaultStorageType      = "SSD"
	DefaultStorageCapacity  = "1TB"
	DefaultStorageInterface = "SATA 6.0 Gb/s"

	DefaultPSUWattage    = 650
	DefaultPSUEfficiency = "80+ Bronze"

	DefaultCaseMaxGPULength = 350
)

// RawTags is the untyped attribute bag used at storage and wire boundaries.
type RawTags map[string]any

// CPUTags are the compatibility attributes of a processor.
type CPUTags struct {
	Socket string
	TDP    int
	Cores  int
}

// GPUTags are the compatibility attributes of a graphics card.
type GPUTags struct {
	PCIe     string
	Power    int
	LengthMM int
}

// MotherboardTags are the compatibility attributes of a motherboard.
type MotherboardTags struct {
	Socket      string
	FormFactor  string
	RAMSlots    int
	MaxMemoryGB int
}

// RAMTags are the compatibility attributes of a memory kit.
type RAMTags struct {
	Type       string
	SpeedMHz   int
	CapacityGB int
}

// StorageTags are the compatibility attributes of a drive.
type StorageTags struct {
	Type      string
	Capacity  string
	Interface string
}

// PSUTags are the compatibility attributes of a power supply.
type PSUTags struct {
	Wattage    int
	Efficiency string
	Modular    bool
}

// CaseTags are the compatibility attributes of a chassis.
type CaseTags struct {
	FormFactor     string
	MaxGPULengthMM int
}

// Tags holds the typed attributes for a part. Exactly one field is set,
// matching the part's category.
type Tags struct {
	CPU         *CPUTags
	GPU         *GPUTags
	Motherboard *MotherboardTags
	RAM         *RAMTags
	Storage     *StorageTags
	PSU         *PSUTags
	Case        *CaseTags
}

// Clone deep-copies the populated tag set.
func (t Tags) Clone() Tags {
	var out Tags
	if t.CPU != nil {
		v := *t.CPU
		out.CPU = &v
	}
	if t.GPU != nil {
		v := *t.GPU
		out.GPU = &v
	}
	if t.Motherboard != nil {
		v := *t.Motherboard
		out.Motherboard = &v
	}
	if t.RAM != nil {
		v := *t.RAM
		out.RAM = &v
	}
	if t.Storage != nil {
		v := *t.Storage
		out.Storage = &v
	}
	if t.PSU != nil {
		v := *t.PSU
		out.PSU = &v
	}
	if t.Case != nil {
		v := *t.Case
		out.Case = &v
	}
	return out
}

// Raw flattens the typed tags back into the attribute names used on the wire
// and in storage.
func (t Tags) Raw() RawTags {
	raw := RawTags{}
	switch {
	case t.CPU != nil:
		raw["socket"] = t.CPU.Socket
		raw["tdp"] = t.CPU.TDP
		raw["cores"] = t.CPU.Cores
	case t.GPU != nil:
		raw["pcie"] = t.GPU.PCIe
		raw["power"] = t.GPU.Power
		raw["length"] = t.GPU.LengthMM
	case t.Motherboard != nil:
		raw["socket"] = t.Motherboard.Socket
		raw["form_factor"] = t.Motherboard.FormFactor
		raw["ram_slots"] = t.Motherboard.RAMSlots
		raw["max_memory"] = t.Motherboard.MaxMemoryGB
	case t.RAM != nil:
		raw["type"] = t.RAM.Type
		raw["speed"] = t.RAM.SpeedMHz
		raw["capacity"] = fmt.Sprintf("%dGB", t.RAM.CapacityGB)
	case t.Storage != nil:
		raw["type"] = t.Storage.Type
		raw["capacity"] = t.Storage.Capacity
		raw["interface"] = t.Storage.Interface
	case t.PSU != nil:
		raw["wattage"] = t.PSU.Wattage
		raw["efficiency"] = t.PSU.Efficiency
		raw["modular"] = t.PSU.Modular
	case t.Case != nil:
		raw["form_factor"] = t.Case.FormFactor
		raw["max_gpu_length"] = t.Case.MaxGPULengthMM
	}
	return raw
}

// ResolveTags converts raw attributes into typed tags for category,
// substituting defaults for anything missing or unparsable.
func ResolveTags(category Category, name string, raw RawTags) Tags {
	switch category {
	case CategoryCPU:
		socket := raw.str("socket", "")
		if socket == "" {
			socket = DeriveCPUSocket(name)
		}
		return Tags{CPU: &CPUTags{
			Socket: socket,
			TDP:    raw.intVal("tdp", DefaultCPUTDP),
			Cores:  raw.intVal("cores", raw.intVal("core_count", DefaultCPUCores)),
		}}
	case CategoryGPU:
		return Tags{GPU: &GPUTags{
			PCIe:     raw.str("pcie", DefaultGPUPCIe),
			Power:    raw.intVal("power", DefaultGPUPower),
			LengthMM: raw.intVal("length", DefaultGPULength),
		}}
	case CategoryMotherboard:
		return Tags{Motherboard: &MotherboardTags{
			Socket:      raw.str("socket", SocketUnknown),
			FormFactor:  raw.str("form_factor", DefaultFormFactor),
			RAMSlots:    raw.intVal("ram_slots", raw.intVal("memory_slots", DefaultRAMSlots)),
			MaxMemoryGB: raw.intVal("max_memory", DefaultMaxMemoryGB),
		}}
	case CategoryRAM:
		ramType := raw.str("type", "")
		if ramType == "" {
			ramType = DeriveRAMType(name)
		}
		return Tags{RAM: &RAMTags{
			Type:       ramType,
			SpeedMHz:   raw.intVal("speed", DefaultRAMSpeedMHz),
			CapacityGB: raw.ramCapacityGB(name),
		}}
	case CategoryStorage:
		return Tags{Storage: &StorageTags{
			Type:      raw.str("type", DefaultStorageType),
			Capacity:  raw.str("capacity", DefaultStorageCapacity),
			Interface: raw.str("interface", DefaultStorageInterface),
		}}
	case CategoryPSU:
		return Tags{PSU: &PSUTags{
			Wattage:    raw.intVal("wattage", DefaultPSUWattage),
			Efficiency: raw.str("efficiency", DefaultPSUEfficiency),
			Modular:    raw.boolVal("modular"),
		}}
	case CategoryCase:
		return Tags{Case: &CaseTags{
			FormFactor:     raw.str("form_factor", DefaultFormFactor),
			MaxGPULengthMM: raw.intVal("max_gpu_length", DefaultCaseMaxGPULength),
		}}
	default:
		return Tags{}
	}
}

var (
	leadingIntPattern  = regexp.MustCompile(`\d+`)
	ramCapacityPattern = regexp.MustCompile(`(?i)^(\d+)\s*(?:GB)?$`)
)

// ramCapacityGB reads the capacity tag as a plain GB figure ("32", "32GB").
// Kit notation such as "2x16GB" and other non-positive or unparsable values
// fall back to the default. Without a tag the name is used.
func (r RawTags) ramCapacityGB(name string) int {
	v, ok := r["capacity"]
	if !ok || v == nil {
		return CapacityGBFromName(name)
	}
	n := 0
	switch c := v.(type) {
	case int:
		n = c
	case int64:
		n = int(c)
	case float64:
		n = int(c)
	case float32:
		n = int(c)
	case string:
		s := strings.TrimSpace(c)
		if s == "" {
			return CapacityGBFromName(name)
		}
		if m := ramCapacityPattern.FindStringSubmatch(s); m != nil {
			n, _ = strconv.Atoi(m[1])
		}
	}
	if n <= 0 {
		return DefaultRAMCapacityGB
	}
	return n
}

// str returns a trimmed string attribute or def when absent or blank.
func (r RawTags) str(key, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return def
	}
	return s
}

// intVal accepts numbers and strings with units ("440mm", "128GB").
func (r RawTags) intVal(key string, def int) int {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	case string:
		m := leadingIntPattern.FindString(n)
		if m == "" {
			return def
		}
		parsed, err := strconv.Atoi(m)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

func (r RawTags) boolVal(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return ParseModular(b)
	case float64:
		return b != 0
	case int:
		return b != 0
	default:
		return false
	}
}
