// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// Reason explains why a combination was rejected.
type Reason string

// Rejection reasons. ReasonNone means the check passed.
const (
	ReasonNone              Reason = ""
	ReasonMissingPart       Reason = "missing_part"
	ReasonSocketMismatch    Reason = "socket_mismatch"
	ReasonMemoryGeneration  Reason = "memory_generation"
	ReasonInsufficientPower Reason = "insufficient_power"
	ReasonFormFactor        Reason = "form_factor"
	ReasonGPUClearance      Reason = "gpu_clearance"
	ReasonMemoryCapacity    Reason = "memory_capacity"
	ReasonInsufficientRAM   Reason = "insufficient_ram"
	ReasonUndersizedStorage Reason = "undersized_storage"
	ReasonOverBudget        Reason = "over_budget"
)

// Verdict is the outcome of a check. The zero value is a pass.
type Verdict struct {
	Reason Reason `json:"reason,omitempty"`
}

// OK reports whether the check passed.
func (v Verdict) OK() bool { return v.Reason == ReasonNone }

var pass = Verdict{}

func reject(r Reason) Verdict { return Verdict{Reason: r} }

// Selection is one candidate part per category. Nil entries are missing parts.
type Selection struct {
	CPU         *models.Part
	GPU         *models.Part
	Motherboard *models.Part
	RAM         *models.Part
	Storage     *models.Part
	PSU         *models.Part
	Case        *models.Part
}

// SelectionOf indexes parts by category. Later duplicates are ignored.
func SelectionOf(parts []models.Part) Selection {
	var s Selection
	for i := range parts {
		p := &parts[i]
		slot := s.slot(p.Category)
		if slot != nil && *slot == nil {
			*slot = p
		}
	}
	return s
}

func (s *Selection) slot(c models.Category) **models.Part {
	switch c {
	case models.CategoryCPU:
		return &s.CPU
	case models.CategoryGPU:
		return &s.GPU
	case models.CategoryMotherboard:
		return &s.Motherboard
	case models.CategoryRAM:
		return &s.RAM
	case models.CategoryStorage:
		return &s.Storage
	case models.CategoryPSU:
		return &s.PSU
	case models.CategoryCase:
		return &s.Case
	default:
		return nil
	}
}

// Complete reports whether every category has a part with resolved tags.
func (s *Selection) Complete() bool {
	return s.CPU != nil && s.CPU.Tags.CPU != nil &&
		s.GPU != nil && s.GPU.Tags.GPU != nil &&
		s.Motherboard != nil && s.Motherboard.Tags.Motherboard != nil &&
		s.RAM != nil && s.RAM.Tags.RAM != nil &&
		s.Storage != nil && s.Storage.Tags.Storage != nil &&
		s.PSU != nil && s.PSU.Tags.PSU != nil &&
		s.Case != nil && s.Case.Tags.Case != nil
}

// Parts returns the selected parts in canonical order.
func (s *Selection) Parts() []models.Part {
	out := make([]models.Part, 0, len(models.Categories))
	for _, c := range models.Categories {
		if p := *s.slot(c); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// TotalPrice sums the selected parts' prices.
func (s *Selection) TotalPrice() float64 {
	var total float64
	for _, c := range models.Categories {
		if p := *s.slot(c); p != nil {
			total += p.Price
		}
	}
	return total
}

// CheckCompatibility applies every hardware rule to a complete selection.
// It is pure and fails closed: a missing part is a rejection.
func CheckCompatibility(rules *CompatibilityConfig, s *Selection) Verdict {
	if !s.Complete() {
		return reject(ReasonMissingPart)
	}
	checks := []func() Verdict{
		func() Verdict { return checkSocket(s.CPU, s.Motherboard) },
		func() Verdict { return checkMemory(rules, s.Motherboard, s.RAM) },
		func() Verdict { return checkPower(rules, s.CPU, s.GPU, s.PSU) },
		func() Verdict { return checkFormFactor(rules, s.Motherboard, s.Case) },
		func() Verdict { return checkClearance(s.GPU, s.Case) },
	}
	for _, check := range checks {
		if v := check(); !v.OK() {
			return v
		}
	}
	return pass
}

// CheckMinimumRequirements rejects builds with too little memory or an
// undersized drive. Capacities here are read from part names.
func CheckMinimumRequirements(rules *CompatibilityConfig, s *Selection) Verdict {
	if s.RAM == nil || s.Storage == nil {
		return reject(ReasonMissingPart)
	}
	if v := checkMinimumRAM(rules, s.RAM); !v.OK() {
		return v
	}
	return checkMinimumStorage(rules, s.Storage)
}

// checkSocket requires an exact socket match. Unknown sockets never match.
func checkSocket(cpu, board *models.Part) Verdict {
	cs := cpu.Tags.CPU.Socket
	if cs == "" || cs == models.SocketUnknown || cs != board.Tags.Motherboard.Socket {
		return reject(ReasonSocketMismatch)
	}
	return pass
}

// checkMemory covers memory generation and board capacity.
func checkMemory(rules *CompatibilityConfig, board, ram *models.Part) Verdict {
	mb := board.Tags.Motherboard
	mem := ram.Tags.RAM
	if strings.EqualFold(mem.Type, "DDR5") {
		for _, socket := range rules.DDR4OnlySockets {
			if mb.Socket == socket {
				return reject(ReasonMemoryGeneration)
			}
		}
	}
	if mem.CapacityGB > mb.MaxMemoryGB {
		return reject(ReasonMemoryCapacity)
	}
	return pass
}

// checkPower requires the PSU to cover estimated draw with headroom.
func checkPower(rules *CompatibilityConfig, cpu, gpu, psu *models.Part) Verdict {
	draw := cpu.Tags.CPU.TDP + gpu.Tags.GPU.Power + rules.PowerOverheadWatts
	if float64(psu.Tags.PSU.Wattage) < rules.PowerHeadroom*float64(draw) {
		return reject(ReasonInsufficientPower)
	}
	return pass
}

// checkFormFactor looks the board up in the case-fit matrix. Unlisted board
// form factors are treated as ATX.
func checkFormFactor(rules *CompatibilityConfig, board, chassis *models.Part) Verdict {
	fits, ok := rules.CaseFit[board.Tags.Motherboard.FormFactor]
	if !ok {
		fits = rules.CaseFit[models.DefaultFormFactor]
	}
	caseFF := chassis.Tags.Case.FormFactor
	for _, ff := range fits {
		if ff == caseFF {
			return pass
		}
	}
	return reject(ReasonFormFactor)
}

func checkClearance(gpu, chassis *models.Part) Verdict {
	if gpu.Tags.GPU.LengthMM > chassis.Tags.Case.MaxGPULengthMM {
		return reject(ReasonGPUClearance)
	}
	return pass
}

func checkMinimumRAM(rules *CompatibilityConfig, ram *models.Part) Verdict {
	if models.CapacityGBFromName(ram.Name) < rules.MinRAMGB {
		return reject(ReasonInsufficientRAM)
	}
	return pass
}

func checkMinimumStorage(rules *CompatibilityConfig, storage *models.Part) Verdict {
	name := strings.ToLower(storage.Name)
	for _, marker := range rules.UndersizedStorageMarkers {
		if strings.Contains(name, marker) {
			return reject(ReasonUndersizedStorage)
		}
	}
	return pass
}
