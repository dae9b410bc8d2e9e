// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package models

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Category identifies one of the seven component slots of a build.
type Category string

// Component categories. The set is closed; a build has exactly one part of each.
const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCase        Category = "case"
)

// Categories lists every category in canonical build order.
var Categories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryMotherboard,
	CategoryRAM,
	CategoryStorage,
	CategoryPSU,
	CategoryCase,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory normalizes s and validates it against the category set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// CategoryNames returns the category names in canonical order.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

// Part is a single catalog entry. Tags are resolved when the part is loaded
// so downstream code never deals with missing attributes.
type Part struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Category         Category          `json:"category"`
	Price            float64           `json:"price"`
	PerformanceScore int               `json:"performance_score"`
	Tags             Tags              `json:"compatibility_tags"`
	Brand            string            `json:"brand"`
	HardwareBrand    string            `json:"hardware_brand"`
	Specifications   map[string]string `json:"specifications,omitempty"`
}

// partJSON mirrors Part with raw tags so decoding can resolve defaults.
type partJSON struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Category         Category          `json:"category"`
	Price            float64           `json:"price"`
	PerformanceScore int               `json:"performance_score"`
	Tags             RawTags           `json:"compatibility_tags"`
	Brand            string            `json:"brand"`
	HardwareBrand    string            `json:"hardware_brand"`
	Specifications   map[string]string `json:"specifications,omitempty"`
}

// MarshalJSON encodes the resolved tags as a flat attribute object.
//
//nolint:gocritic // hugeParam: value receiver keeps Part usable as a map value
func (p Part) MarshalJSON() ([]byte, error) {
	return json.Marshal(partJSON{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Price:            p.Price,
		PerformanceScore: p.PerformanceScore,
		Tags:             p.Tags.Raw(),
		Brand:            p.Brand,
		HardwareBrand:    p.HardwareBrand,
		Specifications:   p.Specifications,
	})
}

// UnmarshalJSON decodes a part and resolves its tags for the part's category.
func (p *Part) UnmarshalJSON(data []byte) error {
	var raw partJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Part{
		ID:               raw.ID,
		Name:             raw.Name,
		Category:         Category(strings.ToLower(string(raw.Category))),
		Price:            raw.Price,
		PerformanceScore: raw.PerformanceScore,
		Brand:            raw.Brand,
		HardwareBrand:    raw.HardwareBrand,
		Specifications:   raw.Specifications,
	}
	p.Tags = ResolveTags(p.Category, p.Name, raw.Tags)
	return nil
}

// NewPart builds a part and resolves its tags in one step.
// Catalog backends use it so that every loaded part has defaults applied.
func NewPart(id int64, name string, category Category, price float64, score int, brand, hardwareBrand string, raw RawTags) Part {
	return Part{
		ID:               id,
		Name:             name,
		Category:         category,
		Price:            price,
		PerformanceScore: score,
		Tags:             ResolveTags(category, name, raw),
		Brand:            brand,
		HardwareBrand:    hardwareBrand,
	}
}

// Clone returns a copy of p that shares no mutable state with it.
//
//nolint:gocritic // hugeParam: value receiver so callers can clone from map values
func (p Part) Clone() Part {
	out := p
	out.Tags = p.Tags.Clone()
	if p.Specifications != nil {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

// ValuePerDollar returns performance per unit price, or 0 for unpriced parts.
//
//nolint:gocritic // hugeParam: called on slice elements by value in sort closures
func (p Part) ValuePerDollar() float64 {
	if p.Price <= 0 {
		return 0
	}
	return float64(p.PerformanceScore) / p.Price
}
