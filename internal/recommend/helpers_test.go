// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/tomtom215/buildmyrig/internal/models"
)

func newPart(id int64, cat models.Category, name string, price float64, score int, brand, hw string, raw models.RawTags) models.Part {
	return models.NewPart(id, name, cat, price, score, brand, hw, raw)
}

// scenarioCatalog is a single fully compatible AM4 build totalling $700.
func scenarioCatalog() Catalog {
	return Catalog{
		models.CategoryCPU: {
			newPart(1, models.CategoryCPU, "AMD Ryzen 5 5600X", 140, 85, "AMD", "AMD", models.RawTags{"socket": "AM4", "tdp": 65}),
		},
		models.CategoryGPU: {
			newPart(2, models.CategoryGPU, "AMD Radeon RX 6600", 150, 75, "AMD", "AMD", models.RawTags{"power": 150, "length": 280}),
		},
		models.CategoryMotherboard: {
			newPart(3, models.CategoryMotherboard, "MSI B550 TOMAHAWK", 120, 80, "MSI", "MSI",
				models.RawTags{"socket": "AM4", "form_factor": "ATX", "max_memory": 128}),
		},
		models.CategoryRAM: {
			newPart(4, models.CategoryRAM, "Corsair Vengeance LPX 16GB DDR4-3200", 60, 70, "Corsair", "Corsair",
				models.RawTags{"type": "DDR4", "capacity": "16GB", "speed": 3200}),
		},
		models.CategoryStorage: {
			newPart(5, models.CategoryStorage, "Samsung 980 1TB NVMe SSD", 80, 85, "Samsung", "Samsung",
				models.RawTags{"type": "NVMe", "capacity": "1TB"}),
		},
		models.CategoryPSU: {
			newPart(6, models.CategoryPSU, "Corsair CV650 650W", 70, 75, "Corsair", "Corsair", models.RawTags{"wattage": 650}),
		},
		models.CategoryCase: {
			newPart(7, models.CategoryCase, "NZXT H510", 80, 75, "NZXT", "NZXT",
				models.RawTags{"form_factor": "ATX", "max_gpu_length": 350}),
		},
	}
}

// withPart returns a copy of c with p appended to its category.
//
//nolint:gocritic // hugeParam: test helper
func withPart(c Catalog, p models.Part) Catalog {
	out := make(Catalog, len(c))
	for cat, parts := range c {
		out[cat] = append([]models.Part(nil), parts...)
	}
	out[p.Category] = append(out[p.Category], p)
	return out
}

// replacePart returns a copy of c with p as the only part of its category.
//
//nolint:gocritic // hugeParam: test helper
func replacePart(c Catalog, p models.Part) Catalog {
	out := make(Catalog, len(c))
	for cat, parts := range c {
		out[cat] = append([]models.Part(nil), parts...)
	}
	out[p.Category] = []models.Part{p}
	return out
}

// randomCatalog builds a synthetic catalog with integer prices so totals are
// exact. The mix of sockets, memory types and sizes exercises every rule.
func randomCatalog(seed uint64, perCategory int) Catalog {
	f := gofakeit.New(seed)
	sockets := []string{"AM4", "AM5", "LGA1700", "LGA1200"}
	boardFF := []string{"ATX", "mATX", "Mini-ITX"}
	caseFF := []string{"ATX", "mATX", "Mini-ITX", "Mid Tower", "Mini Tower", "Desktop"}
	ramTypes := []string{"DDR4", "DDR5"}
	ramSizes := []int{4, 8, 16, 32, 64}
	driveSizes := []string{"128GB", "500GB", "1TB", "2TB"}

	c := make(Catalog, len(models.Categories))
	var id int64
	next := func() int64 { id++; return id }
	price := func(lo, hi int) float64 { return float64(f.Number(lo, hi)) }

	for i := 0; i < perCategory; i++ {
		c[models.CategoryCPU] = append(c[models.CategoryCPU], newPart(next(), models.CategoryCPU,
			fmt.Sprintf("CPU %d", i), price(80, 500), f.Number(50, 120), "AMD", "AMD",
			models.RawTags{"socket": f.RandomString(sockets), "tdp": f.Number(35, 170)}))
		c[models.CategoryGPU] = append(c[models.CategoryGPU], newPart(next(), models.CategoryGPU,
			fmt.Sprintf("GPU %d", i), price(150, 900), f.Number(50, 160), "NVIDIA", "NVIDIA",
			models.RawTags{"power": f.Number(75, 450), "length": f.Number(170, 360)}))
		size := ramSizes[f.Number(0, len(ramSizes)-1)]
		c[models.CategoryRAM] = append(c[models.CategoryRAM], newPart(next(), models.CategoryRAM,
			fmt.Sprintf("Kit %dGB", size), price(30, 250), f.Number(60, 100), "Corsair", "Corsair",
			models.RawTags{"type": f.RandomString(ramTypes), "capacity": fmt.Sprintf("%dGB", size)}))
		c[models.CategoryMotherboard] = append(c[models.CategoryMotherboard], newPart(next(), models.CategoryMotherboard,
			fmt.Sprintf("Board %d", i), price(80, 350), f.Number(60, 100), "MSI", "MSI",
			models.RawTags{"socket": f.RandomString(sockets), "form_factor": f.RandomString(boardFF), "max_memory": f.Number(32, 192)}))
		c[models.CategoryStorage] = append(c[models.CategoryStorage], newPart(next(), models.CategoryStorage,
			fmt.Sprintf("Drive %s", f.RandomString(driveSizes)), price(30, 250), f.Number(50, 100), "Samsung", "Samsung",
			models.RawTags{"type": "NVMe"}))
		c[models.CategoryPSU] = append(c[models.CategoryPSU], newPart(next(), models.CategoryPSU,
			fmt.Sprintf("PSU %d", i), price(40, 250), f.Number(60, 100), "Seasonic", "Seasonic",
			models.RawTags{"wattage": f.Number(3, 12) * 100}))
		c[models.CategoryCase] = append(c[models.CategoryCase], newPart(next(), models.CategoryCase,
			fmt.Sprintf("Case %d", i), price(40, 200), f.Number(50, 100), "NZXT", "NZXT",
			models.RawTags{"form_factor": f.RandomString(caseFF), "max_gpu_length": f.Number(200, 420)}))
	}
	return c
}

// mockAccessor serves a fixed catalog through CatalogAccessor.
type mockAccessor struct {
	parts      Catalog
	err        error
	fetchCalls atomic.Int32
}

func (m *mockAccessor) Fetch(_ context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	m.fetchCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Part
	for _, p := range m.parts[category] {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// mockSnapshotAccessor additionally serves consistent snapshots.
type mockSnapshotAccessor struct {
	mockAccessor
	snapshotCalls atomic.Int32
}

func (m *mockSnapshotAccessor) Snapshot(ctx context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error) {
	m.snapshotCalls.Add(1)
	out := make(map[models.Category][]models.Part, len(models.Categories))
	for _, cat := range models.Categories {
		parts, err := m.mockAccessor.Fetch(ctx, cat, filters[cat])
		if err != nil {
			return nil, err
		}
		out[cat] = parts
	}
	return out, nil
}
