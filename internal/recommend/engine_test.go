// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package recommend

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/buildmyrig/internal/models"
)

func newTestEngine(t *testing.T, accessor CatalogAccessor) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), accessor, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Diversity.ReturnMax = 0
	if _, err := NewEngine(cfg, nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error for invalid config")
	}

	if _, err := NewEngine(nil, nil, zerolog.Nop()); err != nil {
		t.Fatalf("nil config should use defaults, got %v", err)
	}
}

func TestRecommend_ScenarioA_SingleCompatibleBuild(t *testing.T) {
	t.Parallel()

	catalog := scenarioCatalog()
	engine := newTestEngine(t, &mockAccessor{parts: catalog})

	resp, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "gaming"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Builds) != 1 {
		t.Fatalf("expected exactly 1 build, got %d", len(resp.Builds))
	}

	b := resp.Builds[0]
	if len(b.Parts) != len(models.Categories) {
		t.Fatalf("build has %d parts, want 7", len(b.Parts))
	}
	if b.TotalPrice != 700 {
		t.Errorf("TotalPrice = %v, want 700", b.TotalPrice)
	}
	if b.CompatibilityStatus != models.CompatibilityAllClear {
		t.Errorf("CompatibilityStatus = %q", b.CompatibilityStatus)
	}
	sel := SelectionOf(b.Parts)
	if v := CheckCompatibility(&DefaultConfig().Compatibility, &sel); !v.OK() {
		t.Errorf("returned build fails compatibility: %s", v.Reason)
	}

	// Gaming boosts show up in the build, not in the catalog.
	cpu, _ := b.Part(models.CategoryCPU)
	if cpu.PerformanceScore != 93 {
		t.Errorf("boosted CPU score = %d, want 93", cpu.PerformanceScore)
	}
	if catalog[models.CategoryCPU][0].PerformanceScore != 85 {
		t.Error("catalog score was mutated")
	}
	if resp.UseCase != UseCaseGaming {
		t.Errorf("UseCase = %q", resp.UseCase)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("expected generated request id")
	}
}

func TestRecommend_ScenarioB_WeakPSUYieldsNoBuilds(t *testing.T) {
	t.Parallel()

	catalog := replacePart(scenarioCatalog(),
		newPart(6, models.CategoryPSU, "Corsair CV250 250W", 70, 75, "Corsair", "Corsair", models.RawTags{"wattage": 250}))
	engine := newTestEngine(t, &mockAccessor{parts: catalog})

	resp, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "gaming"})
	if err != nil {
		t.Fatalf("no-result must not be an error, got %v", err)
	}
	if !resp.Empty() {
		t.Fatalf("expected no builds, got %d", len(resp.Builds))
	}
	if resp.Stats.Rejections[ReasonInsufficientPower] == 0 {
		t.Error("expected insufficient_power rejection to be counted")
	}
	if m := engine.Metrics(); m.EmptyResults != 1 || m.Errors != 0 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestRecommend_ScenarioC_SocketMismatchExcluded(t *testing.T) {
	t.Parallel()

	catalog := withPart(scenarioCatalog(),
		newPart(8, models.CategoryCPU, "AMD Ryzen 5 7600X", 130, 95, "AMD", "AMD", models.RawTags{"socket": "AM5", "tdp": 105}))
	engine := newTestEngine(t, &mockAccessor{parts: catalog})

	resp, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "gaming"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Builds) == 0 {
		t.Fatal("expected the AM4 build")
	}
	for _, b := range resp.Builds {
		cpu, _ := b.Part(models.CategoryCPU)
		if cpu.Tags.CPU.Socket != "AM4" {
			t.Errorf("build includes %s CPU %q on an AM4 board", cpu.Tags.CPU.Socket, cpu.Name)
		}
	}
}

func TestRecommend_ScenarioD_HardwareBrandPreference(t *testing.T) {
	t.Parallel()

	catalog := scenarioCatalog()
	catalog = withPart(catalog, newPart(8, models.CategoryCPU, "Intel Core i5-12400F", 140, 95, "Intel", "Intel", models.RawTags{"tdp": 65}))
	catalog = withPart(catalog, newPart(9, models.CategoryMotherboard, "MSI PRO B660M-A", 120, 80, "MSI", "MSI",
		models.RawTags{"socket": "LGA1700", "form_factor": "mATX"}))

	engine := newTestEngine(t, &mockAccessor{parts: catalog})

	// Without a preference the Intel build is eligible.
	resp, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "gaming"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	sawIntel := false
	for _, b := range resp.Builds {
		cpu, _ := b.Part(models.CategoryCPU)
		if cpu.HardwareBrand == "Intel" {
			sawIntel = true
		}
	}
	if !sawIntel {
		t.Fatal("expected an Intel build without brand preference")
	}

	resp, err = engine.Recommend(context.Background(), Request{
		Budget:  1000,
		UseCase: "gaming",
		Filters: map[models.Category]models.BrandFilter{
			models.CategoryCPU: models.BrandFilterFor(models.CategoryCPU, "AMD"),
		},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Builds) == 0 {
		t.Fatal("expected AMD builds")
	}
	for _, b := range resp.Builds {
		cpu, _ := b.Part(models.CategoryCPU)
		if cpu.HardwareBrand != "AMD" {
			t.Errorf("build CPU hardware brand = %q, want AMD", cpu.HardwareBrand)
		}
	}
}

func TestRecommend_InvalidRequests(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, &mockAccessor{parts: scenarioCatalog()})

	tests := []struct {
		name string
		req  Request
	}{
		{"zero budget", Request{Budget: 0, UseCase: "gaming"}},
		{"negative budget", Request{Budget: -5, UseCase: "gaming"}},
		{"unknown category filter", Request{Budget: 1000, Filters: map[models.Category]models.BrandFilter{"cooler": {Brand: "Noctua"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Recommend(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestRecommend_CatalogFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	engine := newTestEngine(t, &mockAccessor{err: cause})

	_, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "gaming"})
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("error = %v, want ErrCatalogUnavailable", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error should wrap the cause, got %v", err)
	}
	if engine.Metrics().Errors != 1 {
		t.Errorf("Errors = %d, want 1", engine.Metrics().Errors)
	}

	noCatalog := newTestEngine(t, nil)
	if _, err := noCatalog.Recommend(context.Background(), Request{Budget: 1000}); !errors.Is(err, ErrNoCatalog) {
		t.Errorf("error = %v, want ErrNoCatalog", err)
	}
}

func TestRecommend_PrefersSnapshot(t *testing.T) {
	t.Parallel()

	accessor := &mockSnapshotAccessor{mockAccessor: mockAccessor{parts: scenarioCatalog()}}
	engine := newTestEngine(t, accessor)

	resp, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "general"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !resp.Stats.Snapshot {
		t.Error("expected snapshot read")
	}
	if accessor.snapshotCalls.Load() != 1 {
		t.Errorf("snapshot calls = %d, want 1", accessor.snapshotCalls.Load())
	}

	plain := &mockAccessor{parts: scenarioCatalog()}
	resp, err = newTestEngine(t, plain).Recommend(context.Background(), Request{Budget: 1000, UseCase: "general"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Stats.Snapshot {
		t.Error("plain accessor cannot provide a snapshot")
	}
	if plain.fetchCalls.Load() != int32(len(models.Categories)) {
		t.Errorf("fetch calls = %d, want %d", plain.fetchCalls.Load(), len(models.Categories))
	}
}

func TestRecommend_ResultProperties(t *testing.T) {
	t.Parallel()

	for _, uc := range []string{"gaming", "workstation", "general", "Streaming"} {
		uc := uc
		t.Run(uc, func(t *testing.T) {
			t.Parallel()
			catalog := randomCatalog(2024, 30)
			engine := newTestEngine(t, &mockAccessor{parts: catalog})

			resp, err := engine.Recommend(context.Background(), Request{Budget: 2500, UseCase: uc})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(resp.Builds) > 3 {
				t.Fatalf("returned %d builds, max 3", len(resp.Builds))
			}

			type pair struct{ cpu, gpu int64 }
			seen := make(map[pair]bool)
			for _, b := range resp.Builds {
				if b.TotalPrice > 2500 {
					t.Errorf("build over budget: %v", b.TotalPrice)
				}
				sel := SelectionOf(b.Parts)
				if v := CheckCompatibility(&DefaultConfig().Compatibility, &sel); !v.OK() {
					t.Errorf("incompatible build returned: %s", v.Reason)
				}
				key := pair{sel.CPU.ID, sel.GPU.ID}
				if seen[key] {
					t.Errorf("duplicate cpu/gpu pair %v", key)
				}
				seen[key] = true
			}
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	t.Parallel()

	catalog := randomCatalog(11, 25)
	engine := newTestEngine(t, &mockAccessor{parts: catalog})
	req := Request{Budget: 2200, UseCase: "Gaming"}

	var first []byte
	for i := 0; i < 5; i++ {
		resp, err := engine.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		out, err := json.Marshal(resp.Builds)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if first == nil {
			first = out
			continue
		}
		if !bytes.Equal(first, out) {
			t.Fatalf("run %d output differs from first run", i)
		}
	}
}

func TestRecommend_ConcurrentRequestsDoNotInterfere(t *testing.T) {
	t.Parallel()

	catalog := scenarioCatalog()
	engine := newTestEngine(t, &mockAccessor{parts: catalog})

	var wg sync.WaitGroup
	scores := make([]int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := engine.Recommend(context.Background(), Request{Budget: 1000, UseCase: "gaming"})
			if err != nil || len(resp.Builds) != 1 {
				return
			}
			cpu, _ := resp.Builds[0].Part(models.CategoryCPU)
			scores[i] = cpu.PerformanceScore
		}(i)
	}
	wg.Wait()

	for i, s := range scores {
		if s != 93 {
			t.Errorf("request %d saw CPU score %d, want 93", i, s)
		}
	}
	if catalog[models.CategoryCPU][0].PerformanceScore != 85 {
		t.Error("shared catalog mutated by concurrent requests")
	}
}

func TestRecommendFromCatalog(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	resp, err := engine.RecommendFromCatalog(scenarioCatalog(), Request{Budget: 1000, UseCase: "workstation"})
	if err != nil {
		t.Fatalf("RecommendFromCatalog() error = %v", err)
	}
	if len(resp.Builds) != 1 {
		t.Fatalf("expected 1 build, got %d", len(resp.Builds))
	}
	if _, err := engine.RecommendFromCatalog(scenarioCatalog(), Request{Budget: -1}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}
