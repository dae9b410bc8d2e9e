// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/models"
)

// gpuStore holds n synthetic GPUs with distinct names and scores.
func gpuStore(t *testing.T, n int) *catalog.MemoryStore {
	t.Helper()
	f := gofakeit.New(42)
	parts := make([]models.Part, 0, n)
	for i := 0; i < n; i++ {
		vendor := "NVIDIA"
		if i%2 == 1 {
			vendor = "AMD"
		}
		parts = append(parts, models.NewPart(0, fmt.Sprintf("%s GPU %03d", vendor, i), models.CategoryGPU,
			float64(f.Number(150, 1200)), 50+i, f.RandomString([]string{"ASUS", "MSI", "Gigabyte"}), vendor,
			models.RawTags{"power": 200, "length": 300}))
	}
	store := catalog.NewMemoryStoreWith(parts)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestParts_All(t *testing.T) {
	router := scenarioRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/parts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	env := decodeEnvelope(t, w)

	var parts []models.Part
	decodeData(t, env, &parts)
	if len(parts) != 7 {
		t.Fatalf("parts = %d, want 7", len(parts))
	}
	if parts[0].Category != models.CategoryCPU || parts[len(parts)-1].Category != models.CategoryCase {
		t.Errorf("parts not in category order: first %s, last %s", parts[0].Category, parts[len(parts)-1].Category)
	}
	if env.Meta == nil || env.Meta.Pagination == nil || env.Meta.Pagination.Total != 7 {
		t.Errorf("pagination = %+v", env.Meta)
	}
	if parts[0].Tags.CPU == nil || parts[0].Tags.CPU.Socket != "AM4" {
		t.Errorf("cpu tags = %+v, want socket AM4 after round trip", parts[0].Tags.CPU)
	}
}

func TestPartsByCategory(t *testing.T) {
	store := gpuStore(t, 30)
	router := newTestRouter(NewHandler(store, newEngine(t, store), nil))

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantTotal int
		wantMore  bool
		wantLimit int
	}{
		{"default page", "", 30, 30, false, models.DefaultListLimit},
		{"limited", "?limit=10", 10, 30, true, 10},
		{"offset", "?limit=10&offset=25", 5, 30, false, 10},
		{"limit capped", "?limit=500", 30, 30, false, models.MaxListLimit},
		{"hardware brand filter", "?brand=AMD", 15, 15, false, models.DefaultListLimit},
		{"category case insensitive", "", 30, 30, false, models.DefaultListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := "gpu"
			if tt.name == "category case insensitive" {
				category = "GPU"
			}
			w := doRequest(router, http.MethodGet, "/api/v1/parts/"+category+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
			}
			env := decodeEnvelope(t, w)
			var parts []models.Part
			decodeData(t, env, &parts)

			p := env.Meta.Pagination
			if len(parts) != tt.wantCount || p.Count != tt.wantCount {
				t.Errorf("count = %d (meta %d), want %d", len(parts), p.Count, tt.wantCount)
			}
			if p.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", p.Total, tt.wantTotal)
			}
			if p.HasMore != tt.wantMore {
				t.Errorf("has_more = %v, want %v", p.HasMore, tt.wantMore)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", p.Limit, tt.wantLimit)
			}
		})
	}
}

func TestPartsByCategory_Sorting(t *testing.T) {
	store := gpuStore(t, 12)
	router := newTestRouter(NewHandler(store, newEngine(t, store), nil))

	w := doRequest(router, http.MethodGet, "/api/v1/parts/gpu?sort_by=price&sort_order=asc", nil)
	var parts []models.Part
	decodeData(t, decodeEnvelope(t, w), &parts)
	for i := 1; i < len(parts); i++ {
		if parts[i].Price < parts[i-1].Price {
			t.Fatalf("not sorted by price asc at %d: %v < %v", i, parts[i].Price, parts[i-1].Price)
		}
	}

	w = doRequest(router, http.MethodGet, "/api/v1/parts/gpu", nil)
	decodeData(t, decodeEnvelope(t, w), &parts)
	for i := 1; i < len(parts); i++ {
		if parts[i].PerformanceScore > parts[i-1].PerformanceScore {
			t.Fatalf("default order should be performance desc at %d", i)
		}
	}
}

func TestPartsByCategory_Errors(t *testing.T) {
	router := scenarioRouter(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"unknown category", "/api/v1/parts/cooler", http.StatusBadRequest, ErrCodeInvalidCategory},
		{"non-integer limit", "/api/v1/parts/cpu?limit=ten", http.StatusBadRequest, ErrCodeValidationFailed},
		{"non-integer offset", "/api/v1/parts/cpu?offset=1.5", http.StatusBadRequest, ErrCodeValidationFailed},
		{"negative limit", "/api/v1/parts/cpu?limit=-1", http.StatusBadRequest, ErrCodeValidationFailed},
		{"negative offset", "/api/v1/parts/cpu?offset=-5", http.StatusBadRequest, ErrCodeValidationFailed},
		{"brand without parts", "/api/v1/parts/cpu?brand=Intel", http.StatusNotFound, ErrCodeNotFound},
		{"offset past end", "/api/v1/parts/cpu?offset=10", http.StatusNotFound, ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)
			expectError(t, w, tt.status, tt.code)
		})
	}
}

func TestPartsByCategory_Messages(t *testing.T) {
	router := scenarioRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/parts/cooler", nil)
	env := expectError(t, w, http.StatusBadRequest, ErrCodeInvalidCategory)
	want := "Invalid category. Must be one of: cpu, gpu, motherboard, ram, storage, psu, case"
	if env.Error.Message != want {
		t.Errorf("message = %q, want %q", env.Error.Message, want)
	}

	w = doRequest(router, http.MethodGet, "/api/v1/parts/psu?brand=Seasonic", nil)
	env = expectError(t, w, http.StatusNotFound, ErrCodeNotFound)
	if env.Error.Message != "No parts found for category 'psu' with brand 'Seasonic'" {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestParts_CatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"circuit open", catalog.ErrCircuitOpen, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"closed", fmt.Errorf("list: %w", catalog.ErrStoreClosed), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"query failure", errors.New("Binder Error: column not found"), http.StatusInternalServerError, ErrCodeCatalogError},
	}

	paths := []string{"/api/v1/parts", "/api/v1/parts/cpu", "/api/v1/stats"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewHandler(&mockReader{err: tt.err}, &mockRecommender{}, nil))
			for _, path := range paths {
				w := doRequest(router, http.MethodGet, path, nil)
				env := expectError(t, w, tt.status, tt.code)
				if strings.Contains(env.Error.Message, "Binder") {
					t.Errorf("%s: internal error text leaked: %q", path, env.Error.Message)
				}
			}
		})
	}
}

func TestStats(t *testing.T) {
	router := scenarioRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var stats models.CatalogStats
	decodeData(t, decodeEnvelope(t, w), &stats)

	if stats.TotalParts != 7 {
		t.Errorf("TotalParts = %d, want 7", stats.TotalParts)
	}
	if stats.Categories[models.CategoryGPU] != 1 {
		t.Errorf("gpu count = %d, want 1", stats.Categories[models.CategoryGPU])
	}
	if stats.Brands["Corsair"] != 2 {
		t.Errorf("Corsair count = %d, want 2", stats.Brands["Corsair"])
	}
}

func TestStats_EmptyCatalog(t *testing.T) {
	store := catalog.NewMemoryStore()
	router := newTestRouter(NewHandler(store, newEngine(t, store), nil))

	w := doRequest(router, http.MethodGet, "/api/v1/stats", nil)
	expectError(t, w, http.StatusNotFound, ErrCodeCatalogEmpty)
}
