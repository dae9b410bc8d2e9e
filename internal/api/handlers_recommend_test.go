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

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

const recommendPath = "/api/v1/recommend"

func TestRecommend_Success(t *testing.T) {
	router := scenarioRouter(t)
	before := testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues("gaming", metrics.ResultOK))

	w := doRequest(router, http.MethodPost, recommendPath, []byte(`{"budget": 1000, "use_case": "gaming"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatal("Success = false")
	}
	var resp RecommendResponse
	decodeData(t, env, &resp)

	if len(resp.Builds) != 1 {
		t.Fatalf("builds = %d, want 1", len(resp.Builds))
	}
	build := resp.Builds[0]
	if build.TotalPrice != 700 {
		t.Errorf("TotalPrice = %v, want 700", build.TotalPrice)
	}
	if len(build.Parts) != len(models.Categories) {
		t.Errorf("parts = %d, want %d", len(build.Parts), len(models.Categories))
	}
	if build.CompatibilityStatus != models.CompatibilityAllClear {
		t.Errorf("CompatibilityStatus = %q", build.CompatibilityStatus)
	}
	if resp.Message != "Found 1 optimized build(s) for your gaming setup" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.RequestSummary.Budget != 1000 || resp.RequestSummary.UseCase != "gaming" {
		t.Errorf("RequestSummary = %+v", resp.RequestSummary)
	}
	if resp.RequestSummary.BrandPreferences == nil {
		t.Error("BrandPreferences should echo as an empty object")
	}
	if resp.Stats == nil || resp.Stats.ValidBuilds != 1 {
		t.Errorf("Stats = %+v", resp.Stats)
	}

	after := testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues("gaming", metrics.ResultOK))
	if after-before != 1 {
		t.Errorf("ok counter delta = %v, want 1", after-before)
	}
}

func TestRecommend_NoBuilds(t *testing.T) {
	router := scenarioRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"budget below cheapest build", `{"budget": 100, "use_case": "gaming"}`},
		{"cpu vendor not in catalog", `{"budget": 1000, "use_case": "gaming", "brand_preferences": {"cpu": "Intel"}}`},
		{"case brand not in catalog", `{"budget": 1000, "use_case": "general", "brand_preferences": {"case": "Fractal"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, recommendPath, []byte(tt.body))
			env := expectError(t, w, http.StatusNotFound, ErrCodeNoBuildsFound)
			if env.Error.Message != noBuildsMessage {
				t.Errorf("message = %q", env.Error.Message)
			}
			details, ok := env.Error.Details.(map[string]interface{})
			if !ok {
				t.Fatalf("details = %T, want object", env.Error.Details)
			}
			if details["valid_builds"] != float64(0) {
				t.Errorf("valid_builds = %v, want 0", details["valid_builds"])
			}
		})
	}
}

func TestRecommend_BrandPreferenceTranslated(t *testing.T) {
	mock := &mockRecommender{resp: &recommend.Response{}}
	router := newTestRouter(NewHandler(newScenarioStore(t), mock, nil))

	body := `{"budget": 1500, "use_case": "Workstation", "brand_preferences": {"cpu": "AMD", "CASE": "NZXT", "gpu": ""}}`
	doRequest(router, http.MethodPost, recommendPath, []byte(body))

	if mock.calls != 1 {
		t.Fatalf("engine calls = %d, want 1", mock.calls)
	}
	req := mock.lastReq
	if req.Budget != 1500 || req.UseCase != "Workstation" {
		t.Errorf("request = %+v", req)
	}
	if req.RequestID == "" {
		t.Error("RequestID should carry the HTTP request ID")
	}

	cpu := req.Filters[models.CategoryCPU]
	if cpu.HardwareBrand != "AMD" || cpu.Brand != models.BrandAny {
		t.Errorf("cpu filter = %+v, want hardware brand AMD", cpu)
	}
	caseFilter := req.Filters[models.CategoryCase]
	if caseFilter.Brand != "NZXT" || caseFilter.HardwareBrand != models.BrandAny {
		t.Errorf("case filter = %+v, want brand NZXT", caseFilter)
	}
	if _, ok := req.Filters[models.CategoryGPU]; ok {
		t.Error("blank preference should not produce a filter")
	}
}

func TestRecommend_InvalidInput(t *testing.T) {
	mock := &mockRecommender{resp: &recommend.Response{}}
	router := newTestRouter(NewHandler(newScenarioStore(t), mock, nil))

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"budget": `, ErrCodeBadRequest},
		{"wrong type", `{"budget": "lots", "use_case": "gaming"}`, ErrCodeBadRequest},
		{"missing budget", `{"use_case": "gaming"}`, ErrCodeValidationFailed},
		{"zero budget", `{"budget": 0, "use_case": "gaming"}`, ErrCodeValidationFailed},
		{"negative budget", `{"budget": -50, "use_case": "gaming"}`, ErrCodeValidationFailed},
		{"budget too large", `{"budget": 5000000, "use_case": "gaming"}`, ErrCodeValidationFailed},
		{"missing use case", `{"budget": 1000}`, ErrCodeValidationFailed},
		{"unknown category preference", `{"budget": 1000, "use_case": "gaming", "brand_preferences": {"cooler": "Noctua"}}`, ErrCodeValidationFailed},
		{"oversized body", `{"budget": 1000, "use_case": "` + strings.Repeat("x", maxRequestBodyBytes) + `"}`, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, recommendPath, []byte(tt.body))
			expectError(t, w, http.StatusBadRequest, tt.code)
		})
	}

	if mock.calls != 0 {
		t.Errorf("engine called %d times for invalid input", mock.calls)
	}
}

func TestRecommend_ValidationDetailsNameField(t *testing.T) {
	router := scenarioRouter(t)

	w := doRequest(router, http.MethodPost, recommendPath, []byte(`{"budget": -1, "use_case": "gaming"}`))
	env := expectError(t, w, http.StatusBadRequest, ErrCodeValidationFailed)

	details, ok := env.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details = %T, want object", env.Error.Details)
	}
	if details["field"] != "budget" {
		t.Errorf("field = %v, want budget", details["field"])
	}
}

func TestRecommend_EngineErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "circuit open",
			err:    fmt.Errorf("%w: %w", recommend.ErrCatalogUnavailable, catalog.ErrCircuitOpen),
			status: http.StatusServiceUnavailable,
			code:   ErrCodeServiceUnavailable,
		},
		{
			name:   "store closed",
			err:    fmt.Errorf("%w: %w", recommend.ErrCatalogUnavailable, catalog.ErrStoreClosed),
			status: http.StatusServiceUnavailable,
			code:   ErrCodeServiceUnavailable,
		},
		{
			name:   "catalog failure",
			err:    fmt.Errorf("%w: %w", recommend.ErrCatalogUnavailable, errors.New("disk I/O error")),
			status: http.StatusInternalServerError,
			code:   ErrCodeCatalogError,
		},
		{
			name:   "rejected by engine",
			err:    fmt.Errorf("%w: budget must be positive", recommend.ErrInvalidRequest),
			status: http.StatusBadRequest,
			code:   ErrCodeValidationFailed,
		},
		{
			name:   "unexpected",
			err:    recommend.ErrNoCatalog,
			status: http.StatusInternalServerError,
			code:   ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(NewHandler(newScenarioStore(t), &mockRecommender{err: tt.err}, nil))
			w := doRequest(router, http.MethodPost, recommendPath, []byte(`{"budget": 1000, "use_case": "gaming"}`))
			env := expectError(t, w, tt.status, tt.code)
			if env.Error.RequestID == "" {
				t.Error("error response should carry the request ID")
			}
		})
	}
}

func TestRecommend_UnknownUseCaseAccepted(t *testing.T) {
	router := scenarioRouter(t)
	before := testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues("other", metrics.ResultOK))

	w := doRequest(router, http.MethodPost, recommendPath, []byte(`{"budget": 1000, "use_case": "streaming"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	after := testutil.ToFloat64(metrics.RecommendRequests.WithLabelValues("other", metrics.ResultOK))
	if after-before != 1 {
		t.Errorf("other counter delta = %v, want 1", after-before)
	}
}
