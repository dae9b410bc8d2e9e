// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/buildmyrig/internal/middleware"
)

func TestRouter_NotFoundAndMethod(t *testing.T) {
	router := scenarioRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown api route", http.MethodGet, "/api/v1/builds", http.StatusNotFound, ErrCodeNotFound},
		{"unknown root route", http.MethodGet, "/nope", http.StatusNotFound, ErrCodeNotFound},
		{"get on recommend", http.MethodGet, "/api/v1/recommend", http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"post on parts", http.MethodPost, "/api/v1/parts", http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			if tt.method == http.MethodPost {
				body = []byte(`{}`)
			}
			w := doRequest(router, tt.method, tt.path, body)
			expectError(t, w, tt.status, tt.code)
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	router := scenarioRouter(t)

	t.Run("generated", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/health/live", nil)
		id := w.Header().Get(middleware.RequestIDHeader)
		if id == "" {
			t.Fatal("X-Request-ID not set")
		}
		if env := decodeEnvelope(t, w); env.Meta.RequestID != id {
			t.Errorf("meta request_id = %q, header %q", env.Meta.RequestID, id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != "upstream-42" {
			t.Errorf("X-Request-ID = %q, want upstream-42", got)
		}
	})
}

func TestRouter_SecurityHeadersOnAPI(t *testing.T) {
	router := scenarioRouter(t)

	for _, path := range []string{"/api/v1/parts", "/api/v1/health"} {
		w := doRequest(router, http.MethodGet, path, nil)
		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Errorf("%s: missing security headers", path)
		}
	}
}

func TestRouter_Metrics(t *testing.T) {
	router := scenarioRouter(t)

	// Generate one labelled API request first
	doRequest(router, http.MethodGet, "/api/v1/parts/cpu", nil)

	w := doRequest(router, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "api_requests_total") {
		t.Error("api_requests_total missing from /metrics")
	}
	if !strings.Contains(body, `endpoint="/api/v1/parts/{category}"`) {
		t.Error("request should be labelled with its route pattern")
	}
}

func TestRouter_RecommendRateLimit(t *testing.T) {
	store := newScenarioStore(t)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RecommendRateLimitRequests = 1
	router := NewRouter(NewHandler(store, newEngine(t, store), nil), NewChiMiddleware(cfg)).SetupChi()

	body := []byte(`{"budget": 1000, "use_case": "gaming"}`)
	if w := doRequest(router, http.MethodPost, recommendPath, body); w.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", w.Code)
	}
	w := doRequest(router, http.MethodPost, recommendPath, body)
	expectError(t, w, http.StatusTooManyRequests, ErrCodeTooManyRequests)

	// Browsing keeps working under the general limit
	if w := doRequest(router, http.MethodGet, "/api/v1/parts", nil); w.Code != http.StatusOK {
		t.Errorf("parts after recommend limit = %d, want 200", w.Code)
	}
}
