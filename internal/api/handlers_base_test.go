// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/ingest"
	"github.com/tomtom215/buildmyrig/internal/models"
	"github.com/tomtom215/buildmyrig/internal/recommend"
)

// scenarioParts is a single fully compatible AM4 build totalling $700.
func scenarioParts() []models.Part {
	return []models.Part{
		models.NewPart(0, "AMD Ryzen 5 5600X", models.CategoryCPU, 140, 85, "AMD", "AMD",
			models.RawTags{"socket": "AM4", "tdp": 65}),
		models.NewPart(0, "AMD Radeon RX 6600", models.CategoryGPU, 150, 75, "AMD", "AMD",
			models.RawTags{"power": 150, "length": 280}),
		models.NewPart(0, "MSI B550 TOMAHAWK", models.CategoryMotherboard, 120, 80, "MSI", "MSI",
			models.RawTags{"socket": "AM4", "form_factor": "ATX", "max_memory": 128}),
		models.NewPart(0, "Corsair Vengeance LPX 16GB DDR4-3200", models.CategoryRAM, 60, 70, "Corsair", "Corsair",
			models.RawTags{"type": "DDR4", "capacity": "16GB", "speed": 3200}),
		models.NewPart(0, "Samsung 980 1TB NVMe SSD", models.CategoryStorage, 80, 85, "Samsung", "Samsung",
			models.RawTags{"type": "NVMe", "capacity": "1TB"}),
		models.NewPart(0, "Corsair CV650 650W", models.CategoryPSU, 70, 75, "Corsair", "Corsair",
			models.RawTags{"wattage": 650}),
		models.NewPart(0, "NZXT H510", models.CategoryCase, 80, 75, "NZXT", "NZXT",
			models.RawTags{"form_factor": "ATX", "max_gpu_length": 350}),
	}
}

// newScenarioStore returns an in-memory catalog holding scenarioParts.
func newScenarioStore(t *testing.T) *catalog.MemoryStore {
	t.Helper()
	store := catalog.NewMemoryStoreWith(scenarioParts())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// newEngine creates a default engine reading from accessor.
func newEngine(t *testing.T, accessor recommend.CatalogAccessor) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), accessor, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestRouter wires a handler into the full Chi stack with rate limiting off.
func newTestRouter(h *Handler) http.Handler {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(h, NewChiMiddleware(cfg)).SetupChi()
}

// scenarioRouter serves the scenario catalog through the real engine.
func scenarioRouter(t *testing.T) http.Handler {
	t.Helper()
	store := newScenarioStore(t)
	return newTestRouter(NewHandler(store, newEngine(t, store), nil))
}

func doRequest(h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// envelope is APIResponse with the payload left raw for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, string(env.Data))
	}
}

// expectError asserts status and error code.
func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("Success = true on an error response")
	}
	if env.Error == nil {
		t.Fatal("Error is nil")
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q (message %q)", env.Error.Code, code, env.Error.Message)
	}
	return env
}

// mockRecommender returns a fixed response or error.
type mockRecommender struct {
	resp    *recommend.Response
	err     error
	lastReq recommend.Request
	calls   int
}

func (m *mockRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockReader is a PartReader whose reads all fail with err.
type mockReader struct {
	err   error
	stats *models.CatalogStats
}

func (m *mockReader) All(context.Context) ([]models.Part, error) { return nil, m.err }

func (m *mockReader) List(context.Context, models.PartQuery) ([]models.Part, int, error) {
	return nil, 0, m.err
}

func (m *mockReader) Count(context.Context) (int, error) { return 0, m.err }

func (m *mockReader) Stats(context.Context) (*models.CatalogStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func (m *mockReader) Ping(context.Context) error { return m.err }

type mockBreaker struct{ state string }

func (m mockBreaker) State() string { return m.state }

type mockImportStatus struct {
	report  *ingest.Report
	running bool
}

func (m mockImportStatus) LastReport() *ingest.Report { return m.report }

func (m mockImportStatus) IsRunning() bool { return m.running }
