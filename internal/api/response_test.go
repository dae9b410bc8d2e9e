// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/database"
	"github.com/tomtom215/buildmyrig/internal/logging"
)

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	data := map[string]string{"message": "hello"}
	NewResponseWriter(w, r).Success(data)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !response.Success {
		t.Error("Expected Success to be true")
	}
	if response.Error != nil {
		t.Error("Expected Error to be nil")
	}
	if response.Meta == nil {
		t.Fatal("Expected Meta to not be nil")
	}
	if response.Meta.Timestamp.IsZero() {
		t.Error("Expected Timestamp to be set")
	}
}

func TestResponseWriter_SuccessWithPagination(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	data := []string{"item1", "item2"}
	pagination := &PaginationMeta{
		Total:   100,
		Count:   2,
		Offset:  10,
		Limit:   2,
		HasMore: true,
	}
	NewResponseWriter(w, r).SuccessWithPagination(data, pagination)

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Meta == nil || response.Meta.Pagination == nil {
		t.Fatal("Expected Pagination to not be nil")
	}
	if response.Meta.Pagination.Total != 100 {
		t.Errorf("Expected Total 100, got %d", response.Meta.Pagination.Total)
	}
	if !response.Meta.Pagination.HasMore {
		t.Error("Expected HasMore to be true")
	}
}

func TestResponseWriter_ErrorIncludesRequestID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	r = r.WithContext(logging.ContextWithRequestID(r.Context(), "req-123"))

	NewResponseWriter(w, r).ErrorWithDetails(http.StatusBadRequest, ErrCodeBadRequest, "bad", map[string]string{"field": "x"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Success {
		t.Error("Expected Success to be false")
	}
	if response.Data != nil {
		t.Error("Expected Data to be nil")
	}
	if response.Error == nil {
		t.Fatal("Expected Error to not be nil")
	}
	if response.Error.RequestID != "req-123" || response.Meta.RequestID != "req-123" {
		t.Errorf("request id = %q / %q, want req-123", response.Error.RequestID, response.Meta.RequestID)
	}
	if response.Error.Details == nil {
		t.Error("Expected Details to be set")
	}
}

func TestResponseWriter_ErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		write  func(rw *ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("x") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("x") }, http.StatusNotFound, ErrCodeNotFound},
		{"too many", func(rw *ResponseWriter) { rw.TooManyRequests("x") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("x") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("x") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("x", nil) }, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.write(NewResponseWriter(w, r))
			expectError(t, w, tt.status, tt.code)
		})
	}
}

func TestResponseWriter_SuccessStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	NewResponseWriter(w, r).successStatus(http.StatusServiceUnavailable, map[string]bool{"ready": false}, nil)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("Success should be false for a 503 body")
	}
	if len(env.Data) == 0 {
		t.Error("Data should still be written")
	}
}

func TestCatalogErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"circuit open", catalog.ErrCircuitOpen, http.StatusServiceUnavailable},
		{"wrapped circuit open", fmt.Errorf("snapshot: %w", catalog.ErrCircuitOpen), http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"store closed", catalog.ErrStoreClosed, http.StatusServiceUnavailable},
		{"database closed", fmt.Errorf("query: %w", database.ErrDatabaseClosed), http.StatusServiceUnavailable},
		{"canceled", context.Canceled, http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := catalogErrorStatus(tt.err); got != tt.want {
				t.Errorf("catalogErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWriteHelpers(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	WriteSuccess(w, r, "ok")
	if w.Code != http.StatusOK {
		t.Errorf("WriteSuccess status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "missing")
	expectError(t, w, http.StatusNotFound, ErrCodeNotFound)
}
