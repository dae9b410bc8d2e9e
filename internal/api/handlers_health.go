// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/buildmyrig/internal/ingest"
)

// healthCheckTimeout bounds catalog probes from health endpoints.
const healthCheckTimeout = 2 * time.Second

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status           string         `json:"status"`
	Message          string         `json:"message"`
	Version          string         `json:"version"`
	CatalogConnected bool           `json:"catalog_connected"`
	CatalogParts     int            `json:"catalog_parts"`
	BreakerState     string         `json:"breaker_state,omitempty"`
	ImportRunning    bool           `json:"import_running"`
	LastImport       *ingest.Report `json:"last_import,omitempty"`
	Uptime           float64        `json:"uptime_seconds"`
}

// catalogProbe pings the catalog and counts its parts.
func (h *Handler) catalogProbe(ctx context.Context) (connected bool, parts int) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if h.catalog == nil || h.catalog.Ping(ctx) != nil {
		return false, 0
	}
	n, err := h.catalog.Count(ctx)
	if err != nil {
		return false, 0
	}
	return true, n
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns catalog connectivity, part count, circuit breaker state, last import and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected, parts := h.catalogProbe(r.Context())

	health := HealthStatus{
		Status:           "healthy",
		Message:          "BuildMyRig API is running",
		Version:          Version,
		CatalogConnected: connected,
		CatalogParts:     parts,
		Uptime:           time.Since(h.startTime).Seconds(),
	}
	if !connected || parts == 0 {
		health.Status = "degraded"
	}
	if h.breaker != nil {
		health.BreakerState = h.breaker.State()
		if health.BreakerState == "open" {
			health.Status = "degraded"
		}
	}
	if h.importer != nil {
		health.ImportRunning = h.importer.IsRunning()
		health.LastImport = h.importer.LastReport()
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of the catalog
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the catalog is reachable and populated
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK when the catalog is reachable and holds parts, 503 otherwise
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	connected, parts := h.catalogProbe(r.Context())
	ready := connected && parts > 0

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).successStatus(status, map[string]interface{}{
		"ready":             ready,
		"catalog_connected": connected,
		"catalog_parts":     parts,
	}, nil)
}

// APIInfo handles API discovery requests
//
// @Summary API information
// @Description Lists the available endpoints
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "API information"
// @Router / [get]
func (h *Handler) APIInfo(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"message": "Welcome to BuildMyRig API",
		"version": Version,
		"endpoints": map[string]string{
			"POST /api/v1/recommend":       "Get PC build recommendations",
			"GET /api/v1/parts":            "Get all available parts",
			"GET /api/v1/parts/{category}": "Get parts by category",
			"GET /api/v1/stats":            "Get catalog statistics",
			"GET /api/v1/health":           "Health check endpoint",
			"GET /api/v1/health/live":      "Liveness probe",
			"GET /api/v1/health/ready":     "Readiness probe",
			"GET /metrics":                 "Prometheus metrics",
		},
	})
}
