// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package api provides the HTTP REST API layer for BuildMyRig.

Key Components:

  - Router: Chi route configuration and middleware stack
  - Handler: Request handlers for recommendations, catalog browsing and health
  - Response formatting: Standardized JSON envelope with metadata
  - Error handling: Consistent error codes mapped from engine and catalog errors
  - Rate limiting: httprate per-IP limits, stricter for POST /recommend
  - CORS: go-chi/cors for browser clients

Endpoints:

	POST /api/v1/recommend           Build recommendations
	GET  /api/v1/parts               Whole catalog
	GET  /api/v1/parts/{category}    One category, paged and filterable
	GET  /api/v1/stats               Catalog statistics
	GET  /api/v1/health[/live|/ready] Health probes
	GET  /metrics                    Prometheus metrics

Response Format:

All JSON endpoints return the APIResponse envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors carry a machine-readable code:

	{
	  "success": false,
	  "error": {"code": "NO_BUILDS_FOUND", "message": "...", "request_id": "..."}
	}

Status codes:

  - 400: malformed JSON, validation failures, unknown category
  - 404: no build fits, no parts match, empty catalog
  - 429: rate limit exceeded
  - 500: unexpected catalog or engine failure
  - 503: circuit breaker open, catalog timeout or closed store

Usage Example:

	handler := api.NewHandler(store, engine, cfg)
	handler.SetImportStatus(importer)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}

Thread Safety:

Handler holds no per-request state. All handlers are safe for concurrent use.
*/
package api
