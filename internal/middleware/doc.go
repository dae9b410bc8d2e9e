// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package middleware provides chi-compatible HTTP middleware owned by BuildMyRig.

Components:

  - RequestID: accepts or generates X-Request-ID and threads it into the
    logging context so logging.Ctx(ctx) tags every line with request_id.
  - PrometheusMetrics: records api_requests_total and
    api_request_duration_seconds, labeled by chi route pattern.

Both have the func(http.Handler) http.Handler shape and are installed with
r.Use in the API router. Compression, panic recovery, CORS and rate limiting
come from go-chi packages directly.
*/
package middleware
