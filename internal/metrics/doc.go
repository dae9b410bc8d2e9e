// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package metrics provides Prometheus instrumentation for BuildMyRig.

All collectors are registered on the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Catalog:
  - catalog_query_duration_seconds{backend, operation}
  - catalog_query_errors_total{backend, operation}
  - catalog_parts{category}

Recommendation:
  - recommend_requests_total{use_case, result}
  - recommend_duration_seconds{use_case}
  - recommend_tuples_evaluated
  - recommend_builds_returned
  - recommend_rejections_total{reason}

Circuit breaker (catalog reads):
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Price import:
  - import_duration_seconds
  - import_runs_total{result}
  - import_parts_loaded_total{category}
  - import_rows_skipped_total{reason}
  - import_last_success_timestamp

Endpoint labels use chi route patterns, not raw paths, so
/api/v1/parts/{category} is one series regardless of category.
*/
package metrics
