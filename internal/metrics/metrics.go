// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Store Metrics
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of catalog store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	CatalogQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_errors_total",
			Help: "Total number of failed catalog store operations",
		},
		[]string{"backend", "operation"},
	)

	CatalogParts = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_parts",
			Help: "Number of parts in the catalog per category",
		},
		[]string{"category"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"use_case", "result"}, // result: "ok", "empty", "invalid", "error"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Recommendation latency including the catalog read",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"use_case"},
	)

	RecommendTuplesEvaluated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_tuples_evaluated",
			Help:    "Complete part combinations evaluated per request",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		},
	)

	RecommendBuildsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_builds_returned",
			Help:    "Builds returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	RecommendRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_rejections_total",
			Help: "Rejected combinations by compatibility reason",
		},
		[]string{"reason"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Price Import Metrics
	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "import_duration_seconds",
			Help:    "Duration of price list imports in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	ImportRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_runs_total",
			Help: "Total number of price list import runs",
		},
		[]string{"result"}, // result: "success", "failure"
	)

	ImportPartsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_parts_loaded_total",
			Help: "Parts upserted by price list imports",
		},
		[]string{"category"},
	)

	ImportRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_skipped_total",
			Help: "Price list rows skipped during import",
		},
		[]string{"reason"},
	)

	ImportLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "import_last_success_timestamp",
			Help: "Unix timestamp of the last successful import",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type", "operation"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type", "operation"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogQuery records one catalog store operation
func RecordCatalogQuery(backend, operation string, duration time.Duration, err error) {
	CatalogQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		CatalogQueryErrors.WithLabelValues(backend, operation).Inc()
	}
}

// UpdateCatalogParts replaces the per-category part gauges
func UpdateCatalogParts(counts map[string]int) {
	for category, n := range counts {
		CatalogParts.WithLabelValues(category).Set(float64(n))
	}
}

// RecordCacheLookup records a cache hit or miss
func RecordCacheLookup(cacheType, operation string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType, operation).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType, operation).Inc()
}

// Recommendation outcome labels.
const (
	ResultOK      = "ok"
	ResultEmpty   = "empty"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// RecordRecommendation records the outcome of one recommendation request.
// Unrecognized use cases are folded into "other" to bound label cardinality.
func RecordRecommendation(useCase, result string, duration time.Duration) {
	useCase = useCaseLabel(useCase)
	RecommendRequests.WithLabelValues(useCase, result).Inc()
	RecommendDuration.WithLabelValues(useCase).Observe(duration.Seconds())
}

// RecordSearch records the work done by a completed search
func RecordSearch(tuplesEvaluated int64, buildsReturned int, rejections map[string]int64) {
	RecommendTuplesEvaluated.Observe(float64(tuplesEvaluated))
	RecommendBuildsReturned.Observe(float64(buildsReturned))
	for reason, n := range rejections {
		if n > 0 {
			RecommendRejections.WithLabelValues(reason).Add(float64(n))
		}
	}
}

func useCaseLabel(useCase string) string {
	switch u := strings.ToLower(strings.TrimSpace(useCase)); u {
	case "gaming", "workstation", "general":
		return u
	default:
		return "other"
	}
}

// RecordImport records a price list import run
func RecordImport(duration time.Duration, loaded map[string]int, skipped map[string]int, err error) {
	ImportDuration.Observe(duration.Seconds())
	for reason, n := range skipped {
		ImportRowsSkipped.WithLabelValues(reason).Add(float64(n))
	}
	if err != nil {
		ImportRuns.WithLabelValues("failure").Inc()
		return
	}
	for category, n := range loaded {
		ImportPartsLoaded.WithLabelValues(category).Add(float64(n))
	}
	ImportRuns.WithLabelValues("success").Inc()
	ImportLastSuccess.Set(float64(time.Now().Unix()))
}
