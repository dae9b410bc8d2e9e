// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Server: HTTP listener and timeouts
//     - Database: DuckDB catalog storage
//     - Catalog: backend selection, seeding and CSV import
//     - Breaker: circuit breaker around catalog reads
//
//  2. Engine:
//     - Recommend: funnel and diversity overrides for the recommendation engine
//
//  3. API & Security:
//     - Security: CORS and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Thread Safety:
// Config is immutable after LoadWithKoanf() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // Read/write timeout for HTTP requests
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown budget
	Environment     string        `koanf:"environment"`      // development, staging, production
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)
}

// Catalog backends.
const (
	BackendDuckDB = "duckdb"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// CatalogConfig controls where parts are stored and how they get there.
//
// Environment Variables:
//   - CATALOG_BACKEND: duckdb, badger or memory (default: duckdb)
//   - BADGER_PATH: Badger directory when the badger backend is selected
//   - SEED_SAMPLE_DATA: load the embedded sample parts into an empty catalog (default: true)
//   - CATALOG_IMPORT_DIR: directory of price CSV files (optional)
//   - CATALOG_BENCHMARK_DIR: directory of benchmark CSV files (optional)
//   - CATALOG_IMPORT_INTERVAL: re-import period, 0 disables (default: 0)
//   - CATALOG_FETCH_TIMEOUT: timeout for one catalog read (default: 5s)
type CatalogConfig struct {
	Backend        string        `koanf:"backend"`
	BadgerPath     string        `koanf:"badger_path"`
	SeedSampleData bool          `koanf:"seed_sample_data"`
	ImportDir      string        `koanf:"import_dir"`
	BenchmarkDir   string        `koanf:"benchmark_dir"`
	ImportInterval time.Duration `koanf:"import_interval"`
	FetchTimeout   time.Duration `koanf:"fetch_timeout"`
	CacheTTL       time.Duration `koanf:"cache_ttl"` // Browse/stats read cache; 0 disables
}

// BreakerConfig holds circuit breaker settings for catalog reads.
// The breaker trips when at least MinRequests were seen in the current
// interval and the failure ratio reaches FailureRatio.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // Requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`     // Closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`      // Open-state duration before half-open
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RecommendConfig overrides engine tables. Zero values keep engine defaults.
type RecommendConfig struct {
	ShortlistSize    int           `koanf:"shortlist_size"`
	PoolCap          int           `koanf:"pool_cap"`
	KeepMax          int           `koanf:"keep_max"`
	ReturnMax        int           `koanf:"return_max"`
	MaxPriceFraction float64       `koanf:"max_price_fraction"`
	BrandAllowList   []string      `koanf:"brand_allow_list"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins            []string      `koanf:"cors_origins"`
	RateLimitReqs          int           `koanf:"rate_limit_reqs"`
	RateLimitWindow        time.Duration `koanf:"rate_limit_window"`
	RecommendRateLimitReqs int           `koanf:"recommend_rate_limit_reqs"` // Stricter limit for POST /recommend
	RateLimitDisabled      bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
