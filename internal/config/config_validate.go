// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package config

import (
	"fmt"
	"strings"
)

// Validate checks that configuration values are present and consistent
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateBreaker(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates the HTTP listener settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
}

// validateCatalog validates backend selection and import settings
func (c *Config) validateCatalog() error {
	switch strings.ToLower(c.Catalog.Backend) {
	case BackendDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when CATALOG_BACKEND=duckdb")
		}
		if c.Database.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
		}
	case BackendBadger:
		if c.Catalog.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when CATALOG_BACKEND=badger")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("CATALOG_BACKEND must be duckdb, badger or memory, got %q", c.Catalog.Backend)
	}
	c.Catalog.Backend = strings.ToLower(c.Catalog.Backend)

	if c.Catalog.ImportInterval < 0 {
		return fmt.Errorf("CATALOG_IMPORT_INTERVAL must be non-negative, got %v", c.Catalog.ImportInterval)
	}
	if c.Catalog.ImportInterval > 0 && c.Catalog.ImportDir == "" {
		return fmt.Errorf("CATALOG_IMPORT_DIR is required when CATALOG_IMPORT_INTERVAL is set")
	}
	if c.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("CATALOG_FETCH_TIMEOUT must be positive, got %v", c.Catalog.FetchTimeout)
	}
	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be non-negative, got %v", c.Catalog.CacheTTL)
	}
	return nil
}

// validateBreaker validates circuit breaker thresholds (only if enabled)
func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.MaxRequests == 0 {
		return fmt.Errorf("BREAKER_MAX_REQUESTS must be positive")
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive, got %v", c.Breaker.Timeout)
	}
	if c.Breaker.Interval < 0 {
		return fmt.Errorf("BREAKER_INTERVAL must be non-negative, got %v", c.Breaker.Interval)
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	return nil
}

// validateRecommend validates engine overrides. Zero means "keep default".
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.ShortlistSize < 0 || r.PoolCap < 0 || r.KeepMax < 0 || r.ReturnMax < 0 {
		return fmt.Errorf("recommend sizes must be non-negative")
	}
	if r.ShortlistSize > 10 {
		// Bounds the combination search at 10^7 tuples
		return fmt.Errorf("RECOMMEND_SHORTLIST_SIZE must be at most 10, got %d", r.ShortlistSize)
	}
	if r.MaxPriceFraction < 0 || r.MaxPriceFraction > 1 {
		return fmt.Errorf("RECOMMEND_MAX_PRICE_FRACTION must be in [0, 1], got %v", r.MaxPriceFraction)
	}
	if r.RequestTimeout < 0 {
		return fmt.Errorf("RECOMMEND_TIMEOUT must be non-negative, got %v", r.RequestTimeout)
	}
	return nil
}

// validateSecurity validates CORS and rate limit settings
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must not be empty")
	}
	if c.Server.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * in production")
			}
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 || c.Security.RecommendRateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RECOMMEND_RATE_LIMIT_REQUESTS must be positive")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be trace, debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
