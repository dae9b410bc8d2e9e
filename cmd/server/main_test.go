// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/tomtom215/buildmyrig/internal/catalog"
	"github.com/tomtom215/buildmyrig/internal/config"
)

// loadMemoryConfig loads configuration from defaults with the in-memory backend.
func loadMemoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.ConfigPathEnvVar, "")
	t.Setenv("CATALOG_BACKEND", "memory")

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	return cfg
}

func TestInitCatalog_SeedsEmptyStore(t *testing.T) {
	cfg := loadMemoryConfig(t)

	cat, err := initCatalog(context.Background(), cfg)
	if err != nil {
		t.Fatalf("initCatalog() error = %v", err)
	}
	defer cat.Close()

	n, err := cat.store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n == 0 {
		t.Error("expected sample parts in an empty store")
	}
	if cat.importer != nil {
		t.Error("importer should be nil without CATALOG_IMPORT_DIR")
	}
	if cat.cached == cat.store {
		t.Error("read cache should wrap the store by default")
	}
	if cat.breaker == nil {
		t.Fatal("breaker should be enabled by default")
	}
	if _, ok := cat.accessor.(*catalog.BreakerAccessor); !ok {
		t.Errorf("accessor = %T, want *catalog.BreakerAccessor", cat.accessor)
	}
}

func TestInitCatalog_NoSeedNoBreaker(t *testing.T) {
	cfg := loadMemoryConfig(t)
	cfg.Catalog.SeedSampleData = false
	cfg.Catalog.CacheTTL = 0
	cfg.Breaker.Enabled = false

	cat, err := initCatalog(context.Background(), cfg)
	if err != nil {
		t.Fatalf("initCatalog() error = %v", err)
	}
	defer cat.Close()

	n, err := cat.store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d, want 0 when seeding is disabled", n)
	}
	if cat.cached != cat.store {
		t.Error("CATALOG_CACHE_TTL=0 should leave the store unwrapped")
	}
	if cat.breaker != nil {
		t.Error("breaker should be nil when disabled")
	}
	if _, ok := cat.accessor.(*catalog.BreakerAccessor); ok {
		t.Error("accessor should be the store when the breaker is disabled")
	}
}

func TestInitCatalog_EmptyImportDirFallsBackToSeed(t *testing.T) {
	cfg := loadMemoryConfig(t)
	cfg.Catalog.ImportDir = t.TempDir()

	cat, err := initCatalog(context.Background(), cfg)
	if err != nil {
		t.Fatalf("initCatalog() error = %v", err)
	}
	defer cat.Close()

	if cat.importer == nil {
		t.Fatal("importer should be created when CATALOG_IMPORT_DIR is set")
	}
	if cat.importer.LastReport() != nil {
		t.Error("failed startup import should leave no report")
	}
	n, err := cat.store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n == 0 {
		t.Error("expected sample parts after a failed startup import")
	}
}

func TestInitCatalog_UnknownBackend(t *testing.T) {
	cfg := loadMemoryConfig(t)
	cfg.Catalog.Backend = "postgres"

	if _, err := initCatalog(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestNewHTTPServer(t *testing.T) {
	cfg := loadMemoryConfig(t)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9191

	srv := newHTTPServer(cfg, http.NotFoundHandler())
	if srv.Addr != "127.0.0.1:9191" {
		t.Errorf("Addr = %q, want 127.0.0.1:9191", srv.Addr)
	}
	if srv.ReadTimeout != cfg.Server.Timeout || srv.WriteTimeout != cfg.Server.Timeout {
		t.Errorf("timeouts = %v/%v, want %v", srv.ReadTimeout, srv.WriteTimeout, cfg.Server.Timeout)
	}
	if srv.ReadHeaderTimeout == 0 {
		t.Error("ReadHeaderTimeout should be set")
	}
}
