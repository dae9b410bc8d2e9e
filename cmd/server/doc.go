// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
Package main is the entry point for the BuildMyRig server application.

BuildMyRig recommends complete PC builds (CPU, GPU, motherboard, RAM,
storage, PSU and case) for a budget and a use case. It serves a JSON REST
API backed by a parts catalog held in DuckDB, BadgerDB or memory.

# Application Architecture

The server runs its long-lived components under Suture v4 supervision:

	RootSupervisor ("buildmyrig")
	├── DataSupervisor ("data-layer")
	│   ├── Catalog stats refresher (Prometheus gauges)
	│   └── Catalog importer (optional, CATALOG_IMPORT_INTERVAL)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST API + /metrics)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Catalog: open the configured backend, import price lists, seed samples
 4. Circuit breaker: gobreaker around catalog reads (optional)
 5. Engine: recommendation engine over the catalog accessor
 6. HTTP Server: Chi router with CORS, rate limiting and metrics
 7. Supervisor tree: start services and block until shutdown

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within SHUTDOWN_TIMEOUT, background services stop, and the catalog
store is closed last.

# Example Usage

Development with the in-memory catalog and sample parts:

	export CATALOG_BACKEND=memory
	export LOG_FORMAT=console
	./buildmyrig

Production with a DuckDB catalog refreshed daily from CSV price lists:

	export ENVIRONMENT=production
	export DUCKDB_PATH=/data/catalog.duckdb
	export CATALOG_IMPORT_DIR=/data/prices
	export CATALOG_BENCHMARK_DIR=/data/benchmarks
	export CATALOG_IMPORT_INTERVAL=24h
	export CORS_ORIGINS=https://buildmyrig.example
	./buildmyrig
*/
package main
