// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

// Package database provides the DuckDB-backed parts catalog for BuildMyRig.
//
// # Overview
//
// The catalog lives in a single parts table keyed by an auto-incrementing id
// with a unique (category, name) constraint. Imports upsert on that key so a
// part keeps its id across price refreshes.
//
// Files:
//   - database.go: connection lifecycle, pool configuration, checkpointing
//   - database_schema.go: table and index creation
//   - crud_parts.go: upsert, per-category fetches and snapshot reads
//   - crud_listing.go: paged listings and catalog statistics
//   - filter.go: WHERE and ORDER BY construction for brand filters and sorts
//   - errors.go: close helpers
//
// # Catalog Reads
//
// Fetch reads one category with an optional brand filter. Snapshot reads all
// seven categories inside one transaction so a concurrent import can never
// produce a half-updated catalog for a single recommendation.
//
// Compatibility tags are stored as a JSON text column and resolved through
// models.ResolveTags on load, so every part returned by this package has
// its documented defaults applied.
//
// # Database Technology
//
// DuckDB via the CGO driver github.com/duckdb/duckdb-go/v2. Tests use
// in-memory databases (":memory:").
//
// # Thread Safety
//
// DB is safe for concurrent use. All methods accept a context and apply a
// 30 second timeout when the caller's context has no deadline.
package database
