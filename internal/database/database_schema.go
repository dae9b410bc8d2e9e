// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

/*
database_schema.go - Database Schema Management

Tables:
  - parts: one row per catalog item. compatibility_tags and specifications
    are JSON text columns decoded on load.

Keys:
  - id: BIGINT from parts_id_seq, never reassigned
  - (category, name): unique, used as the upsert conflict target

No secondary indexes are created on columns rewritten by upserts; DuckDB
rewrites indexed rows as delete+insert, which can trip the unique
constraint within a single transaction.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the catalog tables
func createTables(conn *sql.DB) error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the table creation SQL statements
func tableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS parts_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS parts (
			id BIGINT PRIMARY KEY DEFAULT nextval('parts_id_seq'),
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price DOUBLE NOT NULL,
			performance_score INTEGER NOT NULL DEFAULT 0,
			brand TEXT NOT NULL DEFAULT '',
			hardware_brand TEXT NOT NULL DEFAULT '',
			compatibility_tags TEXT NOT NULL DEFAULT '{}',
			specifications TEXT,
			updated_at TIMESTAMP,
			UNIQUE (category, name)
		)`,
	}
}
