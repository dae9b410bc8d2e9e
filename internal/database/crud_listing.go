// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// List returns one page of a category plus the total number of matching
// parts. The query is normalized before use.
//
//nolint:gocritic // hugeParam: query passed by value, normalized locally
func (db *DB) List(ctx context.Context, q models.PartQuery) ([]models.Part, int, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return nil, 0, err
	}
	defer release()
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	q = q.Normalize()
	where, args := buildPartConditions(q.Category, q.Filter)

	var total int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM parts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s parts: %w", q.Category, err)
	}
	if total == 0 {
		return []models.Part{}, 0, nil
	}

	query := `SELECT ` + partColumns + ` FROM parts` + where + buildOrderClause(q) + ` LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s parts: %w", q.Category, err)
	}
	defer closeWithLog(rows, "rows")

	parts, err := scanParts(rows)
	if err != nil {
		return nil, 0, err
	}
	return parts, total, nil
}

// Stats summarizes the catalog. An empty catalog yields zero counts and a
// zero price range.
func (db *DB) Stats(ctx context.Context) (*models.CatalogStats, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	stats := &models.CatalogStats{
		Categories: make(map[models.Category]int),
		Brands:     make(map[string]int),
	}

	err = conn.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
		FROM parts`).Scan(&stats.TotalParts, &stats.PriceRange.Min, &stats.PriceRange.Max)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog totals: %w", err)
	}

	if err := groupCounts(ctx, conn, "category", func(key string, n int) {
		stats.Categories[models.Category(key)] = n
	}); err != nil {
		return nil, err
	}
	if err := groupCounts(ctx, conn, "brand", func(key string, n int) {
		stats.Brands[key] = n
	}); err != nil {
		return nil, err
	}

	return stats, nil
}

// groupCounts runs COUNT(*) grouped by column. column must be a trusted identifier.
func groupCounts(ctx context.Context, conn *sql.DB, column string, add func(key string, n int)) error {
	rows, err := conn.QueryContext(ctx, `SELECT `+column+`, COUNT(*) FROM parts GROUP BY `+column+` ORDER BY `+column)
	if err != nil {
		return fmt.Errorf("failed to count parts by %s: %w", column, err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		add(key, n)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s counts: %w", column, err)
	}
	return nil
}
