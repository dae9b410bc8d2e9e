// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Upsert inserts parts or updates existing ones matched on (category, name).
// Existing parts keep their id. Duplicate keys within parts resolve to the
// last occurrence. Returns the number of rows written.
func (db *DB) Upsert(ctx context.Context, parts []models.Part) (int, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return 0, err
	}
	defer release()
	if len(parts) == 0 {
		return 0, nil
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	parts = dedupeLast(parts)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO parts (
			name, category, price, performance_score, brand, hardware_brand,
			compatibility_tags, specifications, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (category, name) DO UPDATE SET
			price = EXCLUDED.price,
			performance_score = EXCLUDED.performance_score,
			brand = EXCLUDED.brand,
			hardware_brand = EXCLUDED.hardware_brand,
			compatibility_tags = EXCLUDED.compatibility_tags,
			specifications = EXCLUDED.specifications,
			updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer closeWithLog(stmt, "upsert statement")

	now := time.Now().UTC()
	written := 0
	for i := range parts {
		p := &parts[i]
		if !p.Category.Valid() {
			return 0, fmt.Errorf("part %q: %w: %q", p.Name, models.ErrUnknownCategory, p.Category)
		}
		tags, specs, err := encodePartJSON(p)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx,
			p.Name, string(p.Category), p.Price, p.PerformanceScore,
			p.Brand, p.HardwareBrand, tags, specs, now,
		); err != nil {
			return 0, fmt.Errorf("failed to upsert part %q: %w", p.Name, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit upsert: %w", err)
	}
	return written, nil
}

// Fetch returns the parts of one category matching filter, ordered by id.
func (db *DB) Fetch(ctx context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	return fetchCategory(ctx, conn, category, filter)
}

// Snapshot reads every category inside one transaction.
func (db *DB) Snapshot(ctx context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make(map[models.Category][]models.Part, len(models.Categories))
	for _, cat := range models.Categories {
		parts, err := fetchCategory(ctx, tx, cat, filters[cat])
		if err != nil {
			return nil, err
		}
		out[cat] = parts
	}
	return out, nil
}

// All returns every part ordered by category then id.
func (db *DB) All(ctx context.Context) ([]models.Part, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := conn.QueryContext(ctx, `SELECT `+partColumns+` FROM parts ORDER BY category, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query parts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	return scanParts(rows)
}

// Count returns the number of parts in the catalog.
func (db *DB) Count(ctx context.Context) (int, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return 0, err
	}
	defer release()
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM parts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count parts: %w", err)
	}
	return n, nil
}

func fetchCategory(ctx context.Context, q queryer, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	where, args := buildPartConditions(category, filter)
	rows, err := q.QueryContext(ctx, `SELECT `+partColumns+` FROM parts`+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s parts: %w", category, err)
	}
	defer closeWithLog(rows, "rows")

	return scanParts(rows)
}

func scanParts(rows *sql.Rows) ([]models.Part, error) {
	parts := make([]models.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parts: %w", err)
	}
	return parts, nil
}

// scanPart decodes one row in partColumns order and resolves its tags.
func scanPart(row rowScanner) (models.Part, error) {
	var (
		id                 int64
		name, category     string
		price              float64
		score              int
		brand, hardware    string
		tagsJSON           string
		specificationsJSON sql.NullString
	)
	if err := row.Scan(&id, &name, &category, &price, &score, &brand, &hardware, &tagsJSON, &specificationsJSON); err != nil {
		return models.Part{}, fmt.Errorf("failed to scan part: %w", err)
	}

	raw := models.RawTags{}
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &raw); err != nil {
			return models.Part{}, fmt.Errorf("failed to decode tags for part %d: %w", id, err)
		}
	}

	p := models.NewPart(id, name, models.Category(category), price, score, brand, hardware, raw)
	if specificationsJSON.Valid && specificationsJSON.String != "" {
		if err := json.Unmarshal([]byte(specificationsJSON.String), &p.Specifications); err != nil {
			return models.Part{}, fmt.Errorf("failed to decode specifications for part %d: %w", id, err)
		}
	}
	return p, nil
}

// encodePartJSON serializes the tag and specification columns.
func encodePartJSON(p *models.Part) (string, sql.NullString, error) {
	tags, err := json.Marshal(p.Tags.Raw())
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to encode tags for %q: %w", p.Name, err)
	}
	if len(p.Specifications) == 0 {
		return string(tags), sql.NullString{}, nil
	}
	specs, err := json.Marshal(p.Specifications)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to encode specifications for %q: %w", p.Name, err)
	}
	return string(tags), sql.NullString{String: string(specs), Valid: true}, nil
}

// dedupeLast keeps the last occurrence of each (category, name) key while
// preserving first-seen order.
func dedupeLast(parts []models.Part) []models.Part {
	type key struct {
		category models.Category
		name     string
	}
	last := lo.SliceToMap(parts, func(p models.Part) (key, models.Part) {
		return key{p.Category, p.Name}, p
	})
	keys := lo.Uniq(lo.Map(parts, func(p models.Part, _ int) key {
		return key{p.Category, p.Name}
	}))
	return lo.Map(keys, func(k key, _ int) models.Part {
		return last[k]
	})
}
