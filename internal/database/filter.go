// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package database

import (
	"strings"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// partColumns is the column list shared by every part query, in scan order.
const partColumns = `id, name, category, price, performance_score, brand, hardware_brand, compatibility_tags, specifications`

// sortColumns whitelists ORDER BY targets. Keys are normalized sort fields.
var sortColumns = map[string]string{
	models.SortByPerformance: "performance_score",
	models.SortByPrice:       "price",
	models.SortByName:        "name",
}

// buildPartConditions builds the WHERE clause for a category and brand filter.
// Wildcard filter values add no condition.
//
// Example generated SQL:
//
//	WHERE category = ? AND hardware_brand = ?
func buildPartConditions(category models.Category, filter models.BrandFilter) (string, []interface{}) {
	conditions := []string{"category = ?"}
	args := []interface{}{string(category)}

	if !models.IsWildcard(filter.Brand) {
		conditions = append(conditions, "brand = ?")
		args = append(args, filter.Brand)
	}
	if !models.IsWildcard(filter.HardwareBrand) {
		conditions = append(conditions, "hardware_brand = ?")
		args = append(args, filter.HardwareBrand)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// buildOrderClause returns the ORDER BY clause for a normalized query.
// Ascending id is always the final key so pages are stable.
//
//nolint:gocritic // hugeParam: query passed by value, matches PartQuery.Normalize
func buildOrderClause(q models.PartQuery) string {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = sortColumns[models.SortByPerformance]
	}
	direction := "DESC"
	if q.SortOrder == models.SortAsc {
		direction = "ASC"
	}
	return " ORDER BY " + column + " " + direction + ", id ASC"
}
