// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/models"
)

//go:embed seed_parts.json
var seedJSON []byte

// SeedParts decodes the embedded sample catalog. Each call returns a fresh
// slice; ids are zero until the parts are stored.
func SeedParts() ([]models.Part, error) {
	var parts []models.Part
	if err := json.Unmarshal(seedJSON, &parts); err != nil {
		return nil, fmt.Errorf("decode seed parts: %w", err)
	}
	return parts, nil
}

// EnsureSeeded loads the sample catalog into store when it is empty and
// returns the number of parts written. A non-empty store is left untouched.
func EnsureSeeded(ctx context.Context, store Store) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	parts, err := SeedParts()
	if err != nil {
		return 0, err
	}
	written, err := store.Upsert(ctx, parts)
	if err != nil {
		return 0, fmt.Errorf("store seed parts: %w", err)
	}

	logging.Info().Int("parts", written).Msg("Catalog was empty, loaded sample parts")
	return written, nil
}
