// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package services

import (
	"context"
	"time"

	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/models"
)

// StatsReader reads catalog statistics. The instrumented catalog store
// refreshes the catalog_parts gauges on every Stats call.
type StatsReader interface {
	Stats(ctx context.Context) (*models.CatalogStats, error)
}

// CatalogStatsService refreshes catalog and uptime gauges on an interval.
type CatalogStatsService struct {
	reader    StatsReader
	interval  time.Duration
	timeout   time.Duration
	startTime time.Time
	name      string
}

// NewCatalogStatsService creates the gauge refresher. A non-positive
// interval falls back to 30s.
func NewCatalogStatsService(reader StatsReader, interval time.Duration) *CatalogStatsService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CatalogStatsService{
		reader:    reader,
		interval:  interval,
		timeout:   5 * time.Second,
		startTime: time.Now(),
		name:      "catalog-stats",
	}
}

// Serve implements suture.Service. It refreshes once immediately and then on
// every tick, returning ctx.Err() on shutdown.
func (s *CatalogStatsService) Serve(ctx context.Context) error {
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogStatsService) refresh(ctx context.Context) {
	metrics.AppUptime.Set(time.Since(s.startTime).Seconds())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.reader.Stats(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Msg("Failed to refresh catalog gauges")
		}
		return
	}
	logging.Debug().Int("total_parts", stats.TotalParts).Msg("Catalog gauges refreshed")
}

// String implements fmt.Stringer. Suture uses it to name the service in logs.
func (s *CatalogStatsService) String() string {
	return s.name
}
