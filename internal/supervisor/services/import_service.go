// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package services

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/buildmyrig/internal/ingest"
	"github.com/tomtom215/buildmyrig/internal/logging"
)

// Importer runs one catalog import. *ingest.Importer satisfies it.
type Importer interface {
	Import(ctx context.Context) (*ingest.Report, error)
}

// ImportService re-imports the price lists on a fixed interval.
//
// A failed run is logged and retried on the next tick; it never stops the
// service, so the catalog keeps serving the last successful import.
// Ticks are dropped while Import blocks. ingest.ErrImportInProgress, from a
// run started elsewhere, is logged at debug level.
type ImportService struct {
	importer   Importer
	interval   time.Duration
	runOnStart bool
	name       string
}

// NewImportService creates a periodic import service. When runOnStart is
// true the first import runs immediately instead of after one interval.
//
// Example usage:
//
//	importer := ingest.NewImporter(ingest.NewLoader(cfg.Catalog.ImportDir, cfg.Catalog.BenchmarkDir), store)
//	tree.AddDataService(services.NewImportService(importer, cfg.Catalog.ImportInterval, false))
func NewImportService(importer Importer, interval time.Duration, runOnStart bool) *ImportService {
	return &ImportService{
		importer:   importer,
		interval:   interval,
		runOnStart: runOnStart,
		name:       "catalog-import",
	}
}

// Serve implements suture.Service. It returns ctx.Err() on shutdown.
func (s *ImportService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		// Nothing to schedule; stay up so the supervisor does not restart us
		<-ctx.Done()
		return ctx.Err()
	}

	logging.Info().Dur("interval", s.interval).Msg("Catalog import scheduler started")

	if s.runOnStart {
		s.runOnce(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *ImportService) runOnce(ctx context.Context) {
	report, err := s.importer.Import(ctx)
	switch {
	case err == nil:
		logging.Info().
			Int("written", report.Written).
			Int("matched", report.Matched).
			Dur("duration", report.Duration).
			Msg("Scheduled catalog import completed")
	case ctx.Err() != nil:
		logging.Info().Msg("Scheduled catalog import canceled due to shutdown")
	case errors.Is(err, ingest.ErrImportInProgress):
		logging.Debug().Msg("Skipping scheduled import, another import is running")
	default:
		logging.Error().Err(err).Msg("Scheduled catalog import failed")
	}
}

// String implements fmt.Stringer. Suture uses it to name the service in logs.
func (s *ImportService) String() string {
	return s.name
}
