// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/metrics"
	"github.com/tomtom215/buildmyrig/internal/models"
)

// ErrImportInProgress is returned when Import is called while another import
// is running.
var ErrImportInProgress = errors.New("import already in progress")

// PartWriter receives imported parts. catalog.Store satisfies it.
type PartWriter interface {
	Upsert(ctx context.Context, parts []models.Part) (int, error)
}

// Report summarizes a completed import.
type Report struct {
	Loaded     map[string]int `json:"loaded"`
	Skipped    map[string]int `json:"skipped"`
	Matched    int            `json:"benchmark_matched"`
	Written    int            `json:"written"`
	Files      []string       `json:"files"`
	Duration   time.Duration  `json:"duration"`
	FinishedAt time.Time      `json:"finished_at"`
}

// Importer loads price lists and upserts them into a catalog store.
type Importer struct {
	loader  *Loader
	store   PartWriter
	logger  zerolog.Logger
	running atomic.Bool

	mu   sync.RWMutex
	last *Report
}

// NewImporter creates an importer writing to store.
func NewImporter(loader *Loader, store PartWriter) *Importer {
	return &Importer{
		loader: loader,
		store:  store,
		logger: logging.WithComponent("importer"),
	}
}

// Import runs one load and upsert. Only one import runs at a time.
func (i *Importer) Import(ctx context.Context) (*Report, error) {
	if !i.running.CompareAndSwap(false, true) {
		return nil, ErrImportInProgress
	}
	defer i.running.Store(false)

	start := time.Now()
	res, err := i.loader.Load(ctx)
	if err != nil {
		metrics.RecordImport(time.Since(start), nil, nil, err)
		return nil, fmt.Errorf("load price lists: %w", err)
	}

	written, err := i.store.Upsert(ctx, res.Parts)
	if err != nil {
		metrics.RecordImport(time.Since(start), nil, res.Skipped, err)
		return nil, fmt.Errorf("upsert %d parts: %w", len(res.Parts), err)
	}

	loaded := make(map[string]int, len(res.Loaded))
	for cat, n := range res.Loaded {
		loaded[string(cat)] = n
	}

	report := &Report{
		Loaded:     loaded,
		Skipped:    res.Skipped,
		Matched:    res.Matched,
		Written:    written,
		Files:      res.Files,
		Duration:   time.Since(start),
		FinishedAt: time.Now().UTC(),
	}
	metrics.RecordImport(report.Duration, loaded, res.Skipped, nil)

	i.mu.Lock()
	i.last = report
	i.mu.Unlock()

	i.logger.Info().
		Int("written", written).
		Int("benchmark_matched", res.Matched).
		Interface("skipped", res.Skipped).
		Dur("duration", report.Duration).
		Msg("Catalog import complete")
	return report, nil
}

// IsRunning reports whether an import is in progress.
func (i *Importer) IsRunning() bool {
	return i.running.Load()
}

// LastReport returns the most recent successful import, or nil.
func (i *Importer) LastReport() *Report {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.last
}
