// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/buildmyrig/internal/logging"
	"github.com/tomtom215/buildmyrig/internal/models"
)

// ErrNoPriceData is returned when the price directory holds none of the
// expected files.
var ErrNoPriceData = errors.New("no price list files found")

// Loader reads price lists and benchmark exports from disk.
type Loader struct {
	priceDir     string
	benchmarkDir string
	logger       zerolog.Logger
}

// NewLoader creates a loader. benchmarkDir may be empty, in which case every
// score is estimated from the part name.
func NewLoader(priceDir, benchmarkDir string) *Loader {
	return &Loader{
		priceDir:     priceDir,
		benchmarkDir: benchmarkDir,
		logger:       logging.WithComponent("ingest"),
	}
}

// Result is the outcome of one Load.
type Result struct {
	Parts   []models.Part
	Loaded  map[models.Category]int
	Skipped map[string]int
	Files   []string
	Matched int // parts scored from benchmark data
}

// Load reads every available price list. Missing files are skipped with a
// warning; ErrNoPriceData is returned when none exist.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	res := &Result{
		Parts:   make([]models.Part, 0),
		Loaded:  make(map[models.Category]int),
		Skipped: make(map[string]int),
	}

	for _, cat := range models.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(l.priceDir, PriceFile(cat))
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				l.logger.Warn().Str("file", PriceFile(cat)).Msg("Price list not found")
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		table, err := l.loadBenchmarks(cat)
		if err != nil {
			return nil, err
		}

		if err := l.loadCategory(path, cat, table, res); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, PriceFile(cat))
	}

	if len(res.Files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPriceData, l.priceDir)
	}
	return res, nil
}

// loadBenchmarks reads the benchmark export for cat. A missing directory or
// file yields a nil table.
func (l *Loader) loadBenchmarks(cat models.Category) (*BenchmarkTable, error) {
	name := BenchmarkFile(cat)
	if l.benchmarkDir == "" || name == "" {
		return nil, nil
	}
	path := filepath.Join(l.benchmarkDir, name)

	rows, _, err := readCSV(path)
	if errors.Is(err, os.ErrNotExist) {
		l.logger.Warn().Str("file", name).Msg("Benchmark file not found, scores will be estimated")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries := make([]BenchmarkEntry, 0, len(rows))
	for _, row := range rows {
		score, ok := parseScore(row[colBenchmark])
		if !ok || row[colModel] == "" {
			continue
		}
		entries = append(entries, BenchmarkEntry{
			Model:   row[colModel],
			Score:   score,
			Rank:    row[colRank],
			Samples: row[colSamples],
			URL:     row[colURL],
		})
	}

	l.logger.Debug().Str("file", name).Int("entries", len(entries)).Msg("Loaded benchmark entries")
	return NewBenchmarkTable(entries), nil
}

func (l *Loader) loadCategory(path string, cat models.Category, table *BenchmarkTable, res *Result) error {
	rows, malformed, err := readCSV(path)
	if err != nil {
		return err
	}
	if malformed > 0 {
		res.Skipped[SkipMalformedLine] += malformed
	}

	loaded := 0
	for _, row := range rows {
		part, matched, reason := buildPart(cat, row, table)
		if reason != "" {
			res.Skipped[reason]++
			continue
		}
		if matched {
			res.Matched++
		}
		res.Parts = append(res.Parts, part)
		loaded++
	}
	res.Loaded[cat] += loaded

	l.logger.Info().
		Str("file", filepath.Base(path)).
		Str("category", string(cat)).
		Int("parts", loaded).
		Int("rows", len(rows)).
		Msg("Loaded price list")
	return nil
}

// buildPart converts one price list row. reason is non-empty when the row
// is skipped.
func buildPart(cat models.Category, row map[string]string, table *BenchmarkTable) (part models.Part, matched bool, reason string) {
	name := strings.TrimSpace(row[colName])
	if name == "" {
		return models.Part{}, false, SkipMissingName
	}
	price, reason := parsePrice(row[colPrice])
	if reason != "" {
		return models.Part{}, false, reason
	}

	score := EstimatePerformance(name, cat)
	entry, matched := table.Match(name)
	if matched {
		score = int(entry.Score)
	}

	part = models.NewPart(0, name, cat, price, score,
		ExtractManufacturer(name), ExtractHardwareBrand(name, cat),
		buildTags(cat, name, row))
	part.Specifications = buildSpecifications(row, entry, matched)
	return part, matched, ""
}

// parsePrice accepts plain and currency-formatted prices ("$1,299.99").
func parsePrice(s string) (float64, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, SkipMissingPrice
	}
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, SkipInvalidPrice
	}
	if price <= 0 {
		return 0, SkipNonPositive
	}
	return price, ""
}

// buildSpecifications keeps every non-empty column except name and price,
// plus benchmark provenance when a benchmark matched.
func buildSpecifications(row map[string]string, entry BenchmarkEntry, matched bool) map[string]string {
	specs := make(map[string]string, len(row))
	for col, v := range row {
		if col == colName || col == colPrice || v == "" {
			continue
		}
		specs[col] = v
	}
	if matched {
		for k, v := range map[string]string{
			"benchmark_rank":    entry.Rank,
			"benchmark_samples": entry.Samples,
			"benchmark_url":     entry.URL,
		} {
			if v != "" {
				specs[k] = v
			}
		}
	}
	if len(specs) == 0 {
		return nil
	}
	return specs
}

// readCSV reads a headed CSV file into one map per row keyed by trimmed
// header names. Values are trimmed. Rows that fail to parse are counted and
// skipped.
func readCSV(path string) (rows []map[string]string, malformed int, err error) {
	f, err := os.Open(path) //nolint:gosec // path built from configured directory and fixed file names
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []map[string]string{}, 0, nil
		}
		return nil, 0, fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\uFEFF"))
	}

	rows = make([]map[string]string, 0)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			malformed++
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) && col != "" {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, malformed, nil
}
