// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// MatchThreshold is the minimum Jaccard similarity for a benchmark match.
// A candidate must score strictly above it.
const MatchThreshold = 0.6

// BenchmarkEntry is one row of a benchmark export.
type BenchmarkEntry struct {
	Model   string
	Score   float64
	Rank    string
	Samples string
	URL     string

	words map[string]struct{}
}

// BenchmarkTable matches part names against benchmark models.
type BenchmarkTable struct {
	entries []BenchmarkEntry
}

// NewBenchmarkTable indexes entries for matching.
func NewBenchmarkTable(entries []BenchmarkEntry) *BenchmarkTable {
	t := &BenchmarkTable{entries: make([]BenchmarkEntry, 0, len(entries))}
	for _, e := range entries {
		e.words = wordSet(CleanName(e.Model))
		t.entries = append(t.entries, e)
	}
	return t
}

// Len returns the number of indexed entries.
func (t *BenchmarkTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Match returns the entry most similar to name. The earliest entry wins ties.
// ok is false when no entry scores above MatchThreshold.
func (t *BenchmarkTable) Match(name string) (entry BenchmarkEntry, ok bool) {
	if t == nil {
		return BenchmarkEntry{}, false
	}
	words := wordSet(CleanName(name))
	best := 0.0
	for i := range t.entries {
		score := jaccard(words, t.entries[i].words)
		if score > best && score > MatchThreshold {
			best = score
			entry = t.entries[i]
			ok = true
		}
	}
	return entry, ok
}

var (
	unitWords      = regexp.MustCompile(`(?i)\b(GB|TB|MHz|GHz|DDR[4-5]|ATX|mATX|Mini-ITX)\b`)
	marketingWords = regexp.MustCompile(`(?i)\b(Gaming|OC|Overclocked|Edition|Series|Black|White|RGB)\b`)
	punctuation    = regexp.MustCompile(`[^\w\s]`)
)

// CleanName normalizes a product name for matching: unit and marketing words
// are dropped, punctuation becomes whitespace, and the result is lower case
// with single spaces.
func CleanName(name string) string {
	name = unitWords.ReplaceAllString(name, "")
	name = marketingWords.ReplaceAllString(name, "")
	name = punctuation.ReplaceAllString(name, " ")
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Similarity returns the word-set Jaccard similarity of two cleaned names.
func Similarity(a, b string) float64 {
	return jaccard(wordSet(a), wordSet(b))
}

func wordSet(s string) map[string]struct{} {
	return lo.Keyify(strings.Fields(s))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// parseScore reads a benchmark value such as "102.5" or "1,024".
func parseScore(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
