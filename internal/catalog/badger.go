// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/buildmyrig/internal/models"
)

// Key layout:
//
//	part:<category>:<id, 12 digits>  -> part JSON
//	partkey:<category>:<name>        -> id (decimal)
//	seq:part_id                      -> id sequence
const (
	partKeyPrefix  = "part:"
	indexKeyPrefix = "partkey:"
	sequenceKey    = "seq:part_id"
	sequenceLease  = 100
)

// BadgerStore persists the catalog in an embedded BadgerDB.
type BadgerStore struct {
	db  *badger.DB
	seq *badger.Sequence

	// writeMu serializes upserts so two writers cannot assign different ids
	// to the same new (category, name).
	writeMu sync.Mutex
}

// OpenBadger opens or creates a Badger catalog at path.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(newBadgerLogger())
	return openBadger(opts)
}

// OpenBadgerInMemory opens a Badger catalog that lives only in memory.
func OpenBadgerInMemory() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceLease)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open part id sequence: %w", err)
	}
	return &BadgerStore{db: db, seq: seq}, nil
}

func partDataKey(category models.Category, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%012d", partKeyPrefix, category, id))
}

func categoryPrefix(category models.Category) []byte {
	return []byte(partKeyPrefix + string(category) + ":")
}

func indexKey(category models.Category, name string) []byte {
	return []byte(indexKeyPrefix + string(category) + ":" + name)
}

// Upsert inserts or updates parts keyed by (category, name). Existing parts
// keep their id.
func (s *BadgerStore) Upsert(_ context.Context, parts []models.Part) (int, error) {
	if s.db.IsClosed() {
		return 0, ErrStoreClosed
	}
	for i := range parts {
		if !parts[i].Category.Valid() {
			return 0, fmt.Errorf("part %q: %w: %q", parts[i].Name, models.ErrUnknownCategory, parts[i].Category)
		}
	}
	parts = dedupeLast(parts)
	if len(parts) == 0 {
		return 0, nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ids, err := s.resolveIDs(parts)
	if err != nil {
		return 0, err
	}

	txn := s.db.NewTransaction(true)
	defer func() { txn.Discard() }()

	for i := range parts {
		p := parts[i]
		p.ID = ids[i]
		value, err := json.Marshal(p)
		if err != nil {
			return 0, fmt.Errorf("encode part %q: %w", p.Name, err)
		}

		entries := [][2][]byte{
			{partDataKey(p.Category, p.ID), value},
			{indexKey(p.Category, p.Name), []byte(strconv.FormatInt(p.ID, 10))},
		}
		for _, e := range entries {
			err := txn.Set(e[0], e[1])
			if errors.Is(err, badger.ErrTxnTooBig) {
				if err := txn.Commit(); err != nil {
					return 0, fmt.Errorf("commit part batch: %w", err)
				}
				txn = s.db.NewTransaction(true)
				err = txn.Set(e[0], e[1])
			}
			if err != nil {
				return 0, fmt.Errorf("store part %q: %w", p.Name, err)
			}
		}
	}

	if err := txn.Commit(); err != nil {
		return 0, fmt.Errorf("commit parts: %w", err)
	}
	return len(parts), nil
}

// resolveIDs returns the existing id for each part, allocating new ids from
// the sequence for parts not yet stored.
func (s *BadgerStore) resolveIDs(parts []models.Part) ([]int64, error) {
	ids := make([]int64, len(parts))
	err := s.db.View(func(txn *badger.Txn) error {
		for i := range parts {
			item, err := txn.Get(indexKey(parts[i].Category, parts[i].Name))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				id, perr := strconv.ParseInt(string(val), 10, 64)
				ids[i] = id
				return perr
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("look up part ids: %w", err)
	}

	for i := range ids {
		if ids[i] != 0 {
			continue
		}
		next, err := s.seq.Next()
		if err != nil {
			return nil, fmt.Errorf("allocate part id: %w", err)
		}
		ids[i] = int64(next) + 1 //nolint:gosec // sequence stays far below MaxInt64
	}
	return ids, nil
}

// Fetch returns the parts of one category matching filter, ordered by id.
func (s *BadgerStore) Fetch(_ context.Context, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	if s.db.IsClosed() {
		return nil, ErrStoreClosed
	}
	var parts []models.Part
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		parts, err = scanCategory(txn, category, filter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s parts: %w", category, err)
	}
	return parts, nil
}

// Snapshot reads every category inside one read transaction.
func (s *BadgerStore) Snapshot(_ context.Context, filters map[models.Category]models.BrandFilter) (map[models.Category][]models.Part, error) {
	if s.db.IsClosed() {
		return nil, ErrStoreClosed
	}
	out := make(map[models.Category][]models.Part, len(models.Categories))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, cat := range models.Categories {
			parts, err := scanCategory(txn, cat, filters[cat])
			if err != nil {
				return err
			}
			out[cat] = parts
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot catalog: %w", err)
	}
	return out, nil
}

// List returns one page of a category plus the total number of matches.
//
//nolint:gocritic // hugeParam: query passed by value, normalized locally
func (s *BadgerStore) List(ctx context.Context, q models.PartQuery) ([]models.Part, int, error) {
	q = q.Normalize()
	parts, err := s.Fetch(ctx, q.Category, q.Filter)
	if err != nil {
		return nil, 0, err
	}
	window, total := listParts(parts, q)
	return window, total, nil
}

// All returns every part ordered by category then id. Keys sort that way
// already.
func (s *BadgerStore) All(_ context.Context) ([]models.Part, error) {
	if s.db.IsClosed() {
		return nil, ErrStoreClosed
	}
	parts := make([]models.Part, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		return iteratePrefix(txn, []byte(partKeyPrefix), func(p models.Part) {
			parts = append(parts, p)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parts, nil
}

// Count returns the number of parts using a key-only scan.
func (s *BadgerStore) Count(_ context.Context) (int, error) {
	if s.db.IsClosed() {
		return 0, ErrStoreClosed
	}
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(partKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	return n, nil
}

// Stats summarizes the catalog.
func (s *BadgerStore) Stats(ctx context.Context) (*models.CatalogStats, error) {
	parts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(parts), nil
}

// Ping fails once the database is closed.
func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	return nil
}

// Close releases the id sequence and closes the database.
func (s *BadgerStore) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	var errs []error
	if err := s.seq.Release(); err != nil {
		errs = append(errs, fmt.Errorf("release part id sequence: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close badger db: %w", err))
	}
	return errors.Join(errs...)
}

func scanCategory(txn *badger.Txn, category models.Category, filter models.BrandFilter) ([]models.Part, error) {
	parts := make([]models.Part, 0)
	err := iteratePrefix(txn, categoryPrefix(category), func(p models.Part) {
		if filter.Matches(p) {
			parts = append(parts, p)
		}
	})
	return parts, err
}

// iteratePrefix decodes every part stored under prefix in key order.
func iteratePrefix(txn *badger.Txn, prefix []byte, fn func(models.Part)) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var p models.Part
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		}); err != nil {
			return fmt.Errorf("decode %s: %w", item.Key(), err)
		}
		fn(p)
	}
	return nil
}
