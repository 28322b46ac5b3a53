// Package jsonfile persists each collection as a single JSON array file
// under a base directory. Every mutation is a full read-transform-rewrite
// of the backing file; rewrites go to a sibling temp file that is renamed
// over the destination, so readers never observe a half-written file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bookline/core/internal/domain/entities"
	"github.com/bookline/core/internal/infrastructure/logger"
)

// Collection names backed by the store.
const (
	CustomersCollection    = "customers"
	ServicesCollection     = "services"
	AppointmentsCollection = "appointments"
)

// Collections returns every collection name the store manages.
func Collections() []string {
	return []string{CustomersCollection, ServicesCollection, AppointmentsCollection}
}

// Store owns the base directory and serializes mutations per collection.
// Two concurrent writers on the same collection would otherwise interleave
// their read-modify-write cycles and silently drop one update.
type Store struct {
	dir    string
	logger *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dir. The directory and collection files are
// created lazily on first use; call EnsureFiles for eager initialization.
func New(dir string, log *logger.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: log.WithComponent("jsonfile"),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Dir returns the base directory the store writes under.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureFiles creates the base directory and an empty array file for every
// named collection that does not exist yet.
func (s *Store) EnsureFiles(names ...string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}

	for _, name := range names {
		path := s.path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat collection %s: %w", name, err)
		}

		if err := s.writeFile(name, []byte("[]\n")); err != nil {
			return err
		}
		s.logger.Info("Initialized empty collection", "collection", name, "path", path)
	}

	return nil
}

// HealthCheck verifies the data directory accepts the same write-then-rename
// cycle mutations use.
func (s *Store) HealthCheck() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("data directory not writable: %w", err)
	}

	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe+".tmp", []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("data directory not writable: %w", err)
	}
	if err := os.Rename(probe+".tmp", probe); err != nil {
		return fmt.Errorf("rename not supported in data directory: %w", err)
	}
	return os.Remove(probe)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// lock returns the mutex guarding mutations on the named collection.
func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// readFile returns the raw collection content. A missing file or directory
// reads as an empty array; any other failure surfaces to the caller.
func (s *Store) readFile(name string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return []byte("[]"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	return raw, nil
}

// writeFile commits content atomically: write to a sibling temp path in the
// same directory, fsync, then rename over the destination.
func (s *Store) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}

	path := s.path(name)
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open temp file for collection %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync collection %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file for collection %s: %w", name, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit collection %s: %w", name, err)
	}
	return nil
}

// Collection provides typed CRUD over one collection file. Reads are
// lock-free (the rename discipline guarantees a consistent file); mutations
// take the store's per-collection lock around the read-transform-rewrite
// cycle.
type Collection[T any] struct {
	store    *Store
	name     string
	id       func(*T) string
	notFound error
}

// NewCollection binds a collection file to an entity type. id extracts a
// record's identifier and notFound is the sentinel returned when a lookup
// misses.
func NewCollection[T any](store *Store, name string, id func(*T) string, notFound error) *Collection[T] {
	return &Collection[T]{
		store:    store,
		name:     name,
		id:       id,
		notFound: notFound,
	}
}

func (c *Collection[T]) readAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := c.store.readFile(c.name)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("collection %s is corrupt: %w", c.name, err)
	}
	return records, nil
}

func (c *Collection[T]) writeAll(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.name, err)
	}

	start := time.Now()
	if err := c.store.writeFile(c.name, append(data, '\n')); err != nil {
		return err
	}

	c.store.logger.Debugw("Collection written",
		"collection", c.name,
		"records", len(records),
		"duration_ms", float64(time.Since(start).Nanoseconds())/1e6,
	)
	return nil
}

// List returns the full collection in file order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	records, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// GetByID scans for the record with the given id.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	records, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if c.id(&records[i]) == id {
			return &records[i], nil
		}
	}
	return nil, c.notFound
}

// Insert appends a record and persists the collection. The record's id must
// not already be present.
func (c *Collection[T]) Insert(ctx context.Context, record *T) error {
	lock := c.store.lock(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	id := c.id(record)
	for i := range records {
		if c.id(&records[i]) == id {
			return fmt.Errorf("collection %s already holds id %s: %w", c.name, id, entities.ErrDuplicateID)
		}
	}

	return c.writeAll(append(records, *record))
}

// Update applies the caller's merge to the stored record with the given id
// and persists the result. The whole read-merge-write cycle runs under the
// collection lock, so two concurrent updates to the same collection cannot
// lose each other's writes. An error from apply aborts without writing.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T) error) (*T, error) {
	lock := c.store.lock(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if c.id(&records[i]) != id {
			continue
		}
		if err := apply(&records[i]); err != nil {
			return nil, err
		}
		if err := c.writeAll(records); err != nil {
			return nil, err
		}
		updated := records[i]
		return &updated, nil
	}
	return nil, c.notFound
}

// Delete filters the id out and persists. Deleting an absent id is a no-op
// success, matching the API's idempotent DELETE contract.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	_, err := c.DeleteWhere(ctx, func(record *T) bool {
		return c.id(record) == id
	})
	return err
}

// DeleteWhere drops every record the predicate matches and reports how many
// were removed. The collection is not rewritten when nothing matched.
func (c *Collection[T]) DeleteWhere(ctx context.Context, match func(*T) bool) (int, error) {
	lock := c.store.lock(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.readAll(ctx)
	if err != nil {
		return 0, err
	}

	kept := records[:0]
	removed := 0
	for i := range records {
		if match(&records[i]) {
			removed++
			continue
		}
		kept = append(kept, records[i])
	}

	if removed == 0 {
		return 0, nil
	}
	return removed, c.writeAll(kept)
}

// ReplaceAll unconditionally overwrites the collection content.
func (c *Collection[T]) ReplaceAll(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := c.store.lock(c.name)
	lock.Lock()
	defer lock.Unlock()

	return c.writeAll(records)
}
