// Package store persists WorthIt's two records as JSON files.
//
// The layout is one file per logical key under a data directory. Reads
// never fail outward: a missing or unreadable blob yields that record's
// default (no profile, empty history) so one corrupt file cannot take
// the other record down with it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Makepad-fr/worthit/internal/model"
)

// Logical record keys.
const (
	KeyUser  = "user"
	KeyItems = "items"
)

// Store is a file-per-key record store. Single process, no locking;
// fine for a local single-user app.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw blob for key. The second result reports presence;
// a missing blob is not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return b, true, nil
}

// Set writes the raw blob for key.
func (s *Store) Set(key string, b []byte) error {
	if err := os.WriteFile(s.path(key), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// RemoveMany deletes the blobs for the given keys. Missing blobs are
// skipped; the first real failure wins.
func (s *Store) RemoveMany(keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

// LoadUser reads the income profile, or nil when absent or unreadable.
func (s *Store) LoadUser() *model.User {
	raw, ok, err := s.Get(KeyUser)
	if err != nil {
		s.log.Warn("user blob unreadable, starting unconfigured", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn("user blob malformed, starting unconfigured", "error", err)
		return nil
	}
	return &u
}

// SaveUser overwrites the income profile wholesale.
func (s *Store) SaveUser(u model.User) error {
	b, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.Set(KeyUser, b)
}

// LoadItems reads the item history, or an empty slice when absent or
// unreadable.
func (s *Store) LoadItems() []model.Item {
	raw, ok, err := s.Get(KeyItems)
	if err != nil {
		s.log.Warn("items blob unreadable, starting empty", "error", err)
		return []model.Item{}
	}
	if !ok {
		return []model.Item{}
	}
	var items []model.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("items blob malformed, starting empty", "error", err)
		return []model.Item{}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items
}

// SaveItems overwrites the item history wholesale.
func (s *Store) SaveItems(items []model.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	return s.Set(KeyItems, b)
}

// ClearAll removes both records.
func (s *Store) ClearAll() error {
	return s.RemoveMany(KeyUser, KeyItems)
}

// LoadState reads both records concurrently. Each record degrades to its
// default independently, so LoadState itself cannot fail.
func (s *Store) LoadState(ctx context.Context) model.AppState {
	var st model.AppState
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		st.User = s.LoadUser()
		return nil
	})
	g.Go(func() error {
		st.Items = s.LoadItems()
		return nil
	})
	_ = g.Wait()
	return st
}
