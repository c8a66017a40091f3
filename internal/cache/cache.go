// Package cache is the client's local snapshot store. Each key holds a
// JSON-serialized copy of the last successfully fetched data, read back
// as a fallback when the network is unavailable.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Snapshot keys used by the app state.
const (
	KeySettings     = "app_settings"
	KeyCategories   = "categories"
	KeyTransactions = "transactions"
)

// ErrMiss is returned when a key has no stored snapshot.
var ErrMiss = errors.New("cache miss")

// Store is a file-backed key-value snapshot store. One key maps to one
// JSON file under the store directory. It is not safe for concurrent
// use; the client runs a single UI-driven update cycle at a time.
type Store struct {
	dir string
}

// NewStore creates (if needed) the directory backing the store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Put serializes value and replaces the snapshot for key.
func (s *Store) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling snapshot %q: %w", key, err)
	}

	// Write-then-rename so a crash never leaves a truncated snapshot.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replacing snapshot %q: %w", key, err)
	}
	return nil
}

// Get reads the snapshot for key into out. Returns ErrMiss when the
// key has never been written.
func (s *Store) Get(key string, out interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrMiss
		}
		return fmt.Errorf("reading snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing snapshot %q: %w", key, err)
	}
	return nil
}
