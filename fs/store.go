package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fwojciec/regdoc"
	"github.com/google/renameio/v2"
)

// Ensure Store implements regdoc.Store at compile time.
var _ regdoc.Store = (*Store)(nil)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store implements regdoc.Store with one <key>.json file per key.
// Values are replaced atomically, so a reader never sees a partially
// written value.
type Store struct {
	dir string
}

// NewStore creates a new Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Open creates the store directory if needed.
func (s *Store) Open() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", regdoc.Errorf(regdoc.EINVALID, "invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	value, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, regdoc.Errorf(regdoc.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put replaces the value stored under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, value, 0644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
