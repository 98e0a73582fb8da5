package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/regdoc"
)

// Compile-time interface verification.
var _ regdoc.Store = (*Store)(nil)

// Store implements regdoc.Store using a single key/value table.
// Each value is stored with its xxHash so corrupted rows are detected on read.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// checksum computes xxHash of value and returns hex string.
func checksum(value []byte) string {
	h := xxhash.Sum64(value)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var sum string

	err := s.db.QueryRowContext(ctx, `
		SELECT value, checksum
		FROM kv
		WHERE key = ?
	`, key).Scan(&value, &sum)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, regdoc.Errorf(regdoc.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return nil, err
	}

	if checksum(value) != sum {
		return nil, regdoc.Errorf(regdoc.EINTERNAL, "corrupt value for key %q", key)
	}

	return value, nil
}

// Put replaces the value stored under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return regdoc.Errorf(regdoc.EINVALID, "key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, checksum, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			checksum = excluded.checksum,
			updated_at = excluded.updated_at
	`, key, value, checksum(value), time.Now().UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return err
}
