package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/regdoc"
)

// Ensure LoggingStore implements regdoc.Store.
var _ regdoc.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with debug logging of every access.
type LoggingStore struct {
	next   regdoc.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next regdoc.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Get delegates to the wrapped store and logs the operation. Absent keys
// are not logged as errors.
func (s *LoggingStore) Get(ctx context.Context, key string) (value []byte, err error) {
	defer func(begin time.Time) {
		attrs := []any{"key", key, "bytes", len(value), "duration", time.Since(begin)}
		if err != nil && regdoc.ErrorCode(err) != regdoc.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		s.logger.Debug("store get", attrs...)
	}(time.Now())
	return s.next.Get(ctx, key)
}

// Put delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Put(ctx context.Context, key string, value []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store put",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Put(ctx, key, value)
}

// Delete delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Delete(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store delete", "key", key, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Delete(ctx, key)
}
