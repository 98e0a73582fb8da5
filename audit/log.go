// Package audit implements the append-only audit log on top of a
// regdoc.Store.
package audit

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/regdoc"
	"github.com/fwojciec/regdoc/jsoniter"
	"github.com/google/uuid"
)

var _ regdoc.AuditService = (*Log)(nil)

// Log implements regdoc.AuditService. Entries are held in creation order
// and persisted newest first under regdoc.KeyAuditLog.
type Log struct {
	mu      sync.Mutex
	store   regdoc.Store
	entries []*regdoc.AuditEntry

	// Now returns the timestamp assigned to new entries.
	Now func() time.Time

	// NewID returns the identifier assigned to new entries.
	NewID func() string
}

// NewLog creates a new Log backed by store.
func NewLog(store regdoc.Store) *Log {
	return &Log{
		store: store,
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Open loads the persisted log. A missing key yields an empty log.
func (l *Log) Open(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := l.store.Get(ctx, regdoc.KeyAuditLog)
	if regdoc.ErrorCode(err) == regdoc.ENOTFOUND {
		l.entries = nil
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to load audit log: %w", err)
	}

	var stored []*regdoc.AuditEntry
	if err := jsoniter.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to load audit log: %w", err)
	}
	slices.Reverse(stored)
	l.entries = stored
	return nil
}

// RecordEntry assigns an ID and timestamp and appends the entry. The entry
// is only kept once the whole log has been persisted.
func (l *Log) RecordEntry(ctx context.Context, entry *regdoc.AuditEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *entry
	stored.ID = l.NewID()
	stored.Timestamp = l.Now()

	next := append(slices.Clip(l.entries), &stored)
	if err := l.persist(ctx, next); err != nil {
		return err
	}
	l.entries = next

	entry.ID, entry.Timestamp = stored.ID, stored.Timestamp
	return nil
}

func (l *Log) persist(ctx context.Context, entries []*regdoc.AuditEntry) error {
	newest := slices.Clone(entries)
	slices.Reverse(newest)

	data, err := jsoniter.Marshal(newest)
	if err != nil {
		return err
	}
	if err := l.store.Put(ctx, regdoc.KeyAuditLog, data); err != nil {
		return fmt.Errorf("failed to persist audit log: %w", err)
	}
	return nil
}

// FindEntries retrieves entries matching the filter, newest first.
func (l *Log) FindEntries(ctx context.Context, filter regdoc.AuditFilter) ([]*regdoc.AuditEntry, error) {
	if !filter.Range.Valid() {
		return nil, regdoc.Errorf(regdoc.EINVALID, "invalid date range %q", filter.Range)
	}
	return slices.Collect(l.Entries(filter)), nil
}

// Entries returns a lazy newest-first sequence over the matching entries.
func (l *Log) Entries(filter regdoc.AuditFilter) iter.Seq[*regdoc.AuditEntry] {
	l.mu.Lock()
	entries := l.entries
	if filter.Now.IsZero() {
		filter.Now = l.Now()
	}
	l.mu.Unlock()

	matches := func(yield func(*regdoc.AuditEntry) bool) {
		for _, e := range slices.Backward(entries) {
			if !filter.Match(e) {
				continue
			}
			other := *e
			if !yield(&other) {
				return
			}
		}
	}
	return regdoc.Paginate(matches, filter.Offset, filter.Limit)
}

// FindUserNames returns the distinct user names in the log, ordered by
// their most recent appearance.
func (l *Log) FindUserNames(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	entries := l.entries
	l.mu.Unlock()

	seen := make(map[string]bool)
	var names []string
	for _, e := range slices.Backward(entries) {
		if e.UserName == "" || seen[e.UserName] {
			continue
		}
		seen[e.UserName] = true
		names = append(names, e.UserName)
	}
	return names, nil
}
