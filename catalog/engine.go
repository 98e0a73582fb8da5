// Package catalog holds the in-memory document and FAQ collections and
// writes every change through to a regdoc.Store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/regdoc"
	"github.com/fwojciec/regdoc/bloom"
	"github.com/fwojciec/regdoc/jsoniter"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ regdoc.DocumentService = (*Engine)(nil)
	_ regdoc.FAQService      = (*Engine)(nil)
)

const (
	// expectedIDs is the minimum size of the id guard. The guard grows
	// when more identifiers are recorded.
	expectedIDs = 10000

	idFalsePositiveRate = 0.001

	// maxIDAttempts bounds how many candidates are drawn before giving up.
	maxIDAttempts = 8
)

// Engine implements regdoc.DocumentService and regdoc.FAQService.
//
// Collections are copy-on-write: a mutation builds a new slice, persists it
// and only then replaces the current one, so queries iterate a stable
// snapshot without holding the lock.
type Engine struct {
	mu        sync.Mutex
	store     regdoc.Store
	ids       *bloom.Filter
	documents []*regdoc.Document
	faqs      []*regdoc.FAQ

	// Audit receives an entry for every successful mutation.
	Audit regdoc.AuditService

	// Identity resolves the actor of a mutation. Mutations require an admin.
	Identity regdoc.Identity

	// Notifier receives user feedback. Optional.
	Notifier regdoc.Notifier

	// Now returns the current time. Defaults to UTC wall clock.
	Now func() time.Time

	// NewID returns a candidate identifier. Defaults to a random UUID.
	NewID func() string
}

// NewEngine creates a new Engine backed by store.
func NewEngine(store regdoc.Store) *Engine {
	return &Engine{
		store: store,
		ids:   bloom.NewFilter(expectedIDs, idFalsePositiveRate),
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

// Open loads both collections, seeding the store with the sample dataset
// for any collection that has never been written.
func (e *Engine) Open(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	docs, err := load(ctx, e.store, regdoc.KeyDocuments, seedDocuments)
	if err != nil {
		return err
	}
	faqs, err := load(ctx, e.store, regdoc.KeyFAQs, seedFAQs)
	if err != nil {
		return err
	}

	e.ids = bloom.NewFilter(max(expectedIDs, 2*uint(len(docs)+len(faqs))), idFalsePositiveRate)
	for _, d := range docs {
		e.ids.Add(documentKey(d.ID))
	}
	for _, f := range faqs {
		e.ids.Add(faqKey(f.ID))
	}
	e.documents, e.faqs = docs, faqs
	return nil
}

// load decodes the collection stored under key. An absent key is seeded
// with the result of seed before loading.
func load[T any](ctx context.Context, store regdoc.Store, key string, seed func() []T) ([]T, error) {
	data, err := store.Get(ctx, key)
	if regdoc.ErrorCode(err) == regdoc.ENOTFOUND {
		items := seed()
		if err := put(ctx, store, key, items); err != nil {
			return nil, err
		}
		return items, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var items []T
	if err := jsoniter.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return items, nil
}

func put(ctx context.Context, store regdoc.Store, key string, v any) error {
	data, err := jsoniter.Marshal(v)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// commit writes next under key and swaps it into *cur, then records entry.
// A store failure leaves *cur untouched. An audit failure restores the
// previous collection in memory and in the store. On failure the returned
// notice describes the error to the user.
// Must be called with e.mu held.
func commit[T any](ctx context.Context, e *Engine, key string, cur *[]T, next []T, entry *regdoc.AuditEntry) (notice, error) {
	if err := put(ctx, e.store, key, next); err != nil {
		return notice{regdoc.NotifyError, "Failed to save changes."}, err
	}

	prev := *cur
	*cur = next

	if e.Audit == nil {
		return notice{}, nil
	}
	if err := e.Audit.RecordEntry(ctx, entry); err != nil {
		*cur = prev
		if rerr := put(ctx, e.store, key, prev); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return notice{regdoc.NotifyError, "Failed to record audit entry."}, fmt.Errorf("failed to record audit entry: %w", err)
	}
	return notice{}, nil
}

// authorize returns the current user if they may change the catalog.
func (e *Engine) authorize(ctx context.Context) (*regdoc.User, error) {
	if e.Identity == nil {
		return nil, regdoc.Errorf(regdoc.EUNAUTHORIZED, "not signed in")
	}
	user, err := e.Identity.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, regdoc.Errorf(regdoc.EUNAUTHORIZED, "administrator role required")
	}
	return user, nil
}

// issueID draws identifiers until one has never been issued in this
// process or loaded from the store. taken reports ids that are currently
// in use. Must be called with e.mu held.
func (e *Engine) issueID(scope func(string) string, taken func(string) bool) (string, error) {
	for range maxIDAttempts {
		id := e.NewID()
		if id == "" || taken(id) {
			continue
		}
		if e.ids.TestAndAdd(scope(id)) {
			continue
		}
		return id, nil
	}
	return "", regdoc.Errorf(regdoc.EINTERNAL, "could not allocate a unique id")
}

// notice is user feedback collected while e.mu is held and published once
// it is released, so subscribers may read the catalog.
type notice struct {
	kind    regdoc.NotificationKind
	message string
}

func (e *Engine) publish(n *notice) {
	if e.Notifier != nil && n.message != "" {
		e.Notifier.Publish(n.kind, n.message)
	}
}

func (e *Engine) entry(actor *regdoc.User, action, resource, details string) *regdoc.AuditEntry {
	return &regdoc.AuditEntry{
		UserID:   actor.ID,
		UserName: actor.Name,
		Action:   action,
		Resource: resource,
		Details:  details,
	}
}

func documentKey(id string) string { return "document:" + id }
func faqKey(id string) string      { return "faq:" + id }

func indexOf[T any](items []T, id func(T) string, want string) int {
	return slices.IndexFunc(items, func(v T) bool { return id(v) == want })
}
