package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/regdoc"
	"github.com/fwojciec/regdoc/catalog"
	"github.com/fwojciec/regdoc/mock"
	"github.com/fwojciec/regdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = &regdoc.User{ID: "1", Name: "System Administrator", Email: "admin@gov.bw", Role: regdoc.RoleAdmin}

func ptr[T any](v T) *T { return &v }

// harness wires an Engine to a real SQLite store and recording collaborators.
type harness struct {
	engine  *catalog.Engine
	store   regdoc.Store
	now     time.Time
	user    *regdoc.User
	entries []*regdoc.AuditEntry
	notes   []string

	failPut   bool
	failAudit bool
	puts      int
}

func setupTestStore(t *testing.T) regdoc.Store {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return sqlite.NewStore(db)
}

func newHarness(t *testing.T, store regdoc.Store) *harness {
	t.Helper()

	h := &harness{
		store: store,
		now:   time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC),
		user:  admin,
	}
	wrapped := &mock.Store{
		GetFn: store.Get,
		PutFn: func(ctx context.Context, key string, value []byte) error {
			if h.failPut {
				return errors.New("disk full")
			}
			h.puts++
			return store.Put(ctx, key, value)
		},
		DeleteFn: store.Delete,
	}

	h.engine = catalog.NewEngine(wrapped)
	h.engine.Now = func() time.Time { return h.now }
	h.engine.Identity = &mock.Identity{
		CurrentUserFn: func(context.Context) (*regdoc.User, error) {
			if h.user == nil {
				return nil, regdoc.Errorf(regdoc.EUNAUTHORIZED, "not signed in")
			}
			return h.user, nil
		},
	}
	h.engine.Audit = &mock.AuditService{
		RecordEntryFn: func(_ context.Context, entry *regdoc.AuditEntry) error {
			if h.failAudit {
				return errors.New("audit unavailable")
			}
			h.entries = append(h.entries, entry)
			return nil
		},
	}
	h.engine.Notifier = &mock.Notifier{
		PublishFn: func(kind regdoc.NotificationKind, message string) {
			h.notes = append(h.notes, fmt.Sprintf("%s: %s", kind, message))
		},
	}
	require.NoError(t, h.engine.Open(context.Background()))
	h.puts = 0
	return h
}

// reopen loads the persisted collections into a fresh engine.
func reopen(t *testing.T, store regdoc.Store) *catalog.Engine {
	t.Helper()
	e := catalog.NewEngine(store)
	require.NoError(t, e.Open(context.Background()))
	return e
}

func TestEngine_Open(t *testing.T) {
	t.Parallel()

	t.Run("seeds empty store with sample data", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		e := catalog.NewEngine(store)

		require.NoError(t, e.Open(ctx))

		docs, err := e.FindDocuments(ctx, regdoc.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "Banking Act", docs[0].Title)
		assert.Equal(t, "Insurance Industry Act", docs[1].Title)
		assert.Equal(t, "Anti-Money Laundering Guidelines", docs[2].Title)

		faqs, err := e.FindFAQs(ctx, regdoc.FAQFilter{})
		require.NoError(t, err)
		assert.Len(t, faqs, 2)

		_, err = store.Get(ctx, regdoc.KeyDocuments)
		assert.NoError(t, err, "seed is persisted")
		_, err = store.Get(ctx, regdoc.KeyFAQs)
		assert.NoError(t, err, "seed is persisted")
	})

	t.Run("does not reseed an emptied collection", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		require.NoError(t, store.Put(ctx, regdoc.KeyDocuments, []byte(`[]`)))

		e := reopen(t, store)

		docs, err := e.FindDocuments(ctx, regdoc.DocumentFilter{})
		require.NoError(t, err)
		assert.Empty(t, docs)

		faqs, err := e.FindFAQs(ctx, regdoc.FAQFilter{})
		require.NoError(t, err)
		assert.Len(t, faqs, 2, "missing faqs key is still seeded")
	})

	t.Run("returns error for undecodable snapshot", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		require.NoError(t, store.Put(ctx, regdoc.KeyDocuments, []byte(`{not json`)))

		err := catalog.NewEngine(store).Open(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "documents")
	})

	t.Run("returns store error", func(t *testing.T) {
		t.Parallel()

		store := &mock.Store{
			GetFn: func(context.Context, string) ([]byte, error) {
				return nil, errors.New("io error")
			},
		}

		err := catalog.NewEngine(store).Open(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "io error")
	})
}

func TestEngine_CreateDocument_LargeCatalog(t *testing.T) {
	t.Parallel()

	const loaded = 100000

	ctx := context.Background()
	store := setupTestStore(t)

	var faqs strings.Builder
	faqs.WriteByte('[')
	for i := range loaded {
		if i > 0 {
			faqs.WriteByte(',')
		}
		fmt.Fprintf(&faqs, `{"id":"faq-%d"}`, i)
	}
	faqs.WriteByte(']')
	require.NoError(t, store.Put(ctx, regdoc.KeyFAQs, []byte(faqs.String())))

	h := newHarness(t, store)

	for i := range 40 {
		err := h.engine.CreateDocument(ctx, newDocument(fmt.Sprintf("Circular %d", i)))
		require.NoError(t, err, "create %d", i)
	}

	docs, err := h.engine.FindDocuments(ctx, regdoc.DocumentFilter{})
	require.NoError(t, err)
	assert.Len(t, docs, 43)
}
