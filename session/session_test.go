package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/regdoc"
	"github.com/fwojciec/regdoc/fs"
	"github.com/fwojciec/regdoc/mock"
	"github.com/fwojciec/regdoc/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func setupTestStore(t *testing.T) *fs.Store {
	t.Helper()
	store := fs.NewStore(t.TempDir())
	require.NoError(t, store.Open())
	return store
}

// newService returns an opened Service that appends audit entries to *entries.
func newService(t *testing.T, store regdoc.Store, entries *[]*regdoc.AuditEntry) *session.Service {
	t.Helper()
	s := session.NewService(store)
	s.Audit = &mock.AuditService{
		RecordEntryFn: func(_ context.Context, e *regdoc.AuditEntry) error {
			*entries = append(*entries, e)
			return nil
		},
	}
	require.NoError(t, s.Open(context.Background()))
	return s
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	t.Run("accepts demo administrator", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		user, err := s.Login(ctx, "admin@gov.bw", "admin123")

		require.NoError(t, err)
		assert.Equal(t, "System Administrator", user.Name)
		assert.True(t, user.IsAdmin())

		current, err := s.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, current)

		require.Len(t, entries, 1)
		assert.Equal(t, regdoc.ActionLogin, entries[0].Action)
		assert.Equal(t, regdoc.ResourceSession, entries[0].Resource)
		assert.Equal(t, "1", entries[0].UserID)
	})

	t.Run("rejects wrong password for demo administrator", func(t *testing.T) {
		t.Parallel()

		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		_, err := s.Login(context.Background(), "admin@gov.bw", "wrong")

		require.Error(t, err)
		assert.Equal(t, regdoc.EUNAUTHORIZED, regdoc.ErrorCode(err))
		assert.Empty(t, entries)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		t.Parallel()

		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		_, err := s.Login(context.Background(), "nobody@example.com", "secret")

		require.Error(t, err)
		assert.Equal(t, regdoc.EUNAUTHORIZED, regdoc.ErrorCode(err))
	})

	t.Run("session survives restart", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		var entries []*regdoc.AuditEntry
		_, err := newService(t, store, &entries).Login(ctx, "admin@gov.bw", "admin123")
		require.NoError(t, err)

		user, err := newService(t, store, &entries).CurrentUser(ctx)

		require.NoError(t, err)
		assert.Equal(t, "admin@gov.bw", user.Email)
	})

	t.Run("stays signed out when audit fails", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		s := session.NewService(store)
		s.Audit = &mock.AuditService{
			RecordEntryFn: func(context.Context, *regdoc.AuditEntry) error {
				return errors.New("audit unavailable")
			},
		}
		require.NoError(t, s.Open(ctx))

		_, err := s.Login(ctx, "admin@gov.bw", "admin123")
		require.Error(t, err)

		_, err = s.CurrentUser(ctx)
		assert.Equal(t, regdoc.EUNAUTHORIZED, regdoc.ErrorCode(err))
		_, err = store.Get(ctx, regdoc.KeyUser)
		assert.Equal(t, regdoc.ENOTFOUND, regdoc.ErrorCode(err))
	})
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	t.Run("records entry and clears session", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		var entries []*regdoc.AuditEntry
		s := newService(t, store, &entries)
		_, err := s.Login(ctx, "admin@gov.bw", "admin123")
		require.NoError(t, err)

		require.NoError(t, s.Logout(ctx))

		_, err = s.CurrentUser(ctx)
		assert.Equal(t, regdoc.EUNAUTHORIZED, regdoc.ErrorCode(err))
		_, err = store.Get(ctx, regdoc.KeyUser)
		assert.Equal(t, regdoc.ENOTFOUND, regdoc.ErrorCode(err))

		require.Len(t, entries, 2)
		assert.Equal(t, regdoc.ActionLogout, entries[1].Action)
		assert.Equal(t, "System Administrator", entries[1].UserName)
	})

	t.Run("stays signed in without an entry when the session cannot be ended", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		failing := &mock.Store{
			GetFn: store.Get,
			PutFn: store.Put,
			DeleteFn: func(context.Context, string) error {
				return errors.New("disk error")
			},
		}
		var entries []*regdoc.AuditEntry
		s := newService(t, failing, &entries)
		_, err := s.Login(ctx, "admin@gov.bw", "admin123")
		require.NoError(t, err)

		require.Error(t, s.Logout(ctx))
		require.Error(t, s.Logout(ctx))

		_, err = s.CurrentUser(ctx)
		assert.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, regdoc.ActionLogin, entries[0].Action)
	})

	t.Run("restores the session when the entry cannot be recorded", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		failAudit := false
		s := session.NewService(store)
		s.Audit = &mock.AuditService{
			RecordEntryFn: func(context.Context, *regdoc.AuditEntry) error {
				if failAudit {
					return errors.New("audit unavailable")
				}
				return nil
			},
		}
		require.NoError(t, s.Open(ctx))
		_, err := s.Login(ctx, "admin@gov.bw", "admin123")
		require.NoError(t, err)

		failAudit = true
		require.Error(t, s.Logout(ctx))

		_, err = s.CurrentUser(ctx)
		assert.NoError(t, err)
		_, err = store.Get(ctx, regdoc.KeyUser)
		assert.NoError(t, err, "persisted session is restored")
	})

	t.Run("is a no-op without a session", func(t *testing.T) {
		t.Parallel()

		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		require.NoError(t, s.Logout(context.Background()))
		assert.Empty(t, entries)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("adds user and signs them in", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		var entries []*regdoc.AuditEntry
		s := newService(t, store, &entries)

		user := &regdoc.User{Name: "Compliance Officer", Email: "officer@bank.co.bw", Organization: "First Bank"}
		require.NoError(t, s.Register(ctx, user))

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, regdoc.RoleUser, user.Role)
		assert.Equal(t, []string{}, user.Subscriptions)

		current, err := s.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user.ID, current.ID)

		require.NoError(t, s.Logout(ctx))
		again, err := newService(t, store, &entries).Login(ctx, "officer@bank.co.bw", "")
		require.NoError(t, err)
		assert.Equal(t, user.ID, again.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)
		require.NoError(t, s.Register(ctx, &regdoc.User{Name: "A", Email: "a@example.com"}))

		err := s.Register(ctx, &regdoc.User{Name: "B", Email: "A@example.com"})

		require.Error(t, err)
		assert.Equal(t, regdoc.ECONFLICT, regdoc.ErrorCode(err))
	})

	t.Run("rejects demo administrator email", func(t *testing.T) {
		t.Parallel()

		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		err := s.Register(context.Background(), &regdoc.User{Name: "Fake", Email: "admin@gov.bw", Role: regdoc.RoleAdmin})

		require.Error(t, err)
		assert.Equal(t, regdoc.ECONFLICT, regdoc.ErrorCode(err))
	})

	t.Run("rejects missing name", func(t *testing.T) {
		t.Parallel()

		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		err := s.Register(context.Background(), &regdoc.User{Email: "x@example.com"})

		require.Error(t, err)
		assert.Equal(t, regdoc.EINVALID, regdoc.ErrorCode(err))
	})
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("updates registered user in session and registry", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		var entries []*regdoc.AuditEntry
		s := newService(t, store, &entries)
		var notes []string
		s.Notifier = &mock.Notifier{
			PublishFn: func(kind regdoc.NotificationKind, message string) {
				notes = append(notes, string(kind)+": "+message)
			},
		}
		require.NoError(t, s.Register(ctx, &regdoc.User{Name: "Officer", Email: "officer@bank.co.bw"}))

		subs := []string{"banking", "insurance", "banking"}
		user, err := s.UpdateProfile(ctx, regdoc.UserUpdate{
			Organization:  ptr("First Bank"),
			Subscriptions: &subs,
		})

		require.NoError(t, err)
		assert.Equal(t, "Officer", user.Name)
		assert.Equal(t, "First Bank", user.Organization)
		assert.Equal(t, []string{"banking", "insurance"}, user.Subscriptions)
		assert.Equal(t, []string{"success: Profile updated successfully"}, notes)

		require.NoError(t, s.Logout(ctx))
		again, err := newService(t, store, &entries).Login(ctx, "officer@bank.co.bw", "")
		require.NoError(t, err)
		assert.Equal(t, "First Bank", again.Organization)
		assert.Equal(t, []string{"banking", "insurance"}, again.Subscriptions)
	})

	t.Run("updates demo administrator session", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		var entries []*regdoc.AuditEntry
		s := newService(t, store, &entries)
		_, err := s.Login(ctx, "admin@gov.bw", "admin123")
		require.NoError(t, err)

		_, err = s.UpdateProfile(ctx, regdoc.UserUpdate{Name: ptr("Registrar")})
		require.NoError(t, err)

		current, err := newService(t, store, &entries).CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Registrar", current.Name)

		_, err = store.Get(ctx, regdoc.KeyUsers)
		assert.Equal(t, regdoc.ENOTFOUND, regdoc.ErrorCode(err), "registry is untouched")
	})

	t.Run("rejects unknown subscription", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)
		_, err := s.Login(ctx, "admin@gov.bw", "admin123")
		require.NoError(t, err)

		subs := []string{"crypto"}
		_, err = s.UpdateProfile(ctx, regdoc.UserUpdate{Subscriptions: &subs})

		assert.Equal(t, regdoc.EINVALID, regdoc.ErrorCode(err))
	})

	t.Run("requires a session", func(t *testing.T) {
		t.Parallel()

		var entries []*regdoc.AuditEntry
		s := newService(t, setupTestStore(t), &entries)

		_, err := s.UpdateProfile(context.Background(), regdoc.UserUpdate{Name: ptr("Nobody")})

		assert.Equal(t, regdoc.EUNAUTHORIZED, regdoc.ErrorCode(err))
	})

	t.Run("keeps previous profile when the store fails", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := setupTestStore(t)
		failPut := false
		wrapped := &mock.Store{
			GetFn: store.Get,
			PutFn: func(ctx context.Context, key string, value []byte) error {
				if failPut && key == regdoc.KeyUser {
					return errors.New("disk full")
				}
				return store.Put(ctx, key, value)
			},
			DeleteFn: store.Delete,
		}
		var entries []*regdoc.AuditEntry
		s := newService(t, wrapped, &entries)
		require.NoError(t, s.Register(ctx, &regdoc.User{Name: "Officer", Email: "officer@bank.co.bw"}))

		failPut = true
		_, err := s.UpdateProfile(ctx, regdoc.UserUpdate{Name: ptr("Renamed")})
		require.Error(t, err)

		current, err := s.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Officer", current.Name)

		failPut = false
		require.NoError(t, s.Logout(ctx))
		again, err := newService(t, store, &entries).Login(ctx, "officer@bank.co.bw", "")
		require.NoError(t, err)
		assert.Equal(t, "Officer", again.Name, "registry is restored")
	})
}
