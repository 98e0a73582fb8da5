// Package session keeps the locally signed-in user and the registry of
// users in a regdoc.Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/fwojciec/regdoc"
	"github.com/fwojciec/regdoc/jsoniter"
	"github.com/google/uuid"
)

var _ regdoc.SessionService = (*Service)(nil)

// Demo administrator credentials accepted when no registered user matches.
const (
	DemoAdminEmail    = "admin@gov.bw"
	DemoAdminPassword = "admin123"
)

func demoAdmin() *regdoc.User {
	return &regdoc.User{
		ID:            "1",
		Name:          "System Administrator",
		Email:         DemoAdminEmail,
		Role:          regdoc.RoleAdmin,
		Organization:  "Bank of Botswana",
		Subscriptions: []string{},
	}
}

// Service implements regdoc.SessionService.
type Service struct {
	mu      sync.Mutex
	store   regdoc.Store
	current *regdoc.User
	users   []*regdoc.User

	// Audit receives LOGIN and LOGOUT entries. Optional.
	Audit regdoc.AuditService

	// Notifier receives profile feedback. Optional.
	Notifier regdoc.Notifier

	// NewID returns the identifier assigned to registered users.
	NewID func() string
}

// NewService creates a new Service backed by store.
func NewService(store regdoc.Store) *Service {
	return &Service{
		store: store,
		NewID: uuid.NewString,
	}
}

// Open loads the current session and the registered users.
func (s *Service) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *regdoc.User
	if err := s.load(ctx, regdoc.KeyUser, &current); err != nil {
		return err
	}
	var users []*regdoc.User
	if err := s.load(ctx, regdoc.KeyUsers, &users); err != nil {
		return err
	}
	s.current, s.users = current, users
	return nil
}

func (s *Service) load(ctx context.Context, key string, v any) error {
	data, err := s.store.Get(ctx, key)
	if regdoc.ErrorCode(err) == regdoc.ENOTFOUND {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := jsoniter.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	return nil
}

func (s *Service) put(ctx context.Context, key string, v any) error {
	data, err := jsoniter.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// CurrentUser returns the signed-in user.
func (s *Service) CurrentUser(ctx context.Context) (*regdoc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, regdoc.Errorf(regdoc.EUNAUTHORIZED, "not signed in")
	}
	return clone(s.current), nil
}

// Login signs in a registered user by email, or the demo administrator.
// Registered users carry no password.
func (s *Service) Login(ctx context.Context, email, password string) (*regdoc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findByEmail(email)
	if user == nil && strings.EqualFold(email, DemoAdminEmail) && password == DemoAdminPassword {
		user = demoAdmin()
	}
	if user == nil {
		return nil, regdoc.Errorf(regdoc.EUNAUTHORIZED, "invalid email or password")
	}

	if err := s.signIn(ctx, user, "User logged in"); err != nil {
		return nil, err
	}
	return clone(user), nil
}

// signIn persists user as the current session and records the LOGIN entry.
// Must be called with s.mu held.
func (s *Service) signIn(ctx context.Context, user *regdoc.User, details string) error {
	prev := s.current
	if err := s.put(ctx, regdoc.KeyUser, user); err != nil {
		return err
	}
	s.current = clone(user)

	if err := s.record(ctx, user, regdoc.ActionLogin, details); err != nil {
		s.current = prev
		if rerr := s.restore(ctx, prev); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

func (s *Service) restore(ctx context.Context, prev *regdoc.User) error {
	if prev == nil {
		return s.store.Delete(ctx, regdoc.KeyUser)
	}
	return s.put(ctx, regdoc.KeyUser, prev)
}

// Logout ends the session and records the LOGOUT entry. The session is
// restored if the entry cannot be recorded.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current
	if prev == nil {
		return nil
	}
	if err := s.store.Delete(ctx, regdoc.KeyUser); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.current = nil

	if err := s.record(ctx, prev, regdoc.ActionLogout, "User logged out"); err != nil {
		s.current = prev
		if rerr := s.restore(ctx, prev); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

// Register adds a user and signs them in. The role defaults to RoleUser.
func (s *Service) Register(ctx context.Context, user *regdoc.User) error {
	if user.Role == "" {
		user.Role = regdoc.RoleUser
	}
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmail(user.Email) != nil || strings.EqualFold(user.Email, DemoAdminEmail) {
		return regdoc.Errorf(regdoc.ECONFLICT, "email %q already registered", user.Email)
	}

	stored := clone(user)
	stored.ID = s.NewID()
	stored.Subscriptions = []string{}

	next := append(slices.Clip(s.users), stored)
	if err := s.put(ctx, regdoc.KeyUsers, next); err != nil {
		return err
	}
	s.users = next

	user.ID, user.Subscriptions = stored.ID, stored.Subscriptions
	return s.signIn(ctx, stored, "User registered")
}

// UpdateProfile changes the name, organization or subscriptions of the
// signed-in user. Registered users are updated in the registry as well.
func (s *Service) UpdateProfile(ctx context.Context, upd regdoc.UserUpdate) (*regdoc.User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.updateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.Publish(regdoc.NotifySuccess, "Profile updated successfully")
	}
	return updated, nil
}

func (s *Service) updateProfile(ctx context.Context, upd regdoc.UserUpdate) (*regdoc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, regdoc.Errorf(regdoc.EUNAUTHORIZED, "not signed in")
	}
	user := clone(s.current)
	if !upd.Apply(user) {
		return user, nil
	}

	users := s.users
	i := slices.IndexFunc(s.users, func(u *regdoc.User) bool { return u.ID == user.ID })
	if i >= 0 {
		users = slices.Clone(s.users)
		users[i] = clone(user)
		if err := s.put(ctx, regdoc.KeyUsers, users); err != nil {
			return nil, err
		}
	}
	if err := s.put(ctx, regdoc.KeyUser, user); err != nil {
		if i >= 0 {
			if rerr := s.put(ctx, regdoc.KeyUsers, s.users); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		return nil, err
	}

	s.current, s.users = clone(user), users
	return user, nil
}

func (s *Service) findByEmail(email string) *regdoc.User {
	i := slices.IndexFunc(s.users, func(u *regdoc.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if i < 0 {
		return nil
	}
	return s.users[i]
}

func (s *Service) record(ctx context.Context, user *regdoc.User, action, details string) error {
	if s.Audit == nil {
		return nil
	}
	return s.Audit.RecordEntry(ctx, &regdoc.AuditEntry{
		UserID:   user.ID,
		UserName: user.Name,
		Action:   action,
		Resource: regdoc.ResourceSession,
		Details:  details,
	})
}

func clone(u *regdoc.User) *regdoc.User {
	other := *u
	other.Subscriptions = slices.Clone(u.Subscriptions)
	return &other
}
