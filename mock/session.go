package mock

import (
	"context"

	"github.com/fwojciec/regdoc"
)

var _ regdoc.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of regdoc.SessionService.
type SessionService struct {
	CurrentUserFn   func(ctx context.Context) (*regdoc.User, error)
	LoginFn         func(ctx context.Context, email, password string) (*regdoc.User, error)
	LogoutFn        func(ctx context.Context) error
	RegisterFn      func(ctx context.Context, user *regdoc.User) error
	UpdateProfileFn func(ctx context.Context, upd regdoc.UserUpdate) (*regdoc.User, error)
}

func (s *SessionService) CurrentUser(ctx context.Context) (*regdoc.User, error) {
	return s.CurrentUserFn(ctx)
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*regdoc.User, error) {
	return s.LoginFn(ctx, email, password)
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.LogoutFn(ctx)
}

func (s *SessionService) Register(ctx context.Context, user *regdoc.User) error {
	return s.RegisterFn(ctx, user)
}

func (s *SessionService) UpdateProfile(ctx context.Context, upd regdoc.UserUpdate) (*regdoc.User, error) {
	return s.UpdateProfileFn(ctx, upd)
}

var _ regdoc.Identity = (*Identity)(nil)

// Identity is a mock implementation of regdoc.Identity.
type Identity struct {
	CurrentUserFn func(ctx context.Context) (*regdoc.User, error)
}

func (i *Identity) CurrentUser(ctx context.Context) (*regdoc.User, error) {
	return i.CurrentUserFn(ctx)
}
