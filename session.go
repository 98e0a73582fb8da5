package regdoc

import (
	"context"
	"slices"
)

// Role is the permission level of a user.
type Role string

// Role constants.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a locally registered portal user.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          Role     `json:"role"`
	Organization  string   `json:"organization,omitempty"`
	Subscriptions []string `json:"subscriptions"`
}

// Validate returns an error if the user contains invalid fields.
func (u *User) Validate() error {
	if u.Name == "" {
		return Errorf(EINVALID, "user name required")
	}
	if u.Email == "" {
		return Errorf(EINVALID, "user email required")
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return Errorf(EINVALID, "invalid user role %q", u.Role)
	}
	return nil
}

// IsAdmin reports whether the user may change the catalog.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate represents profile fields the signed-in user may change.
type UserUpdate struct {
	Name          *string   `json:"name"`
	Organization  *string   `json:"organization"`
	Subscriptions *[]string `json:"subscriptions"`
}

// Validate returns an error if any set field is invalid.
func (u *UserUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return Errorf(EINVALID, "user name required")
	}
	if u.Subscriptions != nil {
		for _, sub := range *u.Subscriptions {
			if !Category(sub).Valid() {
				return Errorf(EINVALID, "invalid subscription %q", sub)
			}
		}
	}
	return nil
}

// Apply merges the set fields into user and reports whether any value
// changed. Repeated subscriptions are kept once.
func (u *UserUpdate) Apply(user *User) bool {
	changed := applyField(&user.Name, u.Name)
	changed = applyField(&user.Organization, u.Organization) || changed
	if u.Subscriptions != nil {
		subs := make([]string, 0, len(*u.Subscriptions))
		for _, sub := range *u.Subscriptions {
			if !slices.Contains(subs, sub) {
				subs = append(subs, sub)
			}
		}
		changed = applyList(&user.Subscriptions, &subs) || changed
	}
	return changed
}

// Identity supplies the actor recorded in audit entries.
type Identity interface {
	// CurrentUser returns the signed-in user.
	// Returns EUNAUTHORIZED if nobody is signed in.
	CurrentUser(ctx context.Context) (*User, error)
}

// SessionService manages the local sign-in state.
type SessionService interface {
	Identity

	// Login signs in the user with the given credentials.
	// Returns EUNAUTHORIZED if the credentials are not recognized.
	Login(ctx context.Context, email, password string) (*User, error)

	// Logout signs out the current user. It is a no-op without a session.
	Logout(ctx context.Context) error

	// Register adds a new user and signs them in.
	// Returns ECONFLICT if the email is already registered.
	Register(ctx context.Context, user *User) error

	// UpdateProfile changes the signed-in user's profile.
	// Returns EUNAUTHORIZED if nobody is signed in.
	UpdateProfile(ctx context.Context, upd UserUpdate) (*User, error)
}
