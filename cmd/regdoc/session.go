package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/regdoc"
)

// Run executes the login command.
func (c *LoginCmd) Run(deps *Dependencies) error {
	user, err := deps.Session.Login(deps.Ctx, c.Email, c.Password)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	fmt.Fprintf(deps.Stdout, "Signed in as %s (%s)\n", user.Name, user.Role)
	return nil
}

// Run executes the logout command.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	if err := deps.Session.Logout(deps.Ctx); err != nil {
		return reportError(deps.Stderr, err)
	}
	fmt.Fprintln(deps.Stdout, "Signed out")
	return nil
}

// Run executes the whoami command.
func (c *WhoamiCmd) Run(deps *Dependencies) error {
	user, err := deps.Session.CurrentUser(deps.Ctx)
	if regdoc.ErrorCode(err) == regdoc.EUNAUTHORIZED {
		fmt.Fprintln(deps.Stdout, "Not signed in. Use 'regdoc login' to sign in.")
		return nil
	} else if err != nil {
		return reportError(deps.Stderr, err)
	}

	printUser(deps.Stdout, user)
	return nil
}

func printUser(w io.Writer, user *regdoc.User) {
	fmt.Fprintf(w, "%s <%s>\nRole: %s\n", user.Name, user.Email, user.Role)
	if user.Organization != "" {
		fmt.Fprintf(w, "Organization: %s\n", user.Organization)
	}
	if len(user.Subscriptions) > 0 {
		fmt.Fprintf(w, "Subscriptions: %s\n", strings.Join(user.Subscriptions, ", "))
	}
}

// Run executes the register command.
func (c *RegisterCmd) Run(deps *Dependencies) error {
	user := &regdoc.User{
		Name:         c.Name,
		Email:        c.Email,
		Organization: c.Organization,
		Role:         regdoc.Role(c.Role),
	}
	if err := deps.Session.Register(deps.Ctx, user); err != nil {
		return reportError(deps.Stderr, err)
	}
	fmt.Fprintf(deps.Stdout, "Registered and signed in as %s\n", user.Name)
	return nil
}

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	var upd regdoc.UserUpdate
	if c.Name != "" {
		upd.Name = &c.Name
	}
	if c.Organization != "" {
		upd.Organization = &c.Organization
	}
	if c.NoSubscriptions {
		upd.Subscriptions = &[]string{}
	} else if len(c.Subscribe) > 0 {
		upd.Subscriptions = &c.Subscribe
	}

	var user *regdoc.User
	var err error
	if upd == (regdoc.UserUpdate{}) {
		user, err = deps.Session.CurrentUser(deps.Ctx)
	} else {
		user, err = deps.Session.UpdateProfile(deps.Ctx, upd)
	}
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	printUser(deps.Stdout, user)
	return nil
}
