package main

import (
	"context"
	"io"

	"github.com/fwojciec/regdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Documents regdoc.DocumentService
	FAQs      regdoc.FAQService
	Audit     regdoc.AuditService
	Session   regdoc.SessionService
	NewWriter func(dir string) regdoc.DocumentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Store   string `enum:"sqlite,fs" default:"sqlite" help:"Storage backend (sqlite or fs)"`
	Verbose bool   `short:"v" help:"Log service calls to stderr"`

	Search SearchCmd `cmd:"" help:"Search documents"`
	Show   ShowCmd   `cmd:"" help:"Show a document"`
	Add    AddCmd    `cmd:"" help:"Add a document (admin)"`
	Update UpdateCmd `cmd:"" help:"Update a document (admin)"`
	Delete DeleteCmd `cmd:"" help:"Delete a document (admin)"`
	Export ExportCmd `cmd:"" help:"Export a document as markdown"`
	Stats  StatsCmd  `cmd:"" help:"Show catalog statistics"`

	FAQ   FAQCmd   `cmd:"" name:"faq" help:"Browse and maintain FAQs"`
	Audit AuditCmd `cmd:"" help:"Inspect the audit trail"`

	Login    LoginCmd    `cmd:"" help:"Sign in"`
	Logout   LogoutCmd   `cmd:"" help:"Sign out"`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the signed-in user"`
	Register RegisterCmd `cmd:"" help:"Register a new user and sign in"`
	Profile  ProfileCmd  `cmd:"" help:"Show or edit the signed-in user's profile"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query     string `arg:"" optional:"" help:"Text to find in title, description or tags"`
	Type      string `short:"t" default:"all" help:"Document type facet"`
	Category  string `short:"c" default:"all" help:"Category facet"`
	Authority string `short:"a" default:"all" help:"Authority facet"`
	Offset    int    `help:"Skip the first N results"`
	Limit     int    `short:"n" help:"Maximum number of results"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// DocumentFlags are the editable document fields.
type DocumentFlags struct {
	Title        string   `help:"Title"`
	Type         string   `help:"Document type (act, regulation, policy, guideline, directive, form)"`
	Category     string   `help:"Category (banking, insurance, asset-management, microlending, payment-systems, general)"`
	Authority    string   `help:"Issuing authority (BoB, NBFIRA, FIA)"`
	Description  string   `help:"Short description"`
	Content      string   `help:"Full text"`
	URL          string   `name:"url" help:"Download URL"`
	Tags         []string `name:"tag" help:"Tag (repeatable)"`
	Requirements []string `name:"requirement" help:"Compliance requirement (repeatable)"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	DocumentFlags `embed:""`
}

// UpdateCmd is the "update" subcommand. Only flags that are given change.
type UpdateCmd struct {
	ID            string `arg:"" help:"Document ID"`
	DocumentFlags `embed:""`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Document ID"`
	Dir string `arg:"" type:"path" help:"Output directory"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// FAQCmd groups the FAQ subcommands.
type FAQCmd struct {
	List   FAQListCmd   `cmd:"" default:"withargs" help:"List FAQs"`
	Add    FAQAddCmd    `cmd:"" help:"Add a FAQ (admin)"`
	Update FAQUpdateCmd `cmd:"" help:"Update a FAQ (admin)"`
	Delete FAQDeleteCmd `cmd:"" help:"Delete a FAQ (admin)"`
}

// FAQListCmd is the "faq list" subcommand.
type FAQListCmd struct {
	Query     string `arg:"" optional:"" help:"Text to find in question or answer"`
	Category  string `short:"c" default:"all" help:"Category facet"`
	Authority string `short:"a" default:"all" help:"Authority facet"`
}

// FAQFlags are the editable FAQ fields.
type FAQFlags struct {
	Question  string `help:"Question"`
	Answer    string `help:"Answer"`
	Category  string `help:"Category"`
	Authority string `help:"Authority"`
}

// FAQAddCmd is the "faq add" subcommand.
type FAQAddCmd struct {
	FAQFlags `embed:""`
}

// FAQUpdateCmd is the "faq update" subcommand.
type FAQUpdateCmd struct {
	ID       string `arg:"" help:"FAQ ID"`
	FAQFlags `embed:""`
}

// FAQDeleteCmd is the "faq delete" subcommand.
type FAQDeleteCmd struct {
	ID    string `arg:"" help:"FAQ ID"`
	Force bool   `help:"Confirm deletion"`
}

// AuditCmd groups the audit subcommands.
type AuditCmd struct {
	List   AuditListCmd   `cmd:"" default:"withargs" help:"List audit entries, newest first"`
	Export AuditExportCmd `cmd:"" help:"Export audit entries as CSV"`
	Users  AuditUsersCmd  `cmd:"" help:"List users present in the audit trail"`
}

// AuditFilterFlags select audit entries.
type AuditFilterFlags struct {
	Action string `default:"all" help:"Action (CREATE, UPDATE, DELETE, LOGIN, LOGOUT)"`
	User   string `default:"all" help:"User name"`
	Range  string `default:"all" enum:"all,today,week,month" help:"Date range (all, today, week, month)"`
}

// AuditListCmd is the "audit list" subcommand.
type AuditListCmd struct {
	Query            string `arg:"" optional:"" help:"Text to find in action, resource, details or user"`
	AuditFilterFlags `embed:""`
	Limit            int `short:"n" help:"Maximum number of entries"`
}

// AuditExportCmd is the "audit export" subcommand.
type AuditExportCmd struct {
	Query            string `arg:"" optional:"" help:"Text to find in action, resource, details or user"`
	AuditFilterFlags `embed:""`
	Output           string `short:"o" type:"path" help:"Output file (default stdout)"`
}

// AuditUsersCmd is the "audit users" subcommand.
type AuditUsersCmd struct{}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Email    string `arg:"" help:"Email address"`
	Password string `arg:"" help:"Password"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// WhoamiCmd is the "whoami" subcommand.
type WhoamiCmd struct{}

// RegisterCmd is the "register" subcommand.
type RegisterCmd struct {
	Name         string `required:"" help:"Full name"`
	Email        string `required:"" help:"Email address"`
	Organization string `help:"Organization"`
	Role         string `default:"user" enum:"admin,user" help:"Role (admin or user)"`
}

// ProfileCmd is the "profile" subcommand. Without flags it shows the profile.
type ProfileCmd struct {
	Name            string   `help:"Full name"`
	Organization    string   `help:"Organization"`
	Subscribe       []string `help:"Category to follow (repeatable); replaces current subscriptions"`
	NoSubscriptions bool     `help:"Clear all subscriptions"`
}
