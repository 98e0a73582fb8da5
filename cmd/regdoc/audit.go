package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/regdoc"
)

func (f AuditFilterFlags) filter(query string) regdoc.AuditFilter {
	return regdoc.AuditFilter{
		Text:     query,
		Action:   &f.Action,
		UserName: &f.User,
		Range:    regdoc.DateRange(f.Range),
	}
}

// Run executes the audit list command.
func (c *AuditListCmd) Run(deps *Dependencies) error {
	filter := c.filter(c.Query)
	filter.Limit = c.Limit

	entries, err := deps.Audit.FindEntries(deps.Ctx, filter)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No audit entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %-20s %-7s %-9s %s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.UserName, e.Action, e.Resource, e.Details)
	}
	return nil
}

// Run executes the audit export command.
func (c *AuditExportCmd) Run(deps *Dependencies) (err error) {
	entries, err := deps.Audit.FindEntries(deps.Ctx, c.filter(c.Query))
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	var w io.Writer = deps.Stdout
	if c.Output != "" {
		f, ferr := os.Create(c.Output)
		if ferr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ferr)
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if err := regdoc.WriteAuditCSV(w, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write CSV: %s\n", err)
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stderr, "Exported %d entries to %s\n", len(entries), c.Output)
	}
	return nil
}

// Run executes the audit users command.
func (c *AuditUsersCmd) Run(deps *Dependencies) error {
	names, err := deps.Audit.FindUserNames(deps.Ctx)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
