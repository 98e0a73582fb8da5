package main

import (
	"fmt"

	"github.com/fwojciec/regdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return regdoc.Errorf(regdoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %s\n", c.ID)
	return nil
}
