package main

import (
	"fmt"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	path, err := deps.NewWriter(c.Dir).WriteDocument(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write document: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %q to %s\n", doc.Title, path)
	return nil
}
