package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/regdoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if regdoc.ErrorCode(err) == regdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'regdoc search' to list documents.\n", c.ID)
			return err
		}
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintln(deps.Stdout, regdoc.FormatDocuments([]*regdoc.Document{doc}))
	fmt.Fprintf(deps.Stdout, "\nPublished: %s  Last modified: %s\n",
		doc.PublishedDate.Format("2006-01-02"), doc.LastModified.Format("2006-01-02"))
	if len(doc.Tags) > 0 {
		fmt.Fprintf(deps.Stdout, "Tags: %s\n", strings.Join(doc.Tags, ", "))
	}
	if doc.DownloadURL != "" {
		fmt.Fprintf(deps.Stdout, "Download: %s\n", doc.DownloadURL)
	}
	return nil
}
