package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/regdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter, err := c.filter()
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d document(s) found:\n\n", len(docs))
	for _, doc := range docs {
		printDocumentLine(deps.Stdout, doc)
	}
	return nil
}

func (c *SearchCmd) filter() (regdoc.DocumentFilter, error) {
	typ, err := regdoc.ParseFacet(c.Type, regdoc.DocumentType.Valid)
	if err != nil {
		return regdoc.DocumentFilter{}, err
	}
	category, err := regdoc.ParseFacet(c.Category, regdoc.Category.Valid)
	if err != nil {
		return regdoc.DocumentFilter{}, err
	}
	authority, err := regdoc.ParseFacet(c.Authority, regdoc.Authority.Valid)
	if err != nil {
		return regdoc.DocumentFilter{}, err
	}
	return regdoc.DocumentFilter{
		Text:      c.Query,
		Type:      typ,
		Category:  category,
		Authority: authority,
		Offset:    c.Offset,
		Limit:     c.Limit,
	}, nil
}

func printDocumentLine(w io.Writer, doc *regdoc.Document) {
	fmt.Fprintf(w, "%s  [%s] %s (%s, %s)\n", doc.ID, doc.Authority, doc.Title, doc.Type, doc.Category)
	if doc.Description != "" {
		fmt.Fprintf(w, "    %s\n", doc.Description)
	}
}

// reportError prints the user-facing message of err and returns it.
func reportError(w io.Writer, err error) error {
	fmt.Fprintf(w, "error: %s\n", regdoc.ErrorMessage(err))
	return err
}
