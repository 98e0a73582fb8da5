package main

import (
	"fmt"

	"github.com/fwojciec/regdoc"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	doc := &regdoc.Document{
		Title:        c.Title,
		Type:         regdoc.DocumentType(c.Type),
		Category:     regdoc.Category(c.Category),
		Authority:    regdoc.Authority(c.Authority),
		Description:  c.Description,
		Content:      c.Content,
		DownloadURL:  c.URL,
		Tags:         c.Tags,
		Requirements: c.Requirements,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Added document %q (id %s)\n", doc.Title, doc.ID)
	return nil
}

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.UpdateDocument(deps.Ctx, c.ID, c.update())
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	if doc == nil {
		fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'regdoc search' to list documents.\n", c.ID)
		return regdoc.Errorf(regdoc.ENOTFOUND, "document %q not found", c.ID)
	}

	fmt.Fprintf(deps.Stdout, "Updated document %q\n", doc.Title)
	return nil
}

// update builds a patch from the flags that were given.
func (c *UpdateCmd) update() regdoc.DocumentUpdate {
	var upd regdoc.DocumentUpdate
	if c.Title != "" {
		upd.Title = &c.Title
	}
	if c.Type != "" {
		typ := regdoc.DocumentType(c.Type)
		upd.Type = &typ
	}
	if c.Category != "" {
		category := regdoc.Category(c.Category)
		upd.Category = &category
	}
	if c.Authority != "" {
		authority := regdoc.Authority(c.Authority)
		upd.Authority = &authority
	}
	if c.Description != "" {
		upd.Description = &c.Description
	}
	if c.Content != "" {
		upd.Content = &c.Content
	}
	if c.URL != "" {
		upd.DownloadURL = &c.URL
	}
	if len(c.Tags) > 0 {
		upd.Tags = &c.Tags
	}
	if len(c.Requirements) > 0 {
		upd.Requirements = &c.Requirements
	}
	return upd
}
