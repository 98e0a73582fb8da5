package main

import (
	"fmt"

	"github.com/fwojciec/regdoc"
)

// Run executes the faq list command.
func (c *FAQListCmd) Run(deps *Dependencies) error {
	category, err := regdoc.ParseFacet(c.Category, regdoc.Category.Valid)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	authority, err := regdoc.ParseFacet(c.Authority, regdoc.Authority.Valid)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	faqs, err := deps.FAQs.FindFAQs(deps.Ctx, regdoc.FAQFilter{
		Text:      c.Query,
		Category:  category,
		Authority: authority,
	})
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	if len(faqs) == 0 {
		fmt.Fprintln(deps.Stdout, "No FAQs found.")
		return nil
	}

	for i, f := range faqs {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "%s  [%s/%s] Q: %s\n    A: %s\n", f.ID, f.Authority, f.Category, f.Question, f.Answer)
	}
	return nil
}

// Run executes the faq add command.
func (c *FAQAddCmd) Run(deps *Dependencies) error {
	faq := &regdoc.FAQ{
		Question:  c.Question,
		Answer:    c.Answer,
		Category:  regdoc.Category(c.Category),
		Authority: regdoc.Authority(c.Authority),
	}
	if err := deps.FAQs.CreateFAQ(deps.Ctx, faq); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Added FAQ (id %s)\n", faq.ID)
	return nil
}

// Run executes the faq update command.
func (c *FAQUpdateCmd) Run(deps *Dependencies) error {
	var upd regdoc.FAQUpdate
	if c.Question != "" {
		upd.Question = &c.Question
	}
	if c.Answer != "" {
		upd.Answer = &c.Answer
	}
	if c.Category != "" {
		category := regdoc.Category(c.Category)
		upd.Category = &category
	}
	if c.Authority != "" {
		authority := regdoc.Authority(c.Authority)
		upd.Authority = &authority
	}

	faq, err := deps.FAQs.UpdateFAQ(deps.Ctx, c.ID, upd)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	if faq == nil {
		fmt.Fprintf(deps.Stderr, "error: FAQ %q not found. Use 'regdoc faq list' to list FAQs.\n", c.ID)
		return regdoc.Errorf(regdoc.ENOTFOUND, "faq %q not found", c.ID)
	}

	fmt.Fprintf(deps.Stdout, "Updated FAQ %s\n", faq.ID)
	return nil
}

// Run executes the faq delete command.
func (c *FAQDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return regdoc.Errorf(regdoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.FAQs.DeleteFAQ(deps.Ctx, c.ID); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted FAQ %s\n", c.ID)
	return nil
}
