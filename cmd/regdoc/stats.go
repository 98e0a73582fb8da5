package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/regdoc"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, regdoc.DocumentFilter{})
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	faqs, err := deps.FAQs.FindFAQs(deps.Ctx, regdoc.FAQFilter{})
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	stats := regdoc.SummarizeDocuments(docs)
	fmt.Fprintf(deps.Stdout, "Documents: %d\nFAQs: %d\n", stats.Total, len(faqs))

	fmt.Fprintln(deps.Stdout, "\nBy authority:")
	for _, a := range regdoc.Authorities {
		printCount(deps.Stdout, string(a), stats.ByAuthority[a])
	}
	fmt.Fprintln(deps.Stdout, "\nBy category:")
	for _, cat := range regdoc.Categories {
		printCount(deps.Stdout, string(cat), stats.ByCategory[cat])
	}
	fmt.Fprintln(deps.Stdout, "\nBy type:")
	for _, t := range regdoc.DocumentTypes {
		printCount(deps.Stdout, string(t), stats.ByType[t])
	}
	return nil
}

func printCount(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "  %-18s %d\n", label, n)
}
