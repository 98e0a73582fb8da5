package regdoc

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// FormatDocuments formats documents for display.
// Each document gets a header line with its title followed by the
// authority, type and category, its description, content and requirements.
// Documents are separated by blank lines.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		var b strings.Builder
		b.WriteString("## " + doc.Title + "\n")
		fmt.Fprintf(&b, "%s | %s | %s\n", doc.Authority, doc.Type, doc.Category)
		if doc.Description != "" {
			b.WriteString("\n" + doc.Description + "\n")
		}
		if doc.Content != "" {
			b.WriteString("\n" + doc.Content + "\n")
		}
		if len(doc.Requirements) > 0 {
			b.WriteString("\nRequirements:\n")
			for _, r := range doc.Requirements {
				b.WriteString("- " + r + "\n")
			}
		}
		parts = append(parts, strings.TrimSuffix(b.String(), "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// AuditCSVHeader is the header row of an audit CSV export.
const AuditCSVHeader = "Timestamp,User,Action,Resource,Details"

// WriteAuditCSV writes entries as comma-separated values: a header row,
// then one row per entry. Every value is quoted and embedded quotes are
// doubled, so rows always have exactly five fields.
func WriteAuditCSV(w io.Writer, entries []*AuditEntry) error {
	if _, err := io.WriteString(w, AuditCSVHeader+"\n"); err != nil {
		return err
	}
	for _, e := range entries {
		row := strings.Join([]string{
			quoteCSV(e.Timestamp.UTC().Format(time.RFC3339)),
			quoteCSV(e.UserName),
			quoteCSV(e.Action),
			quoteCSV(e.Resource),
			quoteCSV(e.Details),
		}, ",")
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// DocumentStats summarizes a set of documents.
type DocumentStats struct {
	Total       int
	ByAuthority map[Authority]int
	ByCategory  map[Category]int
	ByType      map[DocumentType]int
}

// SummarizeDocuments counts documents per authority, category and type.
func SummarizeDocuments(docs []*Document) DocumentStats {
	stats := DocumentStats{
		Total:       len(docs),
		ByAuthority: make(map[Authority]int),
		ByCategory:  make(map[Category]int),
		ByType:      make(map[DocumentType]int),
	}
	for _, doc := range docs {
		stats.ByAuthority[doc.Authority]++
		stats.ByCategory[doc.Category]++
		stats.ByType[doc.Type]++
	}
	return stats
}
