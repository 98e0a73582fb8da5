// Package fs provides file-based storage for regdoc: a key/value store
// holding one JSON file per key, and a markdown exporter for documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/regdoc"
)

// DocumentToPath converts a document to a relative file path.
// Example: {Authority: BoB, Title: "Banking Act"} → bob/banking-act.md
func DocumentToPath(doc *regdoc.Document) string {
	slug := slugify(doc.Title)
	if slug == "" {
		slug = slugify(doc.ID)
	}
	if slug == "" {
		slug = "untitled"
	}

	dir := strings.ToLower(string(doc.Authority))
	if dir == "" {
		return slug + ".md"
	}
	return filepath.Join(dir, slug+".md")
}

// slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *regdoc.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: ")
	b.WriteString(doc.ID)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\nauthority: ")
	b.WriteString(string(doc.Authority))
	b.WriteString("\ntype: ")
	b.WriteString(string(doc.Type))
	b.WriteString("\ncategory: ")
	b.WriteString(string(doc.Category))
	b.WriteString("\npublished: ")
	b.WriteString(doc.PublishedDate.Format("2006-01-02"))
	b.WriteString("\nmodified: ")
	b.WriteString(doc.LastModified.Format("2006-01-02"))
	if len(doc.Tags) > 0 {
		b.WriteString("\ntags: [")
		b.WriteString(strings.Join(doc.Tags, ", "))
		b.WriteString("]")
	}
	b.WriteString("\n---\n\n")
	b.WriteString("# ")
	b.WriteString(doc.Title)
	b.WriteString("\n")
	if doc.Description != "" {
		b.WriteString("\n")
		b.WriteString(doc.Description)
		b.WriteString("\n")
	}
	if doc.Content != "" {
		b.WriteString("\n")
		b.WriteString(doc.Content)
		b.WriteString("\n")
	}
	if len(doc.Requirements) > 0 {
		b.WriteString("\n## Requirements\n\n")
		for _, r := range doc.Requirements {
			b.WriteString("- ")
			b.WriteString(r)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Ensure Writer implements regdoc.DocumentWriter at compile time.
var _ regdoc.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as a markdown file and returns
// the path written. Documents with the same authority and title share a path.
func (w *Writer) WriteDocument(ctx context.Context, doc *regdoc.Document) (string, error) {
	fullPath := filepath.Join(w.baseDir, DocumentToPath(doc))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
