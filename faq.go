package regdoc

import (
	"context"
	"strings"
)

// FAQ represents a frequently asked question and its answer.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  Category  `json:"category"`
	Authority Authority `json:"authority"`
}

// Validate returns an error if the FAQ contains invalid fields.
func (f *FAQ) Validate() error {
	if f.Question == "" {
		return Errorf(EINVALID, "faq question required")
	}
	if f.Answer == "" {
		return Errorf(EINVALID, "faq answer required")
	}
	if !f.Category.Valid() {
		return Errorf(EINVALID, "invalid faq category %q", f.Category)
	}
	if !f.Authority.Valid() {
		return Errorf(EINVALID, "invalid faq authority %q", f.Authority)
	}
	return nil
}

// FAQService represents a service for managing FAQs.
type FAQService interface {
	// CreateFAQ assigns an ID and adds the FAQ.
	CreateFAQ(ctx context.Context, faq *FAQ) error

	// FindFAQByID retrieves a FAQ by ID.
	// Returns ENOTFOUND if FAQ does not exist.
	FindFAQByID(ctx context.Context, id string) (*FAQ, error)

	// FindFAQs retrieves FAQs matching the filter in insertion order.
	FindFAQs(ctx context.Context, filter FAQFilter) ([]*FAQ, error)

	// UpdateFAQ replaces the set fields of an existing FAQ.
	// Returns a nil FAQ and no error if the FAQ does not exist.
	UpdateFAQ(ctx context.Context, id string, upd FAQUpdate) (*FAQ, error)

	// DeleteFAQ removes a FAQ. Deleting a missing FAQ is a no-op.
	DeleteFAQ(ctx context.Context, id string) error
}

// FAQUpdate represents fields that can be updated on a FAQ.
type FAQUpdate struct {
	Question  *string    `json:"question"`
	Answer    *string    `json:"answer"`
	Category  *Category  `json:"category"`
	Authority *Authority `json:"authority"`
}

// Validate returns an error if any set field is invalid.
func (u *FAQUpdate) Validate() error {
	if u.Question != nil && *u.Question == "" {
		return Errorf(EINVALID, "faq question required")
	}
	if u.Answer != nil && *u.Answer == "" {
		return Errorf(EINVALID, "faq answer required")
	}
	if u.Category != nil && !u.Category.Valid() {
		return Errorf(EINVALID, "invalid faq category %q", *u.Category)
	}
	if u.Authority != nil && !u.Authority.Valid() {
		return Errorf(EINVALID, "invalid faq authority %q", *u.Authority)
	}
	return nil
}

// Apply merges the set fields into faq and reports whether any value changed.
func (u *FAQUpdate) Apply(faq *FAQ) bool {
	changed := false
	changed = applyField(&faq.Question, u.Question) || changed
	changed = applyField(&faq.Answer, u.Answer) || changed
	changed = applyField(&faq.Category, u.Category) || changed
	changed = applyField(&faq.Authority, u.Authority) || changed
	return changed
}

// FAQFilter represents a filter for FindFAQs.
type FAQFilter struct {
	Text      string     `json:"text"`
	Category  *Category  `json:"category"`
	Authority *Authority `json:"authority"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match reports whether faq matches the text (question or answer) and
// every set facet.
func (f FAQFilter) Match(faq *FAQ) bool {
	if f.Text != "" {
		q := strings.ToLower(f.Text)
		if !containsFold(faq.Question, q) && !containsFold(faq.Answer, q) {
			return false
		}
	}
	if f.Category != nil && faq.Category != *f.Category {
		return false
	}
	if f.Authority != nil && faq.Authority != *f.Authority {
		return false
	}
	return true
}
