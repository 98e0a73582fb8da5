package regdoc

import (
	"context"
	"iter"
	"slices"
	"strings"
	"time"
)

// DocumentType is the kind of regulatory instrument a document is.
type DocumentType string

// DocumentType constants.
const (
	TypeAct        DocumentType = "act"
	TypeRegulation DocumentType = "regulation"
	TypePolicy     DocumentType = "policy"
	TypeGuideline  DocumentType = "guideline"
	TypeDirective  DocumentType = "directive"
	TypeForm       DocumentType = "form"
)

// DocumentTypes lists every valid DocumentType in display order.
var DocumentTypes = []DocumentType{
	TypeAct, TypeRegulation, TypePolicy, TypeGuideline, TypeDirective, TypeForm,
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	return slices.Contains(DocumentTypes, t)
}

// Category is the sector of the financial system a document or FAQ covers.
type Category string

// Category constants.
const (
	CategoryBanking         Category = "banking"
	CategoryInsurance       Category = "insurance"
	CategoryAssetManagement Category = "asset-management"
	CategoryMicrolending    Category = "microlending"
	CategoryPaymentSystems  Category = "payment-systems"
	CategoryGeneral         Category = "general"
)

// Categories lists every valid Category in display order.
var Categories = []Category{
	CategoryBanking, CategoryInsurance, CategoryAssetManagement,
	CategoryMicrolending, CategoryPaymentSystems, CategoryGeneral,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Authority is the regulator that issued a document.
type Authority string

// Authority constants.
const (
	AuthorityBoB    Authority = "BoB"
	AuthorityNBFIRA Authority = "NBFIRA"
	AuthorityFIA    Authority = "FIA"
)

// Authorities lists every valid Authority in display order.
var Authorities = []Authority{AuthorityBoB, AuthorityNBFIRA, AuthorityFIA}

// Valid reports whether a is one of the known authorities.
func (a Authority) Valid() bool {
	return slices.Contains(Authorities, a)
}

// Document represents a regulatory artifact in the catalog.
type Document struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Type          DocumentType `json:"type"`
	Category      Category     `json:"category"`
	Authority     Authority    `json:"authority"`
	Description   string       `json:"description"`
	Content       string       `json:"content"`
	DownloadURL   string       `json:"downloadUrl,omitempty"`
	PublishedDate time.Time    `json:"publishedDate"`
	LastModified  time.Time    `json:"lastModified"`
	Tags          []string     `json:"tags"`
	Requirements  []string     `json:"requirements,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if !d.Type.Valid() {
		return Errorf(EINVALID, "invalid document type %q", d.Type)
	}
	if !d.Category.Valid() {
		return Errorf(EINVALID, "invalid document category %q", d.Category)
	}
	if !d.Authority.Valid() {
		return Errorf(EINVALID, "invalid document authority %q", d.Authority)
	}
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	other := *d
	other.Tags = slices.Clone(d.Tags)
	other.Requirements = slices.Clone(d.Requirements)
	return &other
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument assigns an ID and timestamps and adds the document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter in insertion order.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument merges the update over an existing document.
	// Returns a nil document and no error if the document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument removes a document. Deleting a missing document is a no-op.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Title        *string       `json:"title"`
	Type         *DocumentType `json:"type"`
	Category     *Category     `json:"category"`
	Authority    *Authority    `json:"authority"`
	Description  *string       `json:"description"`
	Content      *string       `json:"content"`
	DownloadURL  *string       `json:"downloadUrl"`
	Tags         *[]string     `json:"tags"`
	Requirements *[]string     `json:"requirements"`
}

// Validate returns an error if any set field is invalid.
func (u *DocumentUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if u.Type != nil && !u.Type.Valid() {
		return Errorf(EINVALID, "invalid document type %q", *u.Type)
	}
	if u.Category != nil && !u.Category.Valid() {
		return Errorf(EINVALID, "invalid document category %q", *u.Category)
	}
	if u.Authority != nil && !u.Authority.Valid() {
		return Errorf(EINVALID, "invalid document authority %q", *u.Authority)
	}
	return nil
}

// Apply merges the set fields into doc and reports whether any value changed.
func (u *DocumentUpdate) Apply(doc *Document) bool {
	changed := false
	changed = applyField(&doc.Title, u.Title) || changed
	changed = applyField(&doc.Type, u.Type) || changed
	changed = applyField(&doc.Category, u.Category) || changed
	changed = applyField(&doc.Authority, u.Authority) || changed
	changed = applyField(&doc.Description, u.Description) || changed
	changed = applyField(&doc.Content, u.Content) || changed
	changed = applyField(&doc.DownloadURL, u.DownloadURL) || changed
	changed = applyList(&doc.Tags, u.Tags) || changed
	changed = applyList(&doc.Requirements, u.Requirements) || changed
	return changed
}

func applyField[T comparable](dst *T, src *T) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}

func applyList(dst *[]string, src *[]string) bool {
	if src == nil || slices.Equal(*dst, *src) {
		return false
	}
	*dst = slices.Clone(*src)
	return true
}

// FacetAll is the wildcard facet value that matches every entry.
const FacetAll = "all"

// ParseFacet converts a raw facet value into a filter field.
// Empty values and FacetAll map to nil so the facet is ignored.
func ParseFacet[T ~string](value string, valid func(T) bool) (*T, error) {
	if value == "" || value == FacetAll {
		return nil, nil
	}
	v := T(value)
	if !valid(v) {
		return nil, Errorf(EINVALID, "invalid facet value %q", value)
	}
	return &v, nil
}

// DocumentFilter represents a filter for FindDocuments.
// Nil facets are ignored; set facets must all match.
type DocumentFilter struct {
	Text      string        `json:"text"`
	Type      *DocumentType `json:"type"`
	Category  *Category     `json:"category"`
	Authority *Authority    `json:"authority"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match reports whether doc satisfies both the text and the facet parts of
// the filter. Offset and Limit are not considered.
func (f DocumentFilter) Match(doc *Document) bool {
	return f.matchText(doc) && f.matchFacets(doc)
}

func (f DocumentFilter) matchText(doc *Document) bool {
	if f.Text == "" {
		return true
	}
	q := strings.ToLower(f.Text)
	if containsFold(doc.Title, q) || containsFold(doc.Description, q) {
		return true
	}
	return slices.ContainsFunc(doc.Tags, func(tag string) bool {
		return containsFold(tag, q)
	})
}

func (f DocumentFilter) matchFacets(doc *Document) bool {
	if f.Type != nil && doc.Type != *f.Type {
		return false
	}
	if f.Category != nil && doc.Category != *f.Category {
		return false
	}
	if f.Authority != nil && doc.Authority != *f.Authority {
		return false
	}
	return true
}

// containsFold reports whether lowerQuery occurs in s, ignoring case.
func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

// Paginate yields at most limit items from seq after skipping offset items.
// Non-positive values disable the respective bound.
func Paginate[T any](seq iter.Seq[T], offset, limit int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped, taken := 0, 0
		for v := range seq {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && taken >= limit {
				return
			}
			taken++
			if !yield(v) {
				return
			}
		}
	}
}

// DocumentWriter exports documents to an external destination.
type DocumentWriter interface {
	// WriteDocument exports doc and returns where it was written.
	WriteDocument(ctx context.Context, doc *Document) (string, error)
}
