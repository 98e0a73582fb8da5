package catalog

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/fwojciec/regdoc"
)

func documentID(d *regdoc.Document) string { return d.ID }

// CreateDocument assigns an ID and timestamps and adds the document.
func (e *Engine) CreateDocument(ctx context.Context, doc *regdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	actor, err := e.authorize(ctx)
	if err != nil {
		return err
	}

	var n notice
	defer e.publish(&n)

	e.mu.Lock()
	defer e.mu.Unlock()

	id, err := e.issueID(documentKey, func(id string) bool {
		return indexOf(e.documents, documentID, id) >= 0
	})
	if err != nil {
		return err
	}

	now := e.Now()
	stored := doc.Clone()
	stored.ID = id
	stored.PublishedDate = now
	stored.LastModified = now

	next := append(slices.Clip(e.documents), stored)
	entry := e.entry(actor, regdoc.ActionCreate, regdoc.ResourceDocument, "Created document: "+stored.Title)
	if n, err = commit(ctx, e, regdoc.KeyDocuments, &e.documents, next, entry); err != nil {
		return err
	}

	doc.ID, doc.PublishedDate, doc.LastModified = id, now, now
	n = notice{regdoc.NotifySuccess, "Document added successfully"}
	return nil
}

// FindDocumentByID retrieves a document by ID.
func (e *Engine) FindDocumentByID(ctx context.Context, id string) (*regdoc.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := indexOf(e.documents, documentID, id)
	if i < 0 {
		return nil, regdoc.Errorf(regdoc.ENOTFOUND, "document not found")
	}
	return e.documents[i].Clone(), nil
}

// FindDocuments retrieves documents matching the filter in insertion order.
func (e *Engine) FindDocuments(ctx context.Context, filter regdoc.DocumentFilter) ([]*regdoc.Document, error) {
	return slices.Collect(e.Documents(filter)), nil
}

// Documents returns a lazy sequence over the documents matching filter.
// The sequence reads the collection as it was when Documents was called.
func (e *Engine) Documents(filter regdoc.DocumentFilter) iter.Seq[*regdoc.Document] {
	e.mu.Lock()
	docs := e.documents
	e.mu.Unlock()

	matches := func(yield func(*regdoc.Document) bool) {
		for _, d := range docs {
			if filter.Match(d) && !yield(d.Clone()) {
				return
			}
		}
	}
	return regdoc.Paginate(matches, filter.Offset, filter.Limit)
}

// UpdateDocument merges the update over an existing document. LastModified
// only advances when a value actually changes and never moves backwards.
func (e *Engine) UpdateDocument(ctx context.Context, id string, upd regdoc.DocumentUpdate) (*regdoc.Document, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	actor, err := e.authorize(ctx)
	if err != nil {
		return nil, err
	}

	var n notice
	defer e.publish(&n)

	e.mu.Lock()
	defer e.mu.Unlock()

	i := indexOf(e.documents, documentID, id)
	if i < 0 {
		n = notice{regdoc.NotifyWarning, fmt.Sprintf("Document %s not found", id)}
		return nil, nil
	}

	prev := e.documents[i]
	doc := prev.Clone()
	if !upd.Apply(doc) {
		return doc, nil
	}
	doc.LastModified = latest(e.Now(), prev.LastModified)

	next := slices.Clone(e.documents)
	next[i] = doc
	entry := e.entry(actor, regdoc.ActionUpdate, regdoc.ResourceDocument, "Updated document: "+doc.Title)
	if n, err = commit(ctx, e, regdoc.KeyDocuments, &e.documents, next, entry); err != nil {
		return nil, err
	}

	n = notice{regdoc.NotifySuccess, "Document updated successfully"}
	return doc.Clone(), nil
}

// DeleteDocument removes a document. Deleting a missing document is a no-op.
func (e *Engine) DeleteDocument(ctx context.Context, id string) error {
	actor, err := e.authorize(ctx)
	if err != nil {
		return err
	}

	var n notice
	defer e.publish(&n)

	e.mu.Lock()
	defer e.mu.Unlock()

	i := indexOf(e.documents, documentID, id)
	if i < 0 {
		n = notice{regdoc.NotifyWarning, fmt.Sprintf("Document %s not found", id)}
		return nil
	}

	title := e.documents[i].Title
	next := slices.Delete(slices.Clone(e.documents), i, i+1)
	entry := e.entry(actor, regdoc.ActionDelete, regdoc.ResourceDocument, "Deleted document: "+title)
	if n, err = commit(ctx, e, regdoc.KeyDocuments, &e.documents, next, entry); err != nil {
		return err
	}

	n = notice{regdoc.NotifySuccess, "Document deleted successfully"}
	return nil
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
