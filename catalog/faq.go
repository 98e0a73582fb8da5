package catalog

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/fwojciec/regdoc"
)

func faqID(f *regdoc.FAQ) string { return f.ID }

// CreateFAQ assigns an ID and adds the FAQ.
func (e *Engine) CreateFAQ(ctx context.Context, faq *regdoc.FAQ) error {
	if err := faq.Validate(); err != nil {
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

	id, err := e.issueID(faqKey, func(id string) bool {
		return indexOf(e.faqs, faqID, id) >= 0
	})
	if err != nil {
		return err
	}

	stored := *faq
	stored.ID = id

	next := append(slices.Clip(e.faqs), &stored)
	entry := e.entry(actor, regdoc.ActionCreate, regdoc.ResourceFAQ, "Created FAQ: "+stored.Question)
	if n, err = commit(ctx, e, regdoc.KeyFAQs, &e.faqs, next, entry); err != nil {
		return err
	}

	faq.ID = id
	n = notice{regdoc.NotifySuccess, "FAQ added successfully"}
	return nil
}

// FindFAQByID retrieves a FAQ by ID.
func (e *Engine) FindFAQByID(ctx context.Context, id string) (*regdoc.FAQ, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := indexOf(e.faqs, faqID, id)
	if i < 0 {
		return nil, regdoc.Errorf(regdoc.ENOTFOUND, "faq not found")
	}
	other := *e.faqs[i]
	return &other, nil
}

// FindFAQs retrieves FAQs matching the filter in insertion order.
func (e *Engine) FindFAQs(ctx context.Context, filter regdoc.FAQFilter) ([]*regdoc.FAQ, error) {
	return slices.Collect(e.FAQs(filter)), nil
}

// FAQs returns a lazy sequence over the FAQs matching filter.
func (e *Engine) FAQs(filter regdoc.FAQFilter) iter.Seq[*regdoc.FAQ] {
	e.mu.Lock()
	faqs := e.faqs
	e.mu.Unlock()

	matches := func(yield func(*regdoc.FAQ) bool) {
		for _, f := range faqs {
			if !filter.Match(f) {
				continue
			}
			other := *f
			if !yield(&other) {
				return
			}
		}
	}
	return regdoc.Paginate(matches, filter.Offset, filter.Limit)
}

// UpdateFAQ replaces the set fields of an existing FAQ.
func (e *Engine) UpdateFAQ(ctx context.Context, id string, upd regdoc.FAQUpdate) (*regdoc.FAQ, error) {
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

	i := indexOf(e.faqs, faqID, id)
	if i < 0 {
		n = notice{regdoc.NotifyWarning, fmt.Sprintf("FAQ %s not found", id)}
		return nil, nil
	}

	faq := *e.faqs[i]
	if !upd.Apply(&faq) {
		return &faq, nil
	}

	next := slices.Clone(e.faqs)
	next[i] = &faq
	entry := e.entry(actor, regdoc.ActionUpdate, regdoc.ResourceFAQ, "Updated FAQ: "+faq.Question)
	if n, err = commit(ctx, e, regdoc.KeyFAQs, &e.faqs, next, entry); err != nil {
		return nil, err
	}

	n = notice{regdoc.NotifySuccess, "FAQ updated successfully"}
	other := faq
	return &other, nil
}

// DeleteFAQ removes a FAQ. Deleting a missing FAQ is a no-op.
func (e *Engine) DeleteFAQ(ctx context.Context, id string) error {
	actor, err := e.authorize(ctx)
	if err != nil {
		return err
	}

	var n notice
	defer e.publish(&n)

	e.mu.Lock()
	defer e.mu.Unlock()

	i := indexOf(e.faqs, faqID, id)
	if i < 0 {
		n = notice{regdoc.NotifyWarning, fmt.Sprintf("FAQ %s not found", id)}
		return nil
	}

	question := e.faqs[i].Question
	next := slices.Delete(slices.Clone(e.faqs), i, i+1)
	entry := e.entry(actor, regdoc.ActionDelete, regdoc.ResourceFAQ, "Deleted FAQ: "+question)
	if n, err = commit(ctx, e, regdoc.KeyFAQs, &e.faqs, next, entry); err != nil {
		return err
	}

	n = notice{regdoc.NotifySuccess, "FAQ deleted successfully"}
	return nil
}
