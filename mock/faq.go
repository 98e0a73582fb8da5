package mock

import (
	"context"

	"github.com/fwojciec/regdoc"
)

var _ regdoc.FAQService = (*FAQService)(nil)

// FAQService is a mock implementation of regdoc.FAQService.
type FAQService struct {
	CreateFAQFn   func(ctx context.Context, faq *regdoc.FAQ) error
	FindFAQByIDFn func(ctx context.Context, id string) (*regdoc.FAQ, error)
	FindFAQsFn    func(ctx context.Context, filter regdoc.FAQFilter) ([]*regdoc.FAQ, error)
	UpdateFAQFn   func(ctx context.Context, id string, upd regdoc.FAQUpdate) (*regdoc.FAQ, error)
	DeleteFAQFn   func(ctx context.Context, id string) error
}

func (s *FAQService) CreateFAQ(ctx context.Context, faq *regdoc.FAQ) error {
	return s.CreateFAQFn(ctx, faq)
}

func (s *FAQService) FindFAQByID(ctx context.Context, id string) (*regdoc.FAQ, error) {
	return s.FindFAQByIDFn(ctx, id)
}

func (s *FAQService) FindFAQs(ctx context.Context, filter regdoc.FAQFilter) ([]*regdoc.FAQ, error) {
	return s.FindFAQsFn(ctx, filter)
}

func (s *FAQService) UpdateFAQ(ctx context.Context, id string, upd regdoc.FAQUpdate) (*regdoc.FAQ, error) {
	return s.UpdateFAQFn(ctx, id, upd)
}

func (s *FAQService) DeleteFAQ(ctx context.Context, id string) error {
	return s.DeleteFAQFn(ctx, id)
}
