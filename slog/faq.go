package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/regdoc"
)

// Ensure LoggingFAQService implements regdoc.FAQService.
var _ regdoc.FAQService = (*LoggingFAQService)(nil)

// LoggingFAQService wraps a FAQService with logging.
type LoggingFAQService struct {
	next   regdoc.FAQService
	logger *slog.Logger
}

// NewLoggingFAQService creates a new LoggingFAQService.
func NewLoggingFAQService(next regdoc.FAQService, logger *slog.Logger) *LoggingFAQService {
	return &LoggingFAQService{next: next, logger: logger}
}

func (s *LoggingFAQService) CreateFAQ(ctx context.Context, faq *regdoc.FAQ) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create faq", "id", faq.ID, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.CreateFAQ(ctx, faq)
}

func (s *LoggingFAQService) FindFAQByID(ctx context.Context, id string) (faq *regdoc.FAQ, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find faq", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindFAQByID(ctx, id)
}

func (s *LoggingFAQService) FindFAQs(ctx context.Context, filter regdoc.FAQFilter) (faqs []*regdoc.FAQ, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find faqs", "text", filter.Text, "count", len(faqs), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindFAQs(ctx, filter)
}

func (s *LoggingFAQService) UpdateFAQ(ctx context.Context, id string, upd regdoc.FAQUpdate) (faq *regdoc.FAQ, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update faq", "id", id, "found", faq != nil, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.UpdateFAQ(ctx, id, upd)
}

func (s *LoggingFAQService) DeleteFAQ(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete faq", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.DeleteFAQ(ctx, id)
}
