package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/regdoc"
)

// Ensure LoggingAuditService implements regdoc.AuditService.
var _ regdoc.AuditService = (*LoggingAuditService)(nil)

// LoggingAuditService wraps an AuditService with logging.
type LoggingAuditService struct {
	next   regdoc.AuditService
	logger *slog.Logger
}

// NewLoggingAuditService creates a new LoggingAuditService.
func NewLoggingAuditService(next regdoc.AuditService, logger *slog.Logger) *LoggingAuditService {
	return &LoggingAuditService{next: next, logger: logger}
}

// RecordEntry delegates to the wrapped service and logs the operation.
func (s *LoggingAuditService) RecordEntry(ctx context.Context, entry *regdoc.AuditEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("audit record",
			"action", entry.Action,
			"resource", entry.Resource,
			"user", entry.UserName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecordEntry(ctx, entry)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingAuditService) FindEntries(ctx context.Context, filter regdoc.AuditFilter) (entries []*regdoc.AuditEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("audit query",
			"text", filter.Text,
			"range", string(filter.Range),
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// FindUserNames delegates to the wrapped service.
func (s *LoggingAuditService) FindUserNames(ctx context.Context) ([]string, error) {
	return s.next.FindUserNames(ctx)
}
