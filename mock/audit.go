package mock

import (
	"context"

	"github.com/fwojciec/regdoc"
)

var _ regdoc.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of regdoc.AuditService.
type AuditService struct {
	RecordEntryFn   func(ctx context.Context, entry *regdoc.AuditEntry) error
	FindEntriesFn   func(ctx context.Context, filter regdoc.AuditFilter) ([]*regdoc.AuditEntry, error)
	FindUserNamesFn func(ctx context.Context) ([]string, error)
}

func (s *AuditService) RecordEntry(ctx context.Context, entry *regdoc.AuditEntry) error {
	return s.RecordEntryFn(ctx, entry)
}

func (s *AuditService) FindEntries(ctx context.Context, filter regdoc.AuditFilter) ([]*regdoc.AuditEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *AuditService) FindUserNames(ctx context.Context) ([]string, error) {
	return s.FindUserNamesFn(ctx)
}
