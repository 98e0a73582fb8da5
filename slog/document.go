// Package slog decorates regdoc services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/regdoc"
)

// Ensure LoggingDocumentService implements regdoc.DocumentService.
var _ regdoc.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   regdoc.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next regdoc.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *regdoc.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create document",
			"id", doc.ID,
			"title", doc.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentByID delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (doc *regdoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find document",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter regdoc.DocumentFilter) (docs []*regdoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find documents",
			"text", filter.Text,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

// UpdateDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) UpdateDocument(ctx context.Context, id string, upd regdoc.DocumentUpdate) (doc *regdoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update document",
			"id", id,
			"found", doc != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateDocument(ctx, id, upd)
}

// DeleteDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete document",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocument(ctx, id)
}
