package mock

import (
	"context"

	"github.com/fwojciec/regdoc"
)

var _ regdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of regdoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *regdoc.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *regdoc.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}
