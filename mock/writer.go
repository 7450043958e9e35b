package mock

import (
	"context"

	"github.com/fwojciec/densum"
)

var _ densum.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of densum.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, e *densum.Extraction) (string, error)
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, e *densum.Extraction) (string, error) {
	return w.WriteExtractionFn(ctx, e)
}
