package densum

import "context"

// ExtractionWriter writes extractions to durable output such as files.
type ExtractionWriter interface {
	// WriteExtraction writes e and returns the location it was written to.
	WriteExtraction(ctx context.Context, e *Extraction) (string, error)
}
