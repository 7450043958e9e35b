package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/densum"
)

// Ensure LoggingExtractor implements densum.Extractor.
var _ densum.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   densum.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The name identifies
// the wrapped extractor in log records.
func NewLoggingExtractor(next densum.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract logs the size of the extraction and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) Extract(html string) (res *densum.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"extractor", e.name,
			"input_bytes", len(html),
		}
		if res != nil {
			attrs = append(attrs,
				"nodes", res.Scores.Len(),
				"threshold", res.Threshold,
				"selected", len(res.Selected),
				"content_bytes", len(res.Content),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
