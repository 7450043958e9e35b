package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/densum"
)

// Ensure LoggingPlotter implements densum.Plotter.
var _ densum.Plotter = (*LoggingPlotter)(nil)

// LoggingPlotter wraps a Plotter with logging.
type LoggingPlotter struct {
	next   densum.Plotter
	logger *slog.Logger
}

// NewLoggingPlotter creates a new LoggingPlotter.
func NewLoggingPlotter(next densum.Plotter, logger *slog.Logger) *LoggingPlotter {
	return &LoggingPlotter{next: next, logger: logger}
}

// Plot logs the number of points drawn and delegates to the wrapped plotter.
func (p *LoggingPlotter) Plot(w io.Writer, scores densum.ScoreSequence, threshold float64) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("plot",
			"points", scores.Len(),
			"threshold", threshold,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Plot(w, scores, threshold)
}
