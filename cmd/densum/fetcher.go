package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/densum"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// Ensure RetryFetcher implements densum.Fetcher at compile time.
var _ densum.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff. Not-found and invalid
// input errors are returned immediately.
type RetryFetcher struct {
	next   densum.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next, retrying once per entry in delays.
func NewRetryFetcher(next densum.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch fetches url, retrying transient failures.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		switch densum.ErrorCode(err) {
		case densum.ENOTFOUND, densum.EINVALID:
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		f.logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
