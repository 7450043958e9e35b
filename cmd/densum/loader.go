package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/densum"
)

// Loader loads the raw HTML of a source.
type Loader interface {
	Load(ctx context.Context, source string) (string, error)
}

// Ensure SourceLoader implements Loader at compile time.
var _ Loader = (*SourceLoader)(nil)

// SourceLoader reads "-" from Stdin, fetches http(s) URLs with Fetcher and
// reads anything else as a file path.
type SourceLoader struct {
	Fetcher densum.Fetcher
	Stdin   io.Reader
}

// Load returns the HTML of source.
func (l *SourceLoader) Load(ctx context.Context, source string) (string, error) {
	switch {
	case source == "-":
		b, err := io.ReadAll(l.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	case isURL(source):
		if l.Fetcher == nil {
			return "", densum.Errorf(densum.EINVALID, "no fetcher configured for %s", source)
		}
		return l.Fetcher.Fetch(ctx, source)
	}

	b, err := os.ReadFile(source)
	if errors.Is(err, fs.ErrNotExist) {
		return "", densum.Errorf(densum.ENOTFOUND, "file %q not found", source)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(b), nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
