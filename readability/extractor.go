// Package readability implements densum.Extractor with go-readability, as
// a baseline to compare density-sum extraction against.
package readability

import (
	"fmt"
	"strings"

	"github.com/fwojciec/densum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements densum.Extractor at compile time.
var _ densum.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// Results carry no score sequence.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*densum.Result, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, densum.Errorf(densum.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	return &densum.Result{Content: article.Content}, nil
}
