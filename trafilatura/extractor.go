// Package trafilatura implements densum.Extractor with go-trafilatura, as
// a baseline to compare density-sum extraction against.
package trafilatura

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/densum"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements densum.Extractor at compile time.
var _ densum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	// Images and links stay in the output so byte counts and word overlap
	// are comparable with density results, which keep both.
	opts := trafilatura.Options{
		EnableFallback:  true,
		IncludeImages:   true,
		IncludeLinks:    true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	var content string
	if result.ContentNode != nil {
		content, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &densum.Result{Content: content}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
