// Package density implements the density-sum content extraction pipeline
// on top of the densum markup interfaces: sanitizing and flattening the
// document, scoring every node, choosing the threshold and assembling the
// selected fragments.
package density

import (
	"fmt"
	"strings"

	"github.com/fwojciec/densum"
)

// Sanitize normalizes whitespace in raw, cleans it, parses it and removes
// every element below <body> carrying one of killClasses. It returns the
// sanitized body.
//
// Returns EPARSE if the markup cannot be parsed or has no <body>.
func Sanitize(cleaner densum.Cleaner, parser densum.Parser, raw string, killClasses []string) (densum.Node, error) {
	collapsed := densum.CollapseWhitespace(raw)

	cleaned, err := cleaner.Clean(collapsed)
	if err != nil {
		return nil, fmt.Errorf("cleaning markup: %w", err)
	}
	if strings.TrimSpace(cleaned) == "" {
		return nil, densum.Errorf(densum.EPARSE, "document is empty")
	}

	doc, err := parser.Parse(cleaned)
	if err != nil {
		return nil, err
	}

	body := doc.Body()
	if body == nil {
		return nil, densum.Errorf(densum.EPARSE, "no <body> element found")
	}

	for _, class := range killClasses {
		for _, n := range doc.FindByClass(class) {
			doc.Detach(n)
		}
	}

	return body, nil
}

// Flatten returns every element below body in document order, excluding
// body itself.
//
// Returns EPARSE if body has no descendants.
func Flatten(body densum.Node) ([]densum.Node, error) {
	nodes := body.Descendants()
	if len(nodes) == 0 {
		return nil, densum.Errorf(densum.EPARSE, "no nodes to score below <body>")
	}
	return nodes, nil
}
