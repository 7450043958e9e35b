package density

import (
	"github.com/fwojciec/densum"
)

// Ensure Extractor implements densum.Extractor at compile time.
var _ densum.Extractor = (*Extractor)(nil)

// Extractor extracts article content with the density-sum algorithm.
//
// An Extractor holds no per-call state: the scores of an extraction are
// returned in the Result, so one Extractor may serve concurrent calls.
type Extractor struct {
	cleaner densum.Cleaner
	parser  densum.Parser
	config  densum.Config
}

// NewExtractor creates a new Extractor. The configuration is copied; later
// changes to cfg do not affect the extractor.
func NewExtractor(cleaner densum.Cleaner, parser densum.Parser, cfg densum.Config) *Extractor {
	return &Extractor{
		cleaner: cleaner,
		parser:  parser,
		config:  cfg.Clone(),
	}
}

// Config returns a copy of the extractor's configuration.
func (e *Extractor) Config() densum.Config {
	return e.config.Clone()
}

// Extract sanitizes html, scores every node below <body> and returns the
// parents of the nodes at or above the selected threshold.
func (e *Extractor) Extract(html string) (*densum.Result, error) {
	body, err := Sanitize(e.cleaner, e.parser, html, e.config.KillClasses)
	if err != nil {
		return nil, err
	}

	nodes, err := Flatten(body)
	if err != nil {
		return nil, err
	}

	linkCharsBody := densum.CountLinkChars(body)
	charsBody := densum.CountChars(body)

	scores := make(densum.ScoreSequence, len(nodes))
	for i, n := range nodes {
		scores[i] = densum.Score(densum.Collect(n), linkCharsBody, charsBody)
	}

	threshold, err := densum.SelectThreshold(scores)
	if err != nil {
		return nil, err
	}

	content, selected, err := Assemble(nodes, scores, threshold, e.config.DedupeParents)
	if err != nil {
		return nil, err
	}

	return &densum.Result{
		Content:   content,
		Scores:    scores,
		Threshold: threshold,
		Selected:  selected,
	}, nil
}
