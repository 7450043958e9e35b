package mock

import "github.com/fwojciec/densum"

var _ densum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of densum.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*densum.Result, error)
}

func (e *Extractor) Extract(html string) (*densum.Result, error) {
	return e.ExtractFn(html)
}
