package mock

import "github.com/fwojciec/densum"

var _ densum.Converter = (*Converter)(nil)

// Converter is a mock implementation of densum.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
