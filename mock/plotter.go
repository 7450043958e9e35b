package mock

import (
	"io"

	"github.com/fwojciec/densum"
)

var _ densum.Plotter = (*Plotter)(nil)

// Plotter is a mock implementation of densum.Plotter.
type Plotter struct {
	PlotFn func(w io.Writer, scores densum.ScoreSequence, threshold float64) error
}

func (p *Plotter) Plot(w io.Writer, scores densum.ScoreSequence, threshold float64) error {
	return p.PlotFn(w, scores, threshold)
}
