package densum

import "io"

// Plotter renders a score sequence as a line chart with the node index on
// the horizontal axis and the composite text density on the vertical axis.
type Plotter interface {
	// Plot writes the chart to w. The threshold is drawn as a horizontal
	// reference line.
	// Returns ESTATE if scores is empty.
	Plot(w io.Writer, scores ScoreSequence, threshold float64) error
}
