// Package pdf renders score charts as PDF pages with
// github.com/jung-kurt/gofpdf.
package pdf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/densum"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Plotter implements densum.Plotter at compile time.
var _ densum.Plotter = (*Plotter)(nil)

// Plot area on an A4 landscape page, in millimetres.
const (
	left   = 30.0
	top    = 20.0
	width  = 247.0
	height = 160.0
)

// Plotter draws the score sequence on a single A4 landscape page.
type Plotter struct {
	// Title is printed above the chart and stored in the document
	// information when set.
	Title string
}

// NewPlotter creates a new Plotter.
func NewPlotter() *Plotter {
	return &Plotter{}
}

// Plot writes a PDF chart of scores to w.
func (p *Plotter) Plot(w io.Writer, scores densum.ScoreSequence, threshold float64) error {
	if scores.Len() == 0 {
		return densum.Errorf(densum.ESTATE, "no scores to plot")
	}

	lo := min(scores.Min(), threshold, 0)
	hi := max(scores.Max(), threshold)
	if hi == lo {
		hi = lo + 1
	}
	step := width / float64(max(scores.Len()-1, 1))

	xAt := func(i int) float64 { return left + float64(i)*step }
	yAt := func(v float64) float64 { return top + height - (v-lo)/(hi-lo)*height }

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.AddPage()

	if p.Title != "" {
		pdf.SetTitle(p.Title, false)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(left, top-8, p.Title)
		pdf.SetFont("Helvetica", "", 9)
	}

	// Axes.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(left, top, left, top+height)
	pdf.Line(left, top+height, left+width, top+height)

	pdf.Text(left+width/2-5, top+height+12, "Nodes")
	pdf.TransformBegin()
	pdf.TransformRotate(90, left-18, top+height/2+20)
	pdf.Text(left-18, top+height/2+20, "Composite Text Density")
	pdf.TransformEnd()
	pdf.Text(left-14, yAt(hi)+1, formatTick(hi))
	pdf.Text(left-14, yAt(lo)+1, formatTick(lo))

	// Scores.
	pdf.SetDrawColor(70, 130, 180)
	pdf.SetLineWidth(0.4)
	for i := 1; i < scores.Len(); i++ {
		pdf.Line(xAt(i-1), yAt(scores[i-1]), xAt(i), yAt(scores[i]))
	}
	if scores.Len() == 1 {
		pdf.Circle(xAt(0), yAt(scores[0]), 0.6, "D")
	}

	// Threshold.
	pdf.SetDrawColor(178, 34, 34)
	pdf.SetDashPattern([]float64{3, 2}, 0)
	pdf.Line(left, yAt(threshold), left+width, yAt(threshold))
	pdf.SetDashPattern([]float64{}, 0)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
