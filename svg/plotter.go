// Package svg renders score charts as SVG documents built with
// github.com/beevik/etree.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/densum"
)

// Ensure Plotter implements densum.Plotter at compile time.
var _ densum.Plotter = (*Plotter)(nil)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

const (
	marginLeft   = 70.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 50.0
)

// Plotter draws the score sequence as a polyline with a dashed threshold
// line.
type Plotter struct {
	Width  int
	Height int
}

// NewPlotter creates a Plotter with the default dimensions.
func NewPlotter() *Plotter {
	return &Plotter{Width: DefaultWidth, Height: DefaultHeight}
}

// Plot writes an SVG chart of scores to w.
func (p *Plotter) Plot(w io.Writer, scores densum.ScoreSequence, threshold float64) error {
	if scores.Len() == 0 {
		return densum.Errorf(densum.ESTATE, "no scores to plot")
	}

	width, height := float64(p.Width), float64(p.Height)
	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom

	lo := min(scores.Min(), threshold, 0)
	hi := max(scores.Max(), threshold)
	if hi == lo {
		hi = lo + 1
	}
	step := plotW / float64(max(scores.Len()-1, 1))

	xAt := func(i int) float64 { return marginLeft + float64(i)*step }
	yAt := func(v float64) float64 { return marginTop + plotH - (v-lo)/(hi-lo)*plotH }

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("width", strconv.Itoa(p.Width))
	root.CreateAttr("height", strconv.Itoa(p.Height))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", p.Width, p.Height))

	bg := root.CreateElement("rect")
	bg.CreateAttr("width", "100%")
	bg.CreateAttr("height", "100%")
	bg.CreateAttr("fill", "white")

	axes := root.CreateElement("g")
	axes.CreateAttr("class", "axes")
	axes.CreateAttr("stroke", "black")
	line(axes, marginLeft, marginTop, marginLeft, marginTop+plotH)
	line(axes, marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)

	label(root, marginLeft+plotW/2, height-12, "", "Nodes")
	label(root, 18, marginTop+plotH/2, fmt.Sprintf("rotate(-90 18 %s)", num(marginTop+plotH/2)), "Composite Text Density")
	label(root, marginLeft-6, yAt(hi)+4, "", num(hi)).CreateAttr("text-anchor", "end")
	label(root, marginLeft-6, yAt(lo)+4, "", num(lo)).CreateAttr("text-anchor", "end")

	points := make([]string, scores.Len())
	for i, v := range scores {
		points[i] = num(xAt(i)) + "," + num(yAt(v))
	}
	poly := root.CreateElement("polyline")
	poly.CreateAttr("class", "scores")
	poly.CreateAttr("fill", "none")
	poly.CreateAttr("stroke", "steelblue")
	poly.CreateAttr("stroke-width", "1.5")
	poly.CreateAttr("points", strings.Join(points, " "))

	th := line(root, marginLeft, yAt(threshold), marginLeft+plotW, yAt(threshold))
	th.CreateAttr("class", "threshold")
	th.CreateAttr("stroke", "firebrick")
	th.CreateAttr("stroke-dasharray", "6,4")

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func line(parent *etree.Element, x1, y1, x2, y2 float64) *etree.Element {
	el := parent.CreateElement("line")
	el.CreateAttr("x1", num(x1))
	el.CreateAttr("y1", num(y1))
	el.CreateAttr("x2", num(x2))
	el.CreateAttr("y2", num(y2))
	return el
}

func label(parent *etree.Element, x, y float64, transform, text string) *etree.Element {
	el := parent.CreateElement("text")
	el.CreateAttr("x", num(x))
	el.CreateAttr("y", num(y))
	el.CreateAttr("font-family", "sans-serif")
	el.CreateAttr("font-size", "12")
	el.CreateAttr("text-anchor", "middle")
	if transform != "" {
		el.CreateAttr("transform", transform)
	}
	el.SetText(text)
	return el
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
