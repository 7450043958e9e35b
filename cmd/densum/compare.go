package main

import (
	"fmt"

	"github.com/fwojciec/densum"
	"github.com/fwojciec/densum/density"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/sync/errgroup"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	html, err := deps.Loader.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	extractors := append([]NamedExtractor{
		{Name: densityName, Extractor: deps.NewExtractor(c.apply(deps.Config))},
	}, deps.Baselines...)

	results := make([]*densum.Result, len(extractors))
	failures := make([]error, len(extractors))

	// A failing extractor does not cancel the others.
	var g errgroup.Group
	for i, ne := range extractors {
		g.Go(func() error {
			res, err := ne.Extractor.Extract(html)
			if err != nil {
				failures[i] = err
				return fmt.Errorf("%s: %w", ne.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	waitErr := g.Wait()

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Extractor", "Bytes", "Selected", "Overlap", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	failed := 0
	for i, ne := range extractors {
		if failures[i] != nil {
			failed++
			t.AppendRow(table.Row{ne.Name, "-", "-", "-", densum.ErrorMessage(failures[i])})
			continue
		}
		selected := "-"
		if results[i].Scores != nil {
			selected = fmt.Sprintf("%d/%d", len(results[i].Selected), results[i].Scores.Len())
		}
		t.AppendRow(table.Row{ne.Name, len(results[i].Content), selected, overlap(deps.Parser, results, i), ""})
	}
	t.Render()

	if failed == len(extractors) {
		fmt.Fprintf(deps.Stderr, "error: all extractors failed: %s\n", densum.ErrorMessage(waitErr))
		return waitErr
	}
	return nil
}

// overlap formats the share of the density content's words found in the
// content of results[i]. The density row and rows compared against a
// failed density run show "-".
func overlap(parser densum.Parser, results []*densum.Result, i int) string {
	if i == 0 || results[0] == nil {
		return "-"
	}
	share, err := density.Overlap(parser, results[0].Content, results[i].Content)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", share*100)
}
