package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/densum"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Run executes the scores command.
func (c *ScoresCmd) Run(deps *Dependencies) error {
	res, err := extractSource(deps, c.Source, c.ExtractorFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	selected := make(map[int]bool, len(res.Selected))
	for _, i := range res.Selected {
		selected[i] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Score", "Selected"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignCenter},
	})
	for i, s := range res.Scores {
		mark := ""
		if selected[i] {
			mark = "*"
		}
		t.AppendRow(table.Row{i, formatScore(s), mark})
	}
	t.AppendFooter(table.Row{"", "Threshold", formatScore(res.Threshold)})
	t.Render()

	fmt.Fprintf(deps.Stdout, "%d of %d nodes selected\n", len(res.Selected), res.Scores.Len())
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
