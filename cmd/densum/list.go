package main

import (
	"fmt"

	"github.com/fwojciec/densum"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := densum.ExtractionFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'densum extract --save' to store one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Extractor", "Nodes", "Created", "Source"})
	for _, e := range extractions {
		t.AppendRow(table.Row{e.ID, e.Extractor, e.Scores.Len(), e.CreatedAt.Format("2006-01-02 15:04"), e.SourceURL})
	}
	t.Render()

	return nil
}
