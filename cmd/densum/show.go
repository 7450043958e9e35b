package main

import (
	"fmt"

	"github.com/fwojciec/densum"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	format := firstNonEmpty(c.Format, deps.Format)
	if err := validateFormat(format); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	e, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	content := e.Content
	if format == formatMarkdown {
		if content, err = deps.NewConverter(e.SourceURL).Convert(e.Content); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}
