package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/densum"
)

// densityName is the extractor name recorded for density-sum extractions.
const densityName = "density"

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	format := firstNonEmpty(c.Format, deps.Format)
	if err := validateFormat(format); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	res, err := extractSource(deps, c.Source, c.ExtractorFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	content := res.Content
	if format == formatMarkdown {
		if content, err = deps.NewConverter(c.Source).Convert(res.Content); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
			return err
		}
	}

	extraction := &densum.Extraction{
		SourceURL: c.Source,
		Extractor: densityName,
		Content:   res.Content,
		Scores:    res.Scores,
		Threshold: res.Threshold,
		CreatedAt: time.Now().UTC(),
	}

	if c.Save {
		if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved extraction %s\n", extraction.ID)
	}

	if c.Out != "" {
		ext := ".html"
		if format == formatMarkdown {
			ext = ".md"
		}
		out := *extraction
		out.Content = content
		path, err := deps.NewWriter(c.Out, ext).WriteExtraction(deps.Ctx, &out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
		return nil
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}

// extractSource loads source and runs the density extractor configured
// by flags over it.
func extractSource(deps *Dependencies, source string, flags ExtractorFlags) (*densum.Result, error) {
	html, err := deps.Loader.Load(deps.Ctx, source)
	if err != nil {
		return nil, err
	}
	return deps.NewExtractor(flags.apply(deps.Config)).Extract(html)
}
