package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/densum"
	"github.com/google/uuid"
)

// Run executes the plot command.
func (c *PlotCmd) Run(deps *Dependencies) error {
	ext := strings.ToLower(filepath.Ext(c.Output))
	plotter, ok := deps.Plotters[ext]
	if !ok {
		err := densum.Errorf(densum.EINVALID, "unsupported chart format %q: use .svg or .pdf", ext)
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	var scores densum.ScoreSequence
	var threshold float64
	if isExtractionID(c.Source) {
		e, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
			return err
		}
		scores, threshold = e.Scores, e.Threshold
	} else {
		res, err := extractSource(deps, c.Source, c.ExtractorFlags)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
			return err
		}
		scores, threshold = res.Scores, res.Threshold
	}

	f, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := plotter.Plot(f, scores, threshold); err != nil {
		f.Close()
		os.Remove(c.Output)
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%d nodes)\n", c.Output, scores.Len())
	return nil
}

// isExtractionID reports whether source names a stored extraction rather
// than a page. A file with a UUID name takes precedence.
func isExtractionID(source string) bool {
	if _, err := uuid.Parse(source); err != nil {
		return false
	}
	_, err := os.Stat(source)
	return errors.Is(err, fs.ErrNotExist)
}
