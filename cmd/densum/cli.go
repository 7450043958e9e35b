package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/densum"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Config is the extractor configuration from the config file, before
	// command flags are applied.
	Config densum.Config

	// Format is the default output format, "html" or "markdown".
	Format string

	Loader       Loader
	Parser       densum.Parser
	NewExtractor func(cfg densum.Config) densum.Extractor
	Baselines    []NamedExtractor
	Plotters     map[string]densum.Plotter
	Extractions  densum.ExtractionService
	NewWriter    func(dir, ext string) densum.ExtractionWriter

	// NewConverter returns a Markdown converter for content extracted
	// from source.
	NewConverter func(source string) densum.Converter
}

// NamedExtractor pairs an extractor with the name it is reported under.
type NamedExtractor struct {
	Name      string
	Extractor densum.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string        `help:"Path to YAML config file" env:"DENSUM_CONFIG"`
	DB      string        `name:"db" help:"Path to the extraction database" env:"DENSUM_DB"`
	Verbose bool          `short:"v" help:"Log debug output to stderr"`
	Browser bool          `short:"b" help:"Fetch URLs with a headless browser"`
	Timeout time.Duration `short:"t" help:"Fetch timeout per page (default 10s)"`

	Extract ExtractCmd `cmd:"" help:"Extract the main content of an article"`
	Scores  ScoresCmd  `cmd:"" help:"Print the density score of every node"`
	Plot    PlotCmd    `cmd:"" help:"Chart the density scores of a page or stored extraction"`
	Compare CompareCmd `cmd:"" help:"Compare density extraction with readability and trafilatura"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Show    ShowCmd    `cmd:"" help:"Show a stored extraction"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
}

// ExtractorFlags are the flags that tune the density extractor.
type ExtractorFlags struct {
	KillClass []string `name:"kill-class" short:"k" help:"CSS class to remove before scoring (repeatable, replaces defaults)"`
	Dedupe    bool     `help:"Emit each parent fragment once"`
}

// apply returns base with the flags applied.
func (f ExtractorFlags) apply(base densum.Config) densum.Config {
	cfg := base.Clone()
	if len(f.KillClass) > 0 {
		cfg.KillClasses = append([]string(nil), f.KillClass...)
	}
	if f.Dedupe {
		cfg.DedupeParents = true
	}
	return cfg
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source string `arg:"" help:"File path, URL, or - for stdin"`
	ExtractorFlags `embed:""`
	Format string `short:"f" help:"Output format: html or markdown"`
	Save   bool   `short:"s" help:"Store the extraction in the database"`
	Out    string `short:"o" help:"Write the extraction to a file below this directory"`
}

// ScoresCmd is the "scores" subcommand.
type ScoresCmd struct {
	Source string `arg:"" help:"File path, URL, or - for stdin"`
	ExtractorFlags `embed:""`
}

// PlotCmd is the "plot" subcommand.
type PlotCmd struct {
	Source string `arg:"" help:"File path, URL, - for stdin, or stored extraction ID"`
	ExtractorFlags `embed:""`
	Output string `short:"o" required:"" help:"Chart file to write (.svg or .pdf)"`
	Title  string `help:"Title printed on PDF charts (default: the source)"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Source string `arg:"" help:"File path, URL, or - for stdin"`
	ExtractorFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list extractions of this source"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of extractions"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Extraction ID"`
	Format string `short:"f" help:"Output format: html or markdown"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}
