package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/densum"
	"github.com/fwojciec/densum/bluemonday"
	"github.com/fwojciec/densum/density"
	"github.com/fwojciec/densum/fs"
	"github.com/fwojciec/densum/goquery"
	"github.com/fwojciec/densum/htmltomarkdown"
	densumhttp "github.com/fwojciec/densum/http"
	"github.com/fwojciec/densum/pdf"
	"github.com/fwojciec/densum/readability"
	"github.com/fwojciec/densum/rod"
	densumslog "github.com/fwojciec/densum/slog"
	"github.com/fwojciec/densum/sqlite"
	"github.com/fwojciec/densum/svg"
	"github.com/fwojciec/densum/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor the config file name one.
	DBPath string

	// Config file path used when --config is not set.
	ConfigPath string

	// Stdin is read when the source argument is "-".
	Stdin io.Reader

	// RetryDelays are the backoff delays between fetch attempts.
	RetryDelays []time.Duration

	// SQLite database, opened only by commands that need it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPath:  defaultConfigPath(),
		Stdin:       os.Stdin,
		RetryDelays: DefaultRetryDelays(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("densum"),
		kong.Description("Extract the main content of news articles by composite text density."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'densum --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	fc, err := loadConfig(firstNonEmpty(cli.Config, m.ConfigPath))
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Logger = logger
	deps.Config = fc.extractorConfig()
	deps.Format = firstNonEmpty(fc.Format, formatHTML)
	deps.NewExtractor = func(cfg densum.Config) densum.Extractor {
		return densumslog.NewLoggingExtractor(
			density.NewExtractor(bluemonday.NewCleaner(), goquery.NewParser(), cfg),
			"density", logger,
		)
	}
	deps.Baselines = []NamedExtractor{
		{Name: "readability", Extractor: densumslog.NewLoggingExtractor(readability.NewExtractor(), "readability", logger)},
		{Name: "trafilatura", Extractor: densumslog.NewLoggingExtractor(trafilatura.NewExtractor(), "trafilatura", logger)},
	}
	deps.Parser = goquery.NewParser()
	deps.NewConverter = newConverter
	deps.Plotters = map[string]densum.Plotter{
		".svg": densumslog.NewLoggingPlotter(svg.NewPlotter(), logger),
		".pdf": densumslog.NewLoggingPlotter(&pdf.Plotter{Title: firstNonEmpty(cli.Plot.Title, cli.Plot.Source)}, logger),
	}
	deps.NewWriter = func(dir, ext string) densum.ExtractionWriter {
		return fs.NewWriter(dir, ext)
	}

	if loadsSource(cmd, cli) {
		timeout := cli.Timeout
		if timeout == 0 {
			timeout = fc.Timeout
		}
		if timeout == 0 {
			timeout = densumhttp.DefaultFetchTimeout
		}

		var fetcher densum.Fetcher
		if cli.Browser {
			rf, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rf
		} else {
			fetcher = densumhttp.NewFetcher(fc.fetcherOptions(timeout)...)
		}
		fetcher = NewRetryFetcher(densumslog.NewLoggingFetcher(fetcher, logger), m.RetryDelays, logger)
		defer fetcher.Close()

		deps.Loader = &SourceLoader{Fetcher: fetcher, Stdin: m.Stdin}
	}

	if needsDatabase(cmd, cli) {
		path := firstNonEmpty(cli.DB, fc.Database, m.DBPath)
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DENSUM_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Extractions = sqlite.NewExtractionService(m.DB)
	}

	return kongCtx.Run(deps)
}

// newConverter returns a Markdown converter that resolves relative links
// against the origin of source when it is an http(s) URL.
func newConverter(source string) densum.Converter {
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return htmltomarkdown.NewConverter()
	}
	return htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(u.Scheme + "://" + u.Host))
}

// loadsSource reports whether cmd reads a page from a file, stdin or URL.
func loadsSource(cmd string, cli *CLI) bool {
	switch cmd {
	case "extract", "scores", "compare":
		return true
	case "plot":
		return !isExtractionID(cli.Plot.Source)
	}
	return false
}

// needsDatabase reports whether cmd reads or writes stored extractions.
func needsDatabase(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "show", "delete":
		return true
	case "extract":
		return cli.Extract.Save
	case "plot":
		return isExtractionID(cli.Plot.Source)
	}
	return false
}
