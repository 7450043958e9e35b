package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/densum"
	densumhttp "github.com/fwojciec/densum/http"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML configuration file. Command-line flags override
// every value.
type fileConfig struct {
	KillClasses   []string      `yaml:"kill_classes"`
	DedupeParents bool          `yaml:"dedupe_parents"`
	Timeout       time.Duration `yaml:"timeout"`
	Database      string        `yaml:"database"`
	Format        string        `yaml:"format"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
}

// loadConfig reads the config file at path. A missing file yields an
// empty configuration.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, densum.Errorf(densum.EINVALID, "invalid config file %s: %v", path, err)
	}
	if cfg.MaxBodyBytes < 0 {
		return cfg, densum.Errorf(densum.EINVALID, "max_body_bytes must not be negative")
	}
	if cfg.Format != "" {
		if err := validateFormat(cfg.Format); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// extractorConfig returns the extractor configuration described by the
// file, falling back to the defaults.
func (c fileConfig) extractorConfig() densum.Config {
	cfg := densum.DefaultConfig()
	if c.KillClasses != nil {
		cfg.KillClasses = append([]string(nil), c.KillClasses...)
	}
	cfg.DedupeParents = c.DedupeParents
	return cfg
}

// fetcherOptions returns the HTTP fetcher options set in the file.
func (c fileConfig) fetcherOptions(timeout time.Duration) []densumhttp.Option {
	opts := []densumhttp.Option{densumhttp.WithTimeout(timeout)}
	if c.UserAgent != "" {
		opts = append(opts, densumhttp.WithUserAgent(c.UserAgent))
	}
	if c.MaxBodyBytes > 0 {
		opts = append(opts, densumhttp.WithMaxBodyBytes(c.MaxBodyBytes))
	}
	return opts
}

func validateFormat(format string) error {
	switch format {
	case formatHTML, formatMarkdown:
		return nil
	}
	return densum.Errorf(densum.EINVALID, "unknown format %q: use html or markdown", format)
}

const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
)

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".densum")
}

func defaultConfigPath() string {
	return filepath.Join(defaultDir(), "config.yaml")
}

func defaultDBPath() string {
	return filepath.Join(defaultDir(), "densum.db")
}
