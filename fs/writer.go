// Package fs writes extractions to the local file system.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/densum"
	"gopkg.in/yaml.v3"
)

// SourcePath converts an extraction source to a relative output path with
// the given extension.
//
//	https://example.com/news/story → example.com/news/story.md
//	https://example.com/news/      → example.com/news/index.md
//	pages/article.html             → article.md
//	-                              → stdin.md
//
// Returns EINVALID if the path would escape the output directory.
func SourcePath(source, ext string) (string, error) {
	if source == "-" {
		return "stdin" + ext, nil
	}

	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		name := filepath.Base(source)
		return strings.TrimSuffix(name, filepath.Ext(name)) + ext, nil
	}

	p := u.Path
	switch {
	case p == "" || p == "/":
		p = "index"
	case strings.HasSuffix(p, "/"):
		p += "index"
	}

	rel := path.Clean(path.Join(u.Hostname(), p))
	if rel == ".." || strings.HasPrefix(rel, "../") || !strings.HasPrefix(rel, u.Hostname()+"/") {
		return "", densum.Errorf(densum.EINVALID, "path traversal in source %q", source)
	}

	return filepath.FromSlash(rel) + ext, nil
}

type frontmatter struct {
	Source    string  `yaml:"source"`
	Extractor string  `yaml:"extractor"`
	Nodes     int     `yaml:"nodes,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Hash      string  `yaml:"hash,omitempty"`
	Extracted string  `yaml:"extracted"`
}

// FormatExtraction formats an extraction's content with YAML frontmatter.
func FormatExtraction(e *densum.Extraction) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Source:    e.SourceURL,
		Extractor: e.Extractor,
		Nodes:     e.Scores.Len(),
		Threshold: e.Threshold,
		Hash:      e.ContentHash,
		Extracted: e.CreatedAt.Format("2006-01-02"),
	})
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(e.Content)
	return b.String(), nil
}

// Ensure Writer implements densum.ExtractionWriter at compile time.
var _ densum.ExtractionWriter = (*Writer)(nil)

// Writer writes extractions as files below a base directory. Files are
// written to a temporary name and renamed into place.
type Writer struct {
	baseDir string
	ext     string
}

// NewWriter creates a new Writer that writes files with extension ext
// (".html" or ".md") to baseDir.
func NewWriter(baseDir, ext string) *Writer {
	return &Writer{baseDir: baseDir, ext: ext}
}

// WriteExtraction writes e to disk and returns the file path.
func (w *Writer) WriteExtraction(ctx context.Context, e *densum.Extraction) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	relPath, err := SourcePath(e.SourceURL, w.ext)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, relPath)

	content, err := FormatExtraction(e)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".densum-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
