package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fwojciec/densum"
	main "github.com/fwojciec/densum/cmd/densum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleHTML is a news story followed by a navigation bar.
const articleHTML = `<html><body><div id="story"><h2>Harbour expansion approved after a three year review of the environmental impact</h2><figure><img src="/img/harbour.jpg"></figure><p>The city council approved the harbour expansion on Tuesday after a review that lasted nearly three years. Officials said the project would double the capacity of the container terminal and create several hundred permanent jobs in the region.</p><figure><img src="/img/channel.jpg"></figure><p>Construction is expected to begin next spring. The first phase covers dredging of the main channel and the reinforcement of the northern breakwater, which was damaged during the storms two winters ago.</p><figure><img src="/img/wetlands.jpg"></figure><p>Residents who opposed the plan argued that increased traffic would harm the wetlands south of the port. The council responded by setting aside a portion of the budget for habitat restoration and independent monitoring.</p></div><div id="nav"><a href="/news">News</a><a href="/sport">Sport</a><a href="/weather">Weather</a></div></body></html>`

var savedIDPattern = regexp.MustCompile(`Saved extraction (\S+)`)

// newTestMain returns a Main with a private database and config path.
func newTestMain(t *testing.T) (*main.Main, string) {
	t.Helper()

	dir := t.TempDir()
	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "densum.db")
	m.ConfigPath = filepath.Join(dir, "config.yaml")
	m.RetryDelays = nil
	m.Stdin = strings.NewReader("")

	page := filepath.Join(dir, "article.html")
	require.NoError(t, os.WriteFile(page, []byte(articleHTML), 0644))

	return m, dir
}

func run(t *testing.T, m *main.Main, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the story from a file", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)

		stdout, _, err := run(t, m, "extract", filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		assert.Contains(t, stdout, "harbour expansion on Tuesday")
		assert.NotContains(t, stdout, "/weather")
		assert.Equal(t, 4, strings.Count(stdout, `<div id="story">`))
	})

	t.Run("dedupe emits each parent once", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)

		stdout, _, err := run(t, m, "extract", "--dedupe", filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(stdout, `<div id="story">`))
	})

	t.Run("reads stdin", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestMain(t)
		m.Stdin = strings.NewReader(articleHTML)

		stdout, _, err := run(t, m, "extract", "-")

		require.NoError(t, err)
		assert.Contains(t, stdout, "habitat restoration")
	})

	t.Run("config file sets markdown output", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("format: markdown\ndedupe_parents: true\n"), 0644))

		stdout, _, err := run(t, m, "extract", filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		assert.Contains(t, stdout, "harbour expansion on Tuesday")
		assert.NotContains(t, stdout, "<p>")
	})

	t.Run("invalid config file fails", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("format: [\n"), 0644))

		_, stderr, err := run(t, m, "extract", filepath.Join(dir, "article.html"))

		require.Error(t, err)
		assert.Equal(t, densum.EINVALID, densum.ErrorCode(err))
		assert.Contains(t, stderr, "invalid config file")
	})

	t.Run("unknown format in config fails", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("format: docx\n"), 0644))

		_, _, err := run(t, m, "extract", filepath.Join(dir, "article.html"))

		require.Error(t, err)
		assert.Equal(t, densum.EINVALID, densum.ErrorCode(err))
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)

		_, stderr, err := run(t, m, "extract", filepath.Join(dir, "nope.html"))

		require.Error(t, err)
		assert.Equal(t, densum.ENOTFOUND, densum.ErrorCode(err))
		assert.Contains(t, stderr, "not found")
	})

	t.Run("page without body is a parse error", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestMain(t)
		m.Stdin = strings.NewReader("")

		_, _, err := run(t, m, "extract", "-")

		require.Error(t, err)
		assert.Equal(t, densum.EPARSE, densum.ErrorCode(err))
	})

	t.Run("writes markdown file to output directory", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		out := filepath.Join(dir, "out")

		_, stderr, err := run(t, m, "extract", "-f", "markdown", "-o", out, filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		assert.Contains(t, stderr, "Wrote")
		data, err := os.ReadFile(filepath.Join(out, "article.md"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "---\n"))
		assert.Contains(t, string(data), "extractor: density")
		assert.Contains(t, string(data), "harbour expansion on Tuesday")
	})
}

func TestMain_Run_ExtractURL(t *testing.T) {
	t.Parallel()

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(articleHTML))
		}))
		t.Cleanup(srv.Close)

		m, _ := newTestMain(t)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("user_agent: newsroom-bot/2.0\n"), 0644))

		stdout, _, err := run(t, m, "extract", srv.URL+"/news/harbour")

		require.NoError(t, err)
		assert.Equal(t, "newsroom-bot/2.0", gotUA)
		assert.Contains(t, stdout, "harbour expansion on Tuesday")
	})

	t.Run("rejects pages over the configured size", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(articleHTML))
		}))
		t.Cleanup(srv.Close)

		m, _ := newTestMain(t)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("max_body_bytes: 64\n"), 0644))

		_, _, err := run(t, m, "extract", srv.URL)

		require.Error(t, err)
		assert.Equal(t, densum.EINVALID, densum.ErrorCode(err))
	})

	t.Run("negative body limit in config fails", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("max_body_bytes: -1\n"), 0644))

		_, _, err := run(t, m, "extract", filepath.Join(dir, "article.html"))

		require.Error(t, err)
		assert.Equal(t, densum.EINVALID, densum.ErrorCode(err))
	})

	t.Run("markdown links resolve against the page origin", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(articleHTML))
		}))
		t.Cleanup(srv.Close)

		m, _ := newTestMain(t)

		stdout, _, err := run(t, m, "extract", "-f", "markdown", srv.URL+"/news/harbour")

		require.NoError(t, err)
		assert.Contains(t, stdout, srv.URL+"/img/harbour.jpg")
	})
}

func TestMain_Run_Scores(t *testing.T) {
	t.Parallel()

	m, dir := newTestMain(t)

	stdout, _, err := run(t, m, "scores", filepath.Join(dir, "article.html"))

	require.NoError(t, err)
	assert.Contains(t, stdout, "Threshold")
	assert.Contains(t, stdout, "4 of 15 nodes selected")
}

func TestMain_Run_Plot(t *testing.T) {
	t.Parallel()

	t.Run("writes svg chart", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		chart := filepath.Join(dir, "chart.svg")

		_, _, err := run(t, m, "plot", "-o", chart, filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		data, err := os.ReadFile(chart)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
		assert.Contains(t, string(data), "Composite Text Density")
	})

	t.Run("writes pdf chart", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		chart := filepath.Join(dir, "chart.pdf")

		_, _, err := run(t, m, "plot", "-o", chart, filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		data, err := os.ReadFile(chart)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		assert.Contains(t, string(data), "/Title ("+filepath.Join(dir, "article.html")+")")
	})

	t.Run("pdf chart uses the title flag", func(t *testing.T) {
		t.Parallel()

		m, dir := newTestMain(t)
		chart := filepath.Join(dir, "chart.pdf")

		_, _, err := run(t, m, "plot", "-o", chart, "--title", "Harbour story", filepath.Join(dir, "article.html"))

		require.NoError(t, err)
		data, err := os.ReadFile(chart)
		require.NoError(t, err)
		assert.Contains(t, string(data), "/Title (Harbour story)")
	})
}

func TestMain_Run_StoredExtractions(t *testing.T) {
	t.Parallel()

	m, dir := newTestMain(t)
	page := filepath.Join(dir, "article.html")

	_, stderr, err := run(t, m, "extract", "--save", page)
	require.NoError(t, err)
	match := savedIDPattern.FindStringSubmatch(stderr)
	require.Len(t, match, 2)
	id := match[1]

	stdout, _, err := run(t, m, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, id)
	assert.Contains(t, stdout, page)

	stdout, _, err = run(t, m, "show", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "harbour expansion on Tuesday")

	chart := filepath.Join(dir, "stored.svg")
	_, _, err = run(t, m, "plot", "-o", chart, id)
	require.NoError(t, err)
	assert.FileExists(t, chart)

	_, stderr, err = run(t, m, "delete", id)
	require.Error(t, err)
	assert.Contains(t, stderr, "--force")

	stdout, _, err = run(t, m, "delete", "--force", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted extraction")

	_, _, err = run(t, m, "show", id)
	require.Error(t, err)
	assert.Equal(t, densum.ENOTFOUND, densum.ErrorCode(err))
}
