package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/densum"
	main "github.com/fwojciec/densum/cmd/densum"
	"github.com/fwojciec/densum/goquery"
	"github.com/fwojciec/densum/mock"
)

// stubLoader serves pages from memory.
type stubLoader map[string]string

func (l stubLoader) Load(_ context.Context, source string) (string, error) {
	html, ok := l[source]
	if !ok {
		return "", densum.Errorf(densum.ENOTFOUND, "file %q not found", source)
	}
	return html, nil
}

// fixedExtractor returns an extractor constructor that always yields res
// and records the config it was built with.
func fixedExtractor(res *densum.Result, got *densum.Config) func(densum.Config) densum.Extractor {
	return func(cfg densum.Config) densum.Extractor {
		if got != nil {
			*got = cfg
		}
		return &mock.Extractor{
			ExtractFn: func(string) (*densum.Result, error) {
				return res, nil
			},
		}
	}
}

func sampleResult() *densum.Result {
	return &densum.Result{
		Content:   "<div><p>story</p></div>",
		Scores:    densum.ScoreSequence{0, 12.5, 3},
		Threshold: 12.5,
		Selected:  []int{1},
	}
}

func newDeps(pages map[string]string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:          context.Background(),
		Stdout:       stdout,
		Stderr:       stderr,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:       densum.DefaultConfig(),
		Format:       "html",
		Loader:       stubLoader(pages),
		NewExtractor: fixedExtractor(sampleResult(), nil),
		Parser:       goquery.NewParser(),
	}, stdout, stderr
}

// anySource returns a converter constructor that ignores the source.
func anySource(c densum.Converter) func(string) densum.Converter {
	return func(string) densum.Converter { return c }
}
