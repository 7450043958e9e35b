package pdf_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/densum"
	"github.com/fwojciec/densum/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotter_Plot(t *testing.T) {
	t.Parallel()

	t.Run("returns ESTATE for empty scores", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pdf.NewPlotter().Plot(&buf, densum.ScoreSequence{}, 0)

		assert.Equal(t, densum.ESTATE, densum.ErrorCode(err))
		assert.Zero(t, buf.Len())
	})

	t.Run("writes a PDF document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &pdf.Plotter{Title: "article.html"}
		err := p.Plot(&buf, densum.ScoreSequence{0, 531.9, 667.4, 0, 1698.8}, 667.4)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		assert.Contains(t, buf.String(), "%%EOF")
	})

	t.Run("records the title in the document information", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &pdf.Plotter{Title: "my chart"}
		err := p.Plot(&buf, densum.ScoreSequence{1, 2}, 1)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "/Title (my chart)")
	})

	t.Run("plots a single score", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pdf.NewPlotter().Plot(&buf, densum.ScoreSequence{3}, 3)

		require.NoError(t, err)
		assert.NotZero(t, buf.Len())
	})
}
