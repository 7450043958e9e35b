package goquery_test

import (
	"testing"

	"github.com/fwojciec/densum"
	"github.com/fwojciec/densum/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) densum.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(markup)
	require.NoError(t, err)
	return doc
}

func texts(nodes []densum.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Text()
	}
	return out
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("returns EPARSE for empty markup", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(" \n ")

		assert.Equal(t, densum.EPARSE, densum.ErrorCode(err))
	})

	t.Run("wraps fragments in a body", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<p>hello</p>")

		body := doc.Body()
		require.NotNil(t, body)
		assert.Equal(t, "hello", body.Text())
	})
}

func TestNode_Descendants(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body><div><h1>a</h1><p>b<em>c</em></p></div><ul><li>d</li></ul></body>`)

	got := doc.Body().Descendants()

	assert.Equal(t, []string{"abc", "a", "bc", "c", "d", "d"}, texts(got))
}

func TestNode_Links(t *testing.T) {
	t.Parallel()

	t.Run("collects link-bearing descendants", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div><a href="/x">one</a><img src="/i.png"><blockquote cite="/q">two</blockquote><span>no</span></div></body>`)

		div := doc.Body().Descendants()[0]

		assert.Equal(t, []string{"one", "", "two"}, texts(div.Links()))
	})

	t.Run("includes the element itself", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><a href="/x">self</a></body>`)

		a := doc.Body().Descendants()[0]

		assert.Equal(t, []string{"self"}, texts(a.Links()))
	})

	t.Run("returns nothing without links", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><p>plain</p></body>`)

		assert.Empty(t, doc.Body().Links())
	})
}

func TestNode_Parent(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body><div id="outer"><p>x</p></div></body>`)
	p := doc.Body().Descendants()[1]

	parent := p.Parent()
	require.NotNil(t, parent)
	html, err := parent.Render()
	require.NoError(t, err)
	assert.Equal(t, `<div id="outer"><p>x</p></div>`, html)
}

func TestDocument_FindByClass(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body class="hidden"><p class="lead hidden">a</p><p class="hiddenish">b</p><div><span class="hidden">c</span></div></body>`)

	got := doc.FindByClass("hidden")

	assert.Equal(t, []string{"a", "c"}, texts(got))
}

func TestDocument_Detach(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<body><p>keep</p><div class="ad"><p>drop</p></div></body>`)

	for _, n := range doc.FindByClass("ad") {
		doc.Detach(n)
	}

	body := doc.Body()
	assert.Equal(t, "keep", body.Text())
	assert.Len(t, body.Descendants(), 1)
}
