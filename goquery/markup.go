// Package goquery implements the densum markup interfaces on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/densum"
)

var (
	_ densum.Parser   = (*Parser)(nil)
	_ densum.Document = (*Document)(nil)
	_ densum.Node     = (*Node)(nil)
)

// linkSelector matches elements carrying a hyperlink or a resource
// reference.
const linkSelector = "[href],[src],[action],[cite],[data],[background]," +
	"[longdesc],[poster],[usemap],[codebase],[archive],[classid],[profile]"

// Parser parses HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses markup as an HTML document.
func (p *Parser) Parse(markup string) (densum.Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, densum.Errorf(densum.EPARSE, "markup is empty")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, densum.Errorf(densum.EPARSE, "parsing markup: %v", err)
	}

	return &Document{doc: doc}, nil
}

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// Body returns the first <body> element, or nil.
func (d *Document) Body() densum.Node {
	body := d.body()
	if body.Length() == 0 {
		return nil
	}
	return &Node{sel: body}
}

// FindByClass returns every element below <body> whose class attribute
// contains class.
func (d *Document) FindByClass(class string) []densum.Node {
	var nodes []densum.Node
	d.body().Find("*").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass(class) {
			nodes = append(nodes, &Node{sel: s})
		}
	})
	return nodes
}

// Detach removes n and its subtree from the document. Nodes that did not
// come from this package are ignored.
func (d *Document) Detach(n densum.Node) {
	if node, ok := n.(*Node); ok {
		node.sel.Remove()
	}
}

func (d *Document) body() *goquery.Selection {
	return d.doc.Find("body").First()
}

// Node wraps a single-element selection.
type Node struct {
	sel *goquery.Selection
}

// Text returns the concatenated text of the element and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Descendants returns the descendant elements in document pre-order.
func (n *Node) Descendants() []densum.Node {
	return wrap(n.sel.Find("*"))
}

// Links returns the link-bearing elements of the subtree, the element
// itself included.
func (n *Node) Links() []densum.Node {
	return wrap(n.sel.Filter(linkSelector).AddSelection(n.sel.Find(linkSelector)))
}

// Parent returns the parent element, or nil when there is none.
func (n *Node) Parent() densum.Node {
	parent := n.sel.Parent()
	if parent.Length() == 0 {
		return nil
	}
	return &Node{sel: parent}
}

// Render returns the outer HTML of the element.
func (n *Node) Render() (string, error) {
	return goquery.OuterHtml(n.sel)
}

func wrap(sel *goquery.Selection) []densum.Node {
	nodes := make([]densum.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}
