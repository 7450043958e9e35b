package mock

import (
	"slices"
	"strings"

	"github.com/fwojciec/densum"
)

var (
	_ densum.Node     = (*Node)(nil)
	_ densum.Document = (*Document)(nil)
	_ densum.Parser   = (*Parser)(nil)
	_ densum.Cleaner  = (*Cleaner)(nil)
)

// Node is an in-memory densum.Node. Build trees with El and attach them to
// a Document (or call Link) so that parent pointers are set.
type Node struct {
	Tag      string
	Class    string
	Href     string
	Data     string
	Children []*Node

	parent *Node
}

// El returns an element with the given tag, own text and children.
func El(tag, data string, children ...*Node) *Node {
	n := &Node{Tag: tag, Data: data, Children: children}
	Link(n)
	return n
}

// Link sets the parent pointers of the subtree rooted at n.
func Link(n *Node) {
	for _, c := range n.Children {
		c.parent = n
		Link(c)
	}
}

// WithClass sets the class of n and returns it.
func (n *Node) WithClass(class string) *Node {
	n.Class = class
	return n
}

// WithHref sets the href of n and returns it.
func (n *Node) WithHref(href string) *Node {
	n.Href = href
	return n
}

// Text returns the own text of n followed by the text of its children.
func (n *Node) Text() string {
	var sb strings.Builder
	sb.WriteString(n.Data)
	for _, c := range n.Children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

func (n *Node) Descendants() []densum.Node {
	var out []densum.Node
	for _, c := range n.Children {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

func (n *Node) Links() []densum.Node {
	var out []densum.Node
	if n.Href != "" {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.Links()...)
	}
	return out
}

func (n *Node) Parent() densum.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Render writes a minimal tag representation of the subtree.
func (n *Node) Render() (string, error) {
	var sb strings.Builder
	sb.WriteString("<" + n.Tag)
	if n.Class != "" {
		sb.WriteString(` class="` + n.Class + `"`)
	}
	if n.Href != "" {
		sb.WriteString(` href="` + n.Href + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(n.Data)
	for _, c := range n.Children {
		s, _ := c.Render()
		sb.WriteString(s)
	}
	sb.WriteString("</" + n.Tag + ">")
	return sb.String(), nil
}

// Document is an in-memory densum.Document rooted at Root, which plays the
// role of <body>.
type Document struct {
	Root *Node
}

// NewDocument returns a Document whose body is root.
func NewDocument(root *Node) *Document {
	if root != nil {
		Link(root)
	}
	return &Document{Root: root}
}

func (d *Document) Body() densum.Node {
	if d.Root == nil {
		return nil
	}
	return d.Root
}

func (d *Document) FindByClass(class string) []densum.Node {
	if d.Root == nil {
		return nil
	}
	var out []densum.Node
	for _, n := range d.Root.Descendants() {
		if slices.Contains(strings.Fields(n.(*Node).Class), class) {
			out = append(out, n)
		}
	}
	return out
}

func (d *Document) Detach(n densum.Node) {
	node := n.(*Node)
	if node.parent == nil {
		return
	}
	node.parent.Children = slices.DeleteFunc(node.parent.Children, func(c *Node) bool { return c == node })
	node.parent = nil
}

// Parser is a mock implementation of densum.Parser.
type Parser struct {
	ParseFn func(markup string) (densum.Document, error)
}

func (p *Parser) Parse(markup string) (densum.Document, error) {
	return p.ParseFn(markup)
}

// Cleaner is a mock implementation of densum.Cleaner.
type Cleaner struct {
	CleanFn func(markup string) (string, error)
}

func (c *Cleaner) Clean(markup string) (string, error) {
	return c.CleanFn(markup)
}
