package densum

// Node is an element of a parsed markup tree.
type Node interface {
	// Text returns the aggregated text content of the element and all of
	// its descendants, in document order.
	Text() string

	// Descendants returns every descendant element in document pre-order.
	// The element itself is not included.
	Descendants() []Node

	// Links returns the link-bearing elements of the subtree rooted at this
	// element, in document order. An element is link-bearing when it carries
	// a hyperlink or resource-reference attribute (href, src, cite, ...).
	// The element itself is included when it is link-bearing.
	Links() []Node

	// Parent returns the parent element, or nil for a root element.
	Parent() Node

	// Render serializes the element and its subtree back to markup.
	Render() (string, error)
}

// Document is a parsed markup tree.
type Document interface {
	// Body returns the <body> element, or nil if the document has none.
	Body() Node

	// FindByClass returns every element below <body> whose class list
	// contains class.
	FindByClass(class string) []Node

	// Detach removes n from its parent.
	Detach(n Node)
}

// Parser builds a Document from markup text.
type Parser interface {
	// Parse parses markup into a Document.
	// Returns EPARSE if the markup cannot be parsed.
	Parse(markup string) (Document, error)
}

// Cleaner strips scripting, styling, comments, meta tags, embedded
// objects, forms and processing instructions from markup.
type Cleaner interface {
	Clean(markup string) (string, error)
}
