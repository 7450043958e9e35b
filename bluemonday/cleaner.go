// Package bluemonday implements densum.Cleaner with a policy from
// github.com/microcosm-cc/bluemonday.
package bluemonday

import (
	"github.com/fwojciec/densum"
	"github.com/microcosm-cc/bluemonday"
)

var _ densum.Cleaner = (*Cleaner)(nil)

// htmlElements is the standard HTML element set minus the stripped
// elements. Elements outside the set, including html, head, body, form
// and custom elements, are unwrapped: the tag is dropped and its content
// kept.
var htmlElements = []string{
	"a", "abbr", "acronym", "address", "area", "article", "aside", "audio",
	"b", "bdi", "bdo", "big", "blockquote", "br", "canvas", "caption",
	"center", "cite", "code", "col", "colgroup", "data", "dd", "del",
	"details", "dfn", "dialog", "dir", "div", "dl", "dt", "em", "fieldset",
	"figcaption", "figure", "font", "footer", "h1", "h2", "h3", "h4", "h5",
	"h6", "header", "hgroup", "hr", "i", "img", "ins", "kbd", "label",
	"legend", "li", "main", "map", "mark", "menu", "meter", "nav", "nobr",
	"ol", "output", "p", "picture", "pre", "progress", "q", "rp", "rt",
	"ruby", "s", "samp", "section", "small", "source", "span", "strike",
	"strong", "sub", "summary", "sup", "table", "tbody", "td", "tfoot",
	"th", "thead", "time", "tr", "track", "tt", "u", "ul", "var", "video",
	"wbr",
}

// strippedElements are removed together with their content.
var strippedElements = []string{
	"applet", "button", "embed", "frame", "frameset", "iframe", "layer",
	"noembed", "noframes", "noscript", "object", "param", "select",
	"textarea",
}

// keptAttributes are the attributes kept on any element. Event handlers
// and inline styles are dropped.
var keptAttributes = []string{
	"abbr", "align", "alt", "axis", "background", "border", "cellpadding",
	"cellspacing", "cite", "class", "clear", "color", "cols", "colspan",
	"coords", "datetime", "dir", "face", "headers", "height", "href",
	"hreflang", "hspace", "id", "label", "lang", "longdesc", "media", "name",
	"nowrap", "poster", "rel", "rev", "rows", "rowspan", "rules", "scope",
	"shape", "size", "span", "src", "srcset", "start", "summary", "target",
	"title", "type", "usemap", "valign", "value", "vspace", "width",
}

// Cleaner strips scripting, styling, comments, meta tags, embedded
// objects, forms and processing instructions from HTML and leaves the
// rest of the tree intact.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a Cleaner with the fixed stripping policy.
func NewCleaner() *Cleaner {
	p := bluemonday.NewPolicy()
	p.AllowElements(htmlElements...)
	p.AllowNoAttrs().OnElements(htmlElements...)
	p.AllowAttrs(keptAttributes...).Globally()

	// Unparseable and javascript: URLs lose their attribute; the element
	// stays.
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "mailto", "tel", "ftp", "sms", "data")

	// script, style and title content is always skipped.
	p.SkipElementsContent(strippedElements...)

	return &Cleaner{policy: p}
}

// Clean returns markup with the stripped elements and attributes removed.
func (c *Cleaner) Clean(markup string) (string, error) {
	return c.policy.Sanitize(markup), nil
}
