package densum

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Metrics holds the four raw counts the density score is built from.
// Tags, LinkTags and LinkChars are never zero: a zero count is replaced
// by 1 so that every ratio in Score stays defined.
type Metrics struct {
	Chars     float64 `json:"chars"`
	Tags      float64 `json:"tags"`
	LinkTags  float64 `json:"linkTags"`
	LinkChars float64 `json:"linkChars"`
}

// NewMetrics builds Metrics from raw counts, applying the sentinel to
// tags, linkTags and linkChars.
func NewMetrics(chars, tags, linkTags, linkChars int) Metrics {
	return Metrics{
		Chars:     float64(chars),
		Tags:      sentinel(tags),
		LinkTags:  sentinel(linkTags),
		LinkChars: sentinel(linkChars),
	}
}

// Collect computes the metrics of n: its collapsed text length, its
// descendant count, and the count and summed text length of the
// link-bearing elements in its subtree.
func Collect(n Node) Metrics {
	links := n.Links()
	return NewMetrics(charCount(n), len(n.Descendants()), len(links), textLength(links))
}

// CountChars returns the number of characters in the text content of n
// after whitespace runs have been collapsed to a single space.
func CountChars(n Node) float64 {
	return float64(charCount(n))
}

// CountLinkChars returns the summed text length of the link-bearing
// elements in the subtree of n, or 1 if that sum is zero.
func CountLinkChars(n Node) float64 {
	return sentinel(textLength(n.Links()))
}

func charCount(n Node) int {
	return utf8.RuneCountInString(CollapseWhitespace(n.Text()))
}

func textLength(nodes []Node) int {
	var total int
	for _, n := range nodes {
		total += utf8.RuneCountInString(n.Text())
	}
	return total
}

// CollapseWhitespace replaces every maximal run of white space in s with
// a single ASCII space.
func CollapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		inSpace = false
	}

	return sb.String()
}

func sentinel(n int) float64 {
	if n == 0 {
		return 1
	}
	return float64(n)
}
