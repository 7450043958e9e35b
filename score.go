package densum

import "math"

// ScoreSequence is the composite text density of every node below <body>,
// in document order.
type ScoreSequence []float64

// Len returns the number of scores.
func (s ScoreSequence) Len() int {
	return len(s)
}

// Min returns the smallest score, or 0 for an empty sequence.
func (s ScoreSequence) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	v := s[0]
	for _, x := range s[1:] {
		v = math.Min(v, x)
	}
	return v
}

// Max returns the largest score, or 0 for an empty sequence.
func (s ScoreSequence) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	v := s[0]
	for _, x := range s[1:] {
		v = math.Max(v, x)
	}
	return v
}

// Score computes the composite text density of a node from its metrics and
// the link-character and character counts of the whole body.
//
// The node's character-to-tag ratio is weighted by the logarithm of
//
//	(chars / linkChars) * (tags / linkTags)
//
// taken in a base that grows with the node's own link text and with the
// link-text share of the whole body. Results that are not finite (0/0
// forms, logarithms of zero) score 0.
func Score(m Metrics, linkCharsBody, charsBody float64) float64 {
	density := m.Chars / m.Tags
	end := (m.Chars / m.LinkChars) * (m.Tags / m.LinkTags)

	notLinkChars := m.Chars - m.LinkChars
	if notLinkChars <= 0 {
		notLinkChars = 1
	}

	base1 := (m.Chars / notLinkChars) * m.LinkChars
	base2 := (linkCharsBody / charsBody) * m.Chars
	base := math.Log(base1 + base2 + math.E)

	ctd := density * (math.Log(end) / math.Log(base))
	if math.IsNaN(ctd) || math.IsInf(ctd, 0) {
		return 0
	}
	return ctd
}
