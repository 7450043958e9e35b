package density

import (
	"strings"

	"github.com/fwojciec/densum"
)

// Overlap returns the share of the words of reference that also occur in
// candidate, counting repeated words separately. Both arguments are
// markup; only their text is compared. It returns 0 when reference has no
// words.
func Overlap(parser densum.Parser, reference, candidate string) (float64, error) {
	ref, err := words(parser, reference)
	if err != nil {
		return 0, err
	}
	if len(ref) == 0 {
		return 0, nil
	}

	cand, err := words(parser, candidate)
	if err != nil {
		return 0, err
	}
	available := make(map[string]int, len(cand))
	for _, w := range cand {
		available[w]++
	}

	var matched int
	for _, w := range ref {
		if available[w] > 0 {
			available[w]--
			matched++
		}
	}

	return float64(matched) / float64(len(ref)), nil
}

// words returns the lower-cased words of the text of markup.
func words(parser densum.Parser, markup string) ([]string, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}

	doc, err := parser.Parse(markup)
	if err != nil {
		return nil, err
	}
	body := doc.Body()
	if body == nil {
		return nil, nil
	}

	return strings.Fields(strings.ToLower(body.Text())), nil
}
