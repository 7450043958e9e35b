package density

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/densum"
)

// FragmentSeparator separates serialized fragments in assembled content.
const FragmentSeparator = "\n\n"

// Assemble selects the nodes scoring at or above threshold and joins the
// serialized markup of each selected node's parent, in document order.
// A parent with several selected children is emitted once per child
// unless dedupe is set. Dedupe compares serialized markup, so distinct
// parents with identical markup are also emitted once. It returns the
// content and the selected indices.
//
// Returns EINVALID if nodes and scores differ in length.
func Assemble(nodes []densum.Node, scores []float64, threshold float64, dedupe bool) (string, []int, error) {
	if len(nodes) != len(scores) {
		return "", nil, densum.Errorf(densum.EINVALID, "got %d nodes but %d scores", len(nodes), len(scores))
	}

	var selected []int
	var fragments []string
	seen := make(map[uint64]struct{})

	for i, score := range scores {
		if score < threshold {
			continue
		}
		selected = append(selected, i)

		target := nodes[i].Parent()
		if target == nil {
			target = nodes[i]
		}

		fragment, err := target.Render()
		if err != nil {
			return "", nil, err
		}

		if dedupe {
			key := xxhash.Sum64String(fragment)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}

		fragments = append(fragments, fragment)
	}

	return strings.Join(fragments, FragmentSeparator), selected, nil
}
