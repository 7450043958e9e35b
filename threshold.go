package densum

import "math"

// SelectThreshold returns the score that best splits scores into two
// low-variance groups.
//
// Every score is tried as a candidate split s, in sequence order. The whole
// sequence is partitioned into scores <= s and scores > s, and the
// candidate is rated by the mean of variance(group)/len(group) over the two
// groups. The first candidate with the lowest rating wins. Candidates that
// leave one group empty are skipped, so the largest score never wins unless
// every candidate is skipped, in which case the first score is returned.
//
// Returns EEMPTY if scores is empty.
func SelectThreshold(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, Errorf(EEMPTY, "no scores to select a threshold from")
	}

	best := scores[0]
	bestVariance := math.Inf(1)

	le := make([]float64, 0, len(scores))
	gt := make([]float64, 0, len(scores))
	for _, candidate := range scores {
		le, gt = le[:0], gt[:0]
		for _, s := range scores {
			if s <= candidate {
				le = append(le, s)
			} else {
				gt = append(gt, s)
			}
		}
		if len(le) == 0 || len(gt) == 0 {
			continue
		}

		avg := (variance(le)/float64(len(le)) + variance(gt)/float64(len(gt))) / 2
		if avg < bestVariance {
			bestVariance = avg
			best = candidate
		}
	}

	return best, nil
}

// variance returns the population variance of xs. xs must not be empty.
func variance(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return sq / float64(len(xs))
}
