package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/densum"
)

// timeFormat is a fixed-width UTC layout, so stored timestamps sort
// lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// parseTime parses a stored timestamp.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

func encodeScores(scores densum.ScoreSequence) (string, error) {
	if scores == nil {
		scores = densum.ScoreSequence{}
	}
	b, err := json.Marshal(scores)
	if err != nil {
		return "", fmt.Errorf("failed to encode scores: %w", err)
	}
	return string(b), nil
}

func decodeScores(value string) (densum.ScoreSequence, error) {
	var scores densum.ScoreSequence
	if err := json.Unmarshal([]byte(value), &scores); err != nil {
		return nil, fmt.Errorf("failed to decode scores: %w", err)
	}
	if len(scores) == 0 {
		return nil, nil
	}
	return scores, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
