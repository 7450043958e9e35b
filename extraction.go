package densum

import (
	"context"
	"time"
)

// Extraction is a stored extraction run.
type Extraction struct {
	ID          string        `json:"id"`
	SourceURL   string        `json:"sourceUrl"`
	Extractor   string        `json:"extractor"`
	Content     string        `json:"content"`
	ContentHash string        `json:"contentHash"`
	Scores      ScoreSequence `json:"scores"`
	Threshold   float64       `json:"threshold"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source required")
	}
	if e.Extractor == "" {
		return Errorf(EINVALID, "extraction extractor name required")
	}
	return nil
}

// ExtractionService represents a service for managing stored extractions.
type ExtractionService interface {
	// CreateExtraction stores a new extraction.
	// ID, ContentHash and CreatedAt are assigned by the service.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Extractor *string `json:"extractor"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
