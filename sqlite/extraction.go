package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/densum"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ densum.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements densum.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashContent computes the xxHash of content as a 16 digit hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

const extractionColumns = "id, source_url, extractor, content, content_hash, scores, threshold, created_at"

// CreateExtraction stores a new extraction.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *densum.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	scores, err := encodeScores(e.Scores)
	if err != nil {
		return err
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	e.ContentHash = hashContent(e.Content)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.SourceURL, e.Extractor, e.Content, e.ContentHash, scores, e.Threshold, formatTime(e.CreatedAt))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*densum.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+extractionColumns+` FROM extractions WHERE id = ?`, id)

	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, densum.Errorf(densum.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter densum.ExtractionFilter) ([]*densum.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + extractionColumns + " FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Extractor != nil {
		query.WriteString(" AND extractor = ?")
		args = append(args, *filter.Extractor)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*densum.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return densum.Errorf(densum.ENOTFOUND, "extraction not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*densum.Extraction, error) {
	var e densum.Extraction
	var scores, createdAt string

	if err := row.Scan(&e.ID, &e.SourceURL, &e.Extractor, &e.Content, &e.ContentHash,
		&scores, &e.Threshold, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if e.Scores, err = decodeScores(scores); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &e, nil
}
