package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ats-backend/internal/ats/rubric"
)

// PGRepo implements Repo using Postgres. The rubric result is stored as a
// jsonb column so category breakdowns survive unchanged.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id, user_id, document_id, status, vocabulary_version, result, error_message, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	resultPayload, err := marshalResult(analysis.Result)
	if err != nil {
		return err
	}

	var errorMessage sql.NullString
	if analysis.ErrorMessage != "" {
		errorMessage = sql.NullString{String: analysis.ErrorMessage, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.DocumentID,
		analysis.Status,
		analysis.VocabularyVersion,
		resultPayload,
		errorMessage,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID, scoped to the owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT id, user_id, document_id, status, vocabulary_version, result, error_message, created_at
FROM analyses
WHERE id = $1 AND user_id = $2
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByUser returns analyses newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, document_id, status, vocabulary_version, result, error_message, created_at
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var result sql.NullString
	var errorMessage sql.NullString
	if err := row.Scan(
		&analysis.ID,
		&analysis.UserID,
		&analysis.DocumentID,
		&analysis.Status,
		&analysis.VocabularyVersion,
		&result,
		&errorMessage,
		&analysis.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}
	if result.Valid && result.String != "" {
		var parsed rubric.Result
		if err := json.Unmarshal([]byte(result.String), &parsed); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal analysis result: %w", err)
		}
		analysis.Result = &parsed
	}
	if errorMessage.Valid {
		analysis.ErrorMessage = errorMessage.String
	}
	return analysis, nil
}

func marshalResult(result *rubric.Result) (any, error) {
	if result == nil {
		return nil, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis result: %w", err)
	}
	return string(data), nil
}

var _ Repo = (*PGRepo)(nil)
