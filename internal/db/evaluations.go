package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-relevance/internal/types"
)

// EvaluationRow is a stored evaluation record. The full engine output lives in
// the JSONB payload; the indexed columns exist for filtering and ranking.
type EvaluationRow struct {
	ID          uuid.UUID         `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	FinalScore  float64           `json:"final_score"`
	Verdict     types.Verdict     `json:"verdict"`
	Evaluation  *types.Evaluation `json:"evaluation,omitempty"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SaveEvaluation stores an evaluation and returns the row ID
func (db *DB) SaveEvaluation(ctx context.Context, eval *types.Evaluation) (uuid.UUID, error) {
	payload, err := json.Marshal(eval)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (job_id, candidate_id, final_score, verdict, payload, evaluated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		eval.JobID, eval.CandidateID, eval.FinalScore, string(eval.Verdict), payload, eval.EvaluatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// GetEvaluationByID retrieves a stored evaluation by its row ID.
// Returns nil without error when no row exists.
func (db *DB) GetEvaluationByID(ctx context.Context, id uuid.UUID) (*EvaluationRow, error) {
	var row EvaluationRow
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, final_score, verdict, payload, evaluated_at, created_at
		 FROM evaluations WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.JobID, &row.CandidateID, &row.FinalScore, &row.Verdict,
		&payload, &row.EvaluatedAt, &row.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	if payload != nil {
		row.Evaluation = &types.Evaluation{}
		_ = json.Unmarshal(payload, row.Evaluation)
	}

	return &row, nil
}

// EvaluationFilters holds optional filters for listing evaluations
type EvaluationFilters struct {
	JobID       string
	CandidateID string
	Verdict     types.Verdict
	Limit       int
}

// ListEvaluations retrieves evaluations with optional filters, highest score
// first
func (db *DB) ListEvaluations(ctx context.Context, filters EvaluationFilters) ([]EvaluationRow, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	var conditions []string
	var args []any
	argNum := 1

	if filters.JobID != "" {
		conditions = append(conditions, fmt.Sprintf("job_id = $%d", argNum))
		args = append(args, filters.JobID)
		argNum++
	}
	if filters.CandidateID != "" {
		conditions = append(conditions, fmt.Sprintf("candidate_id = $%d", argNum))
		args = append(args, filters.CandidateID)
		argNum++
	}
	if filters.Verdict != "" {
		conditions = append(conditions, fmt.Sprintf("verdict = $%d", argNum))
		args = append(args, string(filters.Verdict))
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit)
	query := fmt.Sprintf(
		`SELECT id, job_id, candidate_id, final_score, verdict, payload, evaluated_at, created_at
		 FROM evaluations %s
		 ORDER BY final_score DESC, evaluated_at DESC
		 LIMIT $%d`,
		whereClause, argNum,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var results []EvaluationRow
	for rows.Next() {
		var row EvaluationRow
		var payload []byte
		if err := rows.Scan(&row.ID, &row.JobID, &row.CandidateID, &row.FinalScore,
			&row.Verdict, &payload, &row.EvaluatedAt, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if payload != nil {
			row.Evaluation = &types.Evaluation{}
			_ = json.Unmarshal(payload, row.Evaluation)
		}
		results = append(results, row)
	}
	return results, nil
}

// DeleteEvaluationsByJob removes all stored evaluations for a job and returns
// the number of deleted rows
func (db *DB) DeleteEvaluationsByJob(ctx context.Context, jobID string) (int64, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM evaluations WHERE job_id = $1`, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete evaluations: %w", err)
	}
	return result.RowsAffected(), nil
}
