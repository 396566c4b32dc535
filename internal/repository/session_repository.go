package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

// SessionRepository handles workshop session persistence.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, session_number, name, description, status, created_at, updated_at`

// List returns all sessions in workshop order.
func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM sessions ORDER BY session_number`, sessionColumns)
	var sessions []models.Session
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// GetByID retrieves one session row.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE id = $1`, sessionColumns)
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateStatus sets the session lifecycle status and returns the updated row.
func (r *SessionRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error) {
	query := fmt.Sprintf(`UPDATE sessions SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 RETURNING %s`, sessionColumns)
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id, status); err != nil {
		return nil, err
	}
	return &session, nil
}

// ExportRows returns a session's questions with answer state in display
// order, for report exports.
func (r *SessionRepository) ExportRows(ctx context.Context, sessionID int64) ([]models.SessionExportRow, error) {
	const query = `SELECT e.code AS entity_code, q.category_name, q.question_number, q.question_text,
		a.status AS answer_status, a.respondent_name, a.text_response
	FROM questions q
	JOIN entities e ON e.id = q.entity_id
	LEFT JOIN answers a ON a.question_id = q.id
	WHERE q.session_id = $1
	ORDER BY e.code, q.question_number`
	var rows []models.SessionExportRow
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("session export rows: %w", err)
	}
	return rows, nil
}

// Progress aggregates completed answers per entity for one session. Entities
// without questions in the session still appear with zero counts.
func (r *SessionRepository) Progress(ctx context.Context, sessionID int64) ([]models.EntityProgress, error) {
	const query = `SELECT e.id AS entity_id, e.code AS entity_code, e.name AS entity_name,
		COUNT(q.id) AS total_questions,
		COALESCE(SUM(CASE WHEN a.status = 'completed' THEN 1 ELSE 0 END), 0) AS answered_questions
	FROM entities e
	LEFT JOIN questions q ON q.entity_id = e.id AND q.session_id = $1
	LEFT JOIN answers a ON a.question_id = q.id
	GROUP BY e.id, e.code, e.name
	ORDER BY e.code`
	var rows []models.EntityProgress
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("session progress: %w", err)
	}
	return rows, nil
}
