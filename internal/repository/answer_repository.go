package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

// AnswerRepository handles answer persistence. Saves are keyed on question_id
// and rely on its unique constraint, so two concurrent saves for the same
// question cannot create duplicate rows.
type AnswerRepository struct {
	db *sqlx.DB
}

// NewAnswerRepository constructs the repository.
func NewAnswerRepository(db *sqlx.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

const answerColumns = `id, question_id, text_response, respondent_name, respondent_role, notes, status, created_at, updated_at`

// Upsert inserts or updates the answer for a question in a single statement.
// Nil patch fields retain the stored value; status defaults to in_progress on
// first insert when omitted.
func (r *AnswerRepository) Upsert(ctx context.Context, questionID int64, patch models.AnswerPatch) (*models.Answer, error) {
	query := fmt.Sprintf(`INSERT INTO answers
		(question_id, text_response, respondent_name, respondent_role, notes, status)
	VALUES ($1, $2, $3, $4, $5, COALESCE($6, 'in_progress'))
	ON CONFLICT (question_id) DO UPDATE SET
		text_response   = COALESCE(EXCLUDED.text_response, answers.text_response),
		respondent_name = COALESCE(EXCLUDED.respondent_name, answers.respondent_name),
		respondent_role = COALESCE(EXCLUDED.respondent_role, answers.respondent_role),
		notes           = COALESCE(EXCLUDED.notes, answers.notes),
		status          = COALESCE($6, answers.status),
		updated_at      = CURRENT_TIMESTAMP
	RETURNING %s`, answerColumns)

	var answer models.Answer
	err := r.db.GetContext(ctx, &answer, query,
		questionID, patch.TextResponse, patch.RespondentName, patch.RespondentRole, patch.Notes, patch.Status)
	if err != nil {
		return nil, fmt.Errorf("upsert answer: %w", err)
	}
	return &answer, nil
}

// GetByID retrieves one answer row.
func (r *AnswerRepository) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	query := fmt.Sprintf(`SELECT %s FROM answers WHERE id = $1`, answerColumns)
	var answer models.Answer
	if err := r.db.GetContext(ctx, &answer, query, id); err != nil {
		return nil, err
	}
	return &answer, nil
}

// SetStatusByQuestion upserts the status for one question leaving the text
// fields untouched.
func (r *AnswerRepository) SetStatusByQuestion(ctx context.Context, questionID int64, status string) error {
	const query = `INSERT INTO answers (question_id, status)
	VALUES ($1, $2)
	ON CONFLICT (question_id) DO UPDATE SET
		status = EXCLUDED.status,
		updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, questionID, status); err != nil {
		return fmt.Errorf("set answer status: %w", err)
	}
	return nil
}
