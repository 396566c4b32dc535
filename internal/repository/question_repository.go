package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

// QuestionRepository reads the seeded questionnaire. Questions are never
// written through the API.
type QuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository constructs the repository.
func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionListColumns = `q.id, q.session_id, q.entity_id, q.category_name, q.question_number,
	q.question_text, q.is_critical,
	e.code AS entity_code, e.name AS entity_name,
	a.id AS answer_id, a.status AS answer_status,
	(SELECT COUNT(*) FROM audio_recordings ar WHERE ar.answer_id = a.id) AS audio_count,
	(SELECT COUNT(*) FROM documents d WHERE d.answer_id = a.id) AS document_count`

// List returns questions with entity context and answer state, applying the
// provided filters.
func (r *QuestionRepository) List(ctx context.Context, filter models.QuestionFilter) ([]models.QuestionListItem, error) {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf(`SELECT %s
	FROM questions q
	JOIN entities e ON e.id = q.entity_id
	LEFT JOIN answers a ON a.question_id = q.id`, questionListColumns))

	args := make([]interface{}, 0, 2)
	conditions := make([]string, 0, 2)
	if filter.SessionID > 0 {
		args = append(args, filter.SessionID)
		conditions = append(conditions, fmt.Sprintf("q.session_id = $%d", len(args)))
	}
	if filter.EntityID > 0 {
		args = append(args, filter.EntityID)
		conditions = append(conditions, fmt.Sprintf("q.entity_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY e.code, q.question_number")
	if filter.Limit > 0 {
		builder.WriteString(fmt.Sprintf(" LIMIT %d", filter.Limit))
	}

	var items []models.QuestionListItem
	if err := r.db.SelectContext(ctx, &items, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return items, nil
}

// GetByID retrieves one question with entity context and answer state.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.QuestionListItem, error) {
	query := fmt.Sprintf(`SELECT %s
	FROM questions q
	JOIN entities e ON e.id = q.entity_id
	LEFT JOIN answers a ON a.question_id = q.id
	WHERE q.id = $1`, questionListColumns)
	var item models.QuestionListItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// Neighbors returns the previous and next question ids within the same
// session. Either may be nil at the edges of the questionnaire.
func (r *QuestionRepository) Neighbors(ctx context.Context, sessionID, id int64) (prev, next *int64, err error) {
	const prevQuery = `SELECT id FROM questions WHERE session_id = $1 AND id < $2 ORDER BY id DESC LIMIT 1`
	const nextQuery = `SELECT id FROM questions WHERE session_id = $1 AND id > $2 ORDER BY id ASC LIMIT 1`

	var prevID int64
	switch err := r.db.GetContext(ctx, &prevID, prevQuery, sessionID, id); err {
	case nil:
		prev = &prevID
	case sql.ErrNoRows:
	default:
		return nil, nil, fmt.Errorf("previous question: %w", err)
	}

	var nextID int64
	switch err := r.db.GetContext(ctx, &nextID, nextQuery, sessionID, id); err {
	case nil:
		next = &nextID
	case sql.ErrNoRows:
	default:
		return nil, nil, fmt.Errorf("next question: %w", err)
	}

	return prev, next, nil
}
