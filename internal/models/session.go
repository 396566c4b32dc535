package models

import "time"

// Session statuses follow the workshop lifecycle.
const (
	SessionStatusNotStarted = "not_started"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)

// Session represents a scheduled workshop instance.
type Session struct {
	ID            int64     `db:"id" json:"id"`
	SessionNumber int       `db:"session_number" json:"session_number"`
	Name          string    `db:"name" json:"name"`
	Description   *string   `db:"description" json:"description"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ValidSessionStatus reports whether s is an allowed session status.
func ValidSessionStatus(s string) bool {
	switch s {
	case SessionStatusNotStarted, SessionStatusInProgress, SessionStatusCompleted:
		return true
	}
	return false
}

// SessionExportRow is one line of a session report export.
type SessionExportRow struct {
	EntityCode     string  `db:"entity_code"`
	CategoryName   *string `db:"category_name"`
	QuestionNumber int     `db:"question_number"`
	QuestionText   string  `db:"question_text"`
	AnswerStatus   *string `db:"answer_status"`
	RespondentName *string `db:"respondent_name"`
	TextResponse   *string `db:"text_response"`
}

// EntityProgress aggregates per-entity answer completion for a session.
type EntityProgress struct {
	EntityID          int64  `db:"entity_id" json:"entity_id"`
	EntityCode        string `db:"entity_code" json:"entity_code"`
	EntityName        string `db:"entity_name" json:"entity_name"`
	TotalQuestions    int    `db:"total_questions" json:"total_questions"`
	AnsweredQuestions int    `db:"answered_questions" json:"answered_questions"`
	Percentage        int    `db:"-" json:"percentage"`
}
