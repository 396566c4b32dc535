package models

import "time"

// Answer statuses track the review state of a single question.
const (
	AnswerStatusPending    = "pending"
	AnswerStatusInProgress = "in_progress"
	AnswerStatusCompleted  = "completed"
)

// Answer holds the recorded response for one question. One row per question,
// enforced by a unique constraint on question_id.
type Answer struct {
	ID             int64     `db:"id" json:"id"`
	QuestionID     int64     `db:"question_id" json:"question_id"`
	TextResponse   *string   `db:"text_response" json:"text_response"`
	RespondentName *string   `db:"respondent_name" json:"respondent_name"`
	RespondentRole *string   `db:"respondent_role" json:"respondent_role"`
	Notes          *string   `db:"notes" json:"notes"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ValidAnswerStatus reports whether s is an allowed answer status.
func ValidAnswerStatus(s string) bool {
	switch s {
	case AnswerStatusPending, AnswerStatusInProgress, AnswerStatusCompleted:
		return true
	}
	return false
}

// AnswerPatch carries a partial update. Nil fields retain the stored value.
type AnswerPatch struct {
	TextResponse   *string
	RespondentName *string
	RespondentRole *string
	Notes          *string
	Status         *string
}

// AnswerWithAttachments bundles an answer with its attachment lists,
// newest-first.
type AnswerWithAttachments struct {
	Answer
	AudioRecordings []AudioRecording `json:"audioRecordings"`
	Documents       []Document       `json:"documents"`
}
