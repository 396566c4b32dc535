package models

// Question is a seeded questionnaire item. Read-only from the API's
// perspective.
type Question struct {
	ID             int64   `db:"id" json:"id"`
	SessionID      int64   `db:"session_id" json:"session_id"`
	EntityID       int64   `db:"entity_id" json:"entity_id"`
	CategoryName   *string `db:"category_name" json:"category_name"`
	QuestionNumber int     `db:"question_number" json:"question_number"`
	QuestionText   string  `db:"question_text" json:"question_text"`
	IsCritical     bool    `db:"is_critical" json:"is_critical"`
}

// QuestionListItem decorates a question with entity context and answer state
// for list views.
type QuestionListItem struct {
	Question
	EntityCode    string  `db:"entity_code" json:"entity_code"`
	EntityName    string  `db:"entity_name" json:"entity_name"`
	AnswerID      *int64  `db:"answer_id" json:"answer_id"`
	AnswerStatus  *string `db:"answer_status" json:"answer_status"`
	AudioCount    int     `db:"audio_count" json:"audio_count"`
	DocumentCount int     `db:"document_count" json:"document_count"`
}

// QuestionFilter narrows question listings.
type QuestionFilter struct {
	SessionID int64
	EntityID  int64
	Limit     int
}

// QuestionDetail is a single question with its answer, attachments and
// prev/next navigation within the session.
type QuestionDetail struct {
	QuestionListItem
	Answer          *Answer          `json:"answer"`
	AudioRecordings []AudioRecording `json:"audioRecordings"`
	Documents       []Document       `json:"documents"`
	PrevID          *int64           `json:"prev_id"`
	NextID          *int64           `json:"next_id"`
}

// CategoryGroup partitions questions for display, preserving first-seen
// category order.
type CategoryGroup struct {
	Category  string             `json:"category"`
	Questions []QuestionListItem `json:"questions"`
}
