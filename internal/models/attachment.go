package models

import "time"

// AudioRecording is a voice note attached to an answer. FilePath is relative
// to the server root and served statically.
type AudioRecording struct {
	ID              int64     `db:"id" json:"id"`
	AnswerID        int64     `db:"answer_id" json:"answer_id"`
	FilePath        string    `db:"file_path" json:"file_path"`
	FileName        string    `db:"file_name" json:"file_name"`
	MimeType        string    `db:"mime_type" json:"mime_type"`
	FileSize        int64     `db:"file_size" json:"file_size"`
	DurationSeconds *float64  `db:"duration_seconds" json:"duration_seconds"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Document is a file attached to an answer. OriginalName keeps the
// caller-supplied filename for downloads, distinct from the generated storage
// name.
type Document struct {
	ID           int64     `db:"id" json:"id"`
	AnswerID     int64     `db:"answer_id" json:"answer_id"`
	FilePath     string    `db:"file_path" json:"file_path"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	MimeType     string    `db:"mime_type" json:"mime_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	Description  *string   `db:"description" json:"description"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
