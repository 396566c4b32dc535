package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

// AttachmentRepository persists audio recording and document metadata rows.
type AttachmentRepository struct {
	db *sqlx.DB
}

// NewAttachmentRepository constructs the repository.
func NewAttachmentRepository(db *sqlx.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

const audioColumns = `id, answer_id, file_path, file_name, mime_type, file_size, duration_seconds, created_at`
const documentColumns = `id, answer_id, file_path, file_name, original_name, mime_type, file_size, description, created_at`

// InsertAudio stores metadata for an uploaded recording.
func (r *AttachmentRepository) InsertAudio(ctx context.Context, rec *models.AudioRecording) (*models.AudioRecording, error) {
	query := fmt.Sprintf(`INSERT INTO audio_recordings
		(answer_id, file_path, file_name, mime_type, file_size, duration_seconds)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING %s`, audioColumns)
	var stored models.AudioRecording
	err := r.db.GetContext(ctx, &stored, query,
		rec.AnswerID, rec.FilePath, rec.FileName, rec.MimeType, rec.FileSize, rec.DurationSeconds)
	if err != nil {
		return nil, fmt.Errorf("insert audio recording: %w", err)
	}
	return &stored, nil
}

// GetAudioByID retrieves one recording row.
func (r *AttachmentRepository) GetAudioByID(ctx context.Context, id int64) (*models.AudioRecording, error) {
	query := fmt.Sprintf(`SELECT %s FROM audio_recordings WHERE id = $1`, audioColumns)
	var rec models.AudioRecording
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListAudioByAnswer returns an answer's recordings newest-first.
func (r *AttachmentRepository) ListAudioByAnswer(ctx context.Context, answerID int64) ([]models.AudioRecording, error) {
	query := fmt.Sprintf(`SELECT %s FROM audio_recordings WHERE answer_id = $1 ORDER BY created_at DESC`, audioColumns)
	var recs []models.AudioRecording
	if err := r.db.SelectContext(ctx, &recs, query, answerID); err != nil {
		return nil, fmt.Errorf("list audio recordings: %w", err)
	}
	return recs, nil
}

// DeleteAudio removes a recording row.
func (r *AttachmentRepository) DeleteAudio(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM audio_recordings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete audio recording: %w", err)
	}
	return nil
}

// InsertDocument stores metadata for an uploaded document.
func (r *AttachmentRepository) InsertDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query := fmt.Sprintf(`INSERT INTO documents
		(answer_id, file_path, file_name, original_name, mime_type, file_size, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING %s`, documentColumns)
	var stored models.Document
	err := r.db.GetContext(ctx, &stored, query,
		doc.AnswerID, doc.FilePath, doc.FileName, doc.OriginalName, doc.MimeType, doc.FileSize, doc.Description)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &stored, nil
}

// GetDocumentByID retrieves one document row.
func (r *AttachmentRepository) GetDocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE id = $1`, documentColumns)
	var doc models.Document
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocumentsByAnswer returns an answer's documents newest-first.
func (r *AttachmentRepository) ListDocumentsByAnswer(ctx context.Context, answerID int64) ([]models.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE answer_id = $1 ORDER BY created_at DESC`, documentColumns)
	var docs []models.Document
	if err := r.db.SelectContext(ctx, &docs, query, answerID); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument removes a document row.
func (r *AttachmentRepository) DeleteDocument(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
