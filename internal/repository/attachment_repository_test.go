package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

func audioRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "answer_id", "file_path", "file_name", "mime_type", "file_size", "duration_seconds", "created_at",
	}).AddRow(int64(1), int64(5), "uploads/audio/abc.webm", "abc.webm", "audio/webm", int64(2048),
		sql.NullFloat64{Float64: 12.5, Valid: true}, time.Now())
}

func documentRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "answer_id", "file_path", "file_name", "original_name", "mime_type", "file_size", "description", "created_at",
	}).AddRow(int64(1), int64(5), "uploads/documents/abc.pdf", "abc.pdf", "report.pdf", "application/pdf",
		int64(4096), sql.NullString{}, time.Now())
}

func TestAttachmentRepositoryInsertAudio(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttachmentRepository(db)

	duration := 12.5
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audio_recordings")).
		WithArgs(int64(5), "uploads/audio/abc.webm", "abc.webm", "audio/webm", int64(2048), duration).
		WillReturnRows(audioRow())

	stored, err := repo.InsertAudio(context.Background(), &models.AudioRecording{
		AnswerID:        5,
		FilePath:        "uploads/audio/abc.webm",
		FileName:        "abc.webm",
		MimeType:        "audio/webm",
		FileSize:        2048,
		DurationSeconds: &duration,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	require.NotNil(t, stored.DurationSeconds)
	assert.InDelta(t, 12.5, *stored.DurationSeconds, 0.001)
}

func TestAttachmentRepositoryInsertDocument(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttachmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs(int64(5), "uploads/documents/abc.pdf", "abc.pdf", "report.pdf", "application/pdf", int64(4096), nil).
		WillReturnRows(documentRow())

	stored, err := repo.InsertDocument(context.Background(), &models.Document{
		AnswerID:     5,
		FilePath:     "uploads/documents/abc.pdf",
		FileName:     "abc.pdf",
		OriginalName: "report.pdf",
		MimeType:     "application/pdf",
		FileSize:     4096,
	})
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", stored.OriginalName)
}

func TestAttachmentRepositoryGetAudioMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttachmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM audio_recordings WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAudioByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAttachmentRepositoryListByAnswer(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttachmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM audio_recordings WHERE answer_id = $1 ORDER BY created_at DESC")).
		WithArgs(int64(5)).
		WillReturnRows(audioRow())
	mock.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE answer_id = $1 ORDER BY created_at DESC")).
		WithArgs(int64(5)).
		WillReturnRows(documentRow())

	recs, err := repo.ListAudioByAnswer(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	docs, err := repo.ListDocumentsByAnswer(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestAttachmentRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttachmentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM audio_recordings WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteAudio(context.Background(), 1))
	require.NoError(t, repo.DeleteDocument(context.Background(), 1))
}
