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

func sessionRows(status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "session_number", "name", "description", "status", "created_at", "updated_at",
	}).AddRow(int64(1), 1, "Finance Deep Dive", sql.NullString{}, status, now, now)
}

func TestSessionRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions ORDER BY session_number")).
		WillReturnRows(sessionRows(models.SessionStatusNotStarted))

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Finance Deep Dive", sessions[0].Name)
}

func TestSessionRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sessions SET status = $2")).
		WithArgs(int64(1), models.SessionStatusInProgress).
		WillReturnRows(sessionRows(models.SessionStatusInProgress))

	session, err := repo.UpdateStatus(context.Background(), 1, models.SessionStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusInProgress, session.Status)
}

func TestSessionRepositoryUpdateStatusMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sessions SET status = $2")).
		WithArgs(int64(99), models.SessionStatusCompleted).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), 99, models.SessionStatusCompleted)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSessionRepositoryProgress(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"entity_id", "entity_code", "entity_name", "total_questions", "answered_questions"}).
		AddRow(int64(1), "FIN", "Finance", 10, 4).
		AddRow(int64(2), "HR", "Human Resources", 0, 0)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN questions q ON q.entity_id = e.id AND q.session_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	progress, err := repo.Progress(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.Equal(t, "FIN", progress[0].EntityCode)
	assert.Equal(t, 4, progress[0].AnsweredQuestions)
	assert.Equal(t, 0, progress[1].TotalQuestions)
}

func TestSessionRepositoryExportRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{
		"entity_code", "category_name", "question_number", "question_text",
		"answer_status", "respondent_name", "text_response",
	}).AddRow("FIN", sql.NullString{String: "Reporting", Valid: true}, 1, "Describe the close process",
		sql.NullString{String: "completed", Valid: true}, sql.NullString{String: "CFO", Valid: true},
		sql.NullString{String: "Monthly close in 5 days", Valid: true})
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY e.code, q.question_number")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	exportRows, err := repo.ExportRows(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, exportRows, 1)
	assert.Equal(t, "FIN", exportRows[0].EntityCode)
	require.NotNil(t, exportRows[0].AnswerStatus)
	assert.Equal(t, "completed", *exportRows[0].AnswerStatus)
}
