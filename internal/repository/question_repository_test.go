package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

func questionListRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "session_id", "entity_id", "category_name", "question_number", "question_text",
		"is_critical", "entity_code", "entity_name", "answer_id", "answer_status",
		"audio_count", "document_count",
	}).AddRow(int64(10), int64(1), int64(2), sql.NullString{String: "Reporting", Valid: true}, 1,
		"Describe the close process", false, "FIN", "Finance",
		sql.NullInt64{Int64: 5, Valid: true}, sql.NullString{String: "completed", Valid: true}, 2, 1)
}

func TestQuestionRepositoryListBySession(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE q.session_id = $1 ORDER BY e.code, q.question_number")).
		WithArgs(int64(1)).
		WillReturnRows(questionListRows())

	items, err := repo.List(context.Background(), models.QuestionFilter{SessionID: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "FIN", items[0].EntityCode)
	assert.Equal(t, 2, items[0].AudioCount)
	require.NotNil(t, items[0].AnswerID)
	assert.Equal(t, int64(5), *items[0].AnswerID)
}

func TestQuestionRepositoryListWithEntityAndLimit(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE q.session_id = $1 AND q.entity_id = $2 ORDER BY e.code, q.question_number LIMIT 25")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(questionListRows())

	items, err := repo.List(context.Background(), models.QuestionFilter{SessionID: 1, EntityID: 2, Limit: 25})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestQuestionRepositoryGetByIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE q.id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestQuestionRepositoryNeighbors(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("id < $2 ORDER BY id DESC LIMIT 1")).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectQuery(regexp.QuoteMeta("id > $2 ORDER BY id ASC LIMIT 1")).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	prev, next, err := repo.Neighbors(context.Background(), 1, 10)
	require.NoError(t, err)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, int64(9), *prev)
	assert.Equal(t, int64(11), *next)
}

func TestQuestionRepositoryNeighborsAtEdges(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("id < $2")).
		WithArgs(int64(1), int64(1)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("id > $2")).
		WithArgs(int64(1), int64(1)).
		WillReturnError(sql.ErrNoRows)

	prev, next, err := repo.Neighbors(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}
