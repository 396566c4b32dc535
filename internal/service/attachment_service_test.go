package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
)

type mockAttachmentRepo struct {
	insertAudioErr error
	insertDocErr   error
	audio          map[int64]*models.AudioRecording
	docs           map[int64]*models.Document
	deletedAudio   []int64
	deletedDocs    []int64
}

func (m *mockAttachmentRepo) InsertAudio(ctx context.Context, rec *models.AudioRecording) (*models.AudioRecording, error) {
	if m.insertAudioErr != nil {
		return nil, m.insertAudioErr
	}
	stored := *rec
	stored.ID = 1
	return &stored, nil
}

func (m *mockAttachmentRepo) GetAudioByID(ctx context.Context, id int64) (*models.AudioRecording, error) {
	if rec, ok := m.audio[id]; ok {
		return rec, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAttachmentRepo) DeleteAudio(ctx context.Context, id int64) error {
	m.deletedAudio = append(m.deletedAudio, id)
	return nil
}

func (m *mockAttachmentRepo) InsertDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if m.insertDocErr != nil {
		return nil, m.insertDocErr
	}
	stored := *doc
	stored.ID = 1
	return &stored, nil
}

func (m *mockAttachmentRepo) GetDocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	if doc, ok := m.docs[id]; ok {
		return doc, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAttachmentRepo) DeleteDocument(ctx context.Context, id int64) error {
	m.deletedDocs = append(m.deletedDocs, id)
	return nil
}

type mockAnswerGetter struct {
	known map[int64]bool
}

func (m *mockAnswerGetter) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	if m.known[id] {
		return &models.Answer{ID: id}, nil
	}
	return nil, sql.ErrNoRows
}

type mockFileStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (m *mockFileStorage) SaveStream(key string, r io.Reader) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.saved = append(m.saved, key)
	n, _ := io.Copy(io.Discard, r)
	return n, nil
}

func (m *mockFileStorage) Delete(key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func newAttachmentService(repo *mockAttachmentRepo, store *mockFileStorage) *AttachmentService {
	answers := &mockAnswerGetter{known: map[int64]bool{5: true}}
	return NewAttachmentService(repo, answers, store, zap.NewNop(), AttachmentServiceConfig{})
}

func audioUpload(mime string, size int64) Upload {
	return Upload{
		Filename: "note.webm",
		Size:     size,
		MimeType: mime,
		Content:  bytes.NewReader(bytes.Repeat([]byte("a"), 16)),
	}
}

func TestAttachmentServiceUploadAudio(t *testing.T) {
	repo := &mockAttachmentRepo{}
	store := &mockFileStorage{}
	svc := newAttachmentService(repo, store)

	duration := 12.5
	rec, err := svc.UploadAudio(context.Background(), 5, audioUpload("audio/webm", 16), &duration)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.FilePath, "uploads/audio/"))
	assert.True(t, strings.HasSuffix(rec.FileName, ".webm"))
	require.Len(t, store.saved, 1)
	require.NotNil(t, rec.DurationSeconds)
	assert.InDelta(t, 12.5, *rec.DurationSeconds, 0.001)
}

func TestAttachmentServiceUploadAudioRejectsMime(t *testing.T) {
	store := &mockFileStorage{}
	svc := newAttachmentService(&mockAttachmentRepo{}, store)

	_, err := svc.UploadAudio(context.Background(), 5, audioUpload("application/zip", 16), nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidFileType.Code, appErrors.FromError(err).Code)
	assert.Empty(t, store.saved)
}

func TestAttachmentServiceUploadAudioRejectsOversize(t *testing.T) {
	store := &mockFileStorage{}
	svc := newAttachmentService(&mockAttachmentRepo{}, store)

	_, err := svc.UploadAudio(context.Background(), 5, audioUpload("audio/webm", 60*1024*1024), nil)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrPayloadTooLarge.Code, appErr.Code)
	assert.Equal(t, 413, appErr.Status)
	assert.Empty(t, store.saved)
}

func TestAttachmentServiceUploadAudioUnknownAnswer(t *testing.T) {
	svc := newAttachmentService(&mockAttachmentRepo{}, &mockFileStorage{})

	_, err := svc.UploadAudio(context.Background(), 99, audioUpload("audio/webm", 16), nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAttachmentServiceUploadCompensatesFailedInsert(t *testing.T) {
	repo := &mockAttachmentRepo{insertAudioErr: fmt.Errorf("connection reset")}
	store := &mockFileStorage{}
	svc := newAttachmentService(repo, store)

	_, err := svc.UploadAudio(context.Background(), 5, audioUpload("audio/webm", 16), nil)
	require.Error(t, err)
	require.Len(t, store.saved, 1)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, store.saved[0], store.deleted[0])
}

func TestAttachmentServiceUploadDocumentKeepsOriginalName(t *testing.T) {
	repo := &mockAttachmentRepo{}
	store := &mockFileStorage{}
	svc := newAttachmentService(repo, store)

	upload := Upload{
		Filename: "Q3 report.pdf",
		Size:     64,
		MimeType: "application/pdf",
		Content:  bytes.NewReader(bytes.Repeat([]byte("b"), 64)),
	}
	doc, err := svc.UploadDocument(context.Background(), 5, upload, nil)
	require.NoError(t, err)
	assert.Equal(t, "Q3 report.pdf", doc.OriginalName)
	assert.True(t, strings.HasPrefix(doc.FilePath, "uploads/documents/"))
	assert.NotEqual(t, doc.OriginalName, doc.FileName)
}

func TestAttachmentServiceDeleteAudio(t *testing.T) {
	repo := &mockAttachmentRepo{audio: map[int64]*models.AudioRecording{
		1: {ID: 1, FilePath: "uploads/audio/abc.webm"},
	}}
	store := &mockFileStorage{}
	svc := newAttachmentService(repo, store)

	require.NoError(t, svc.DeleteAudio(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deletedAudio)
	assert.Equal(t, []string{"audio/abc.webm"}, store.deleted)
}

func TestAttachmentServiceDeleteAudioMissing(t *testing.T) {
	svc := newAttachmentService(&mockAttachmentRepo{}, &mockFileStorage{})

	err := svc.DeleteAudio(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAttachmentServiceDeleteDocument(t *testing.T) {
	repo := &mockAttachmentRepo{docs: map[int64]*models.Document{
		2: {ID: 2, FilePath: "uploads/documents/abc.pdf"},
	}}
	store := &mockFileStorage{}
	svc := newAttachmentService(repo, store)

	require.NoError(t, svc.DeleteDocument(context.Background(), 2))
	assert.Equal(t, []int64{2}, repo.deletedDocs)
	assert.Equal(t, []string{"documents/abc.pdf"}, store.deleted)
}
