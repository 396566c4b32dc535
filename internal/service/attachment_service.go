package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
	"github.com/deepaksx/rawabi-workshop-app/pkg/storage"
)

// uploadPathPrefix roots stored file paths so they can be returned to clients
// and served statically without translation.
const uploadPathPrefix = "uploads"

type attachmentStore interface {
	InsertAudio(ctx context.Context, rec *models.AudioRecording) (*models.AudioRecording, error)
	GetAudioByID(ctx context.Context, id int64) (*models.AudioRecording, error)
	DeleteAudio(ctx context.Context, id int64) error
	InsertDocument(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetDocumentByID(ctx context.Context, id int64) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

type answerGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Answer, error)
}

type fileStorage interface {
	SaveStream(key string, r io.Reader) (int64, error)
	Delete(key string) error
}

// Upload carries the metadata and stream of one multipart file.
type Upload struct {
	Filename string
	Size     int64
	MimeType string
	Content  io.Reader
}

// AttachmentServiceConfig holds validation parameters for uploads.
type AttachmentServiceConfig struct {
	MaxFileSize   int64
	AudioMIMEs    []string
	DocumentMIMEs []string
}

// AttachmentService manages attachment files and their metadata rows. The
// write order is file first, row second: if the row insert fails the
// just-written file is removed, so rows never reference missing files by
// construction.
type AttachmentService struct {
	repo    attachmentStore
	answers answerGetter
	storage fileStorage
	logger  *zap.Logger
	cfg     AttachmentServiceConfig
	audio   map[string]struct{}
	docs    map[string]struct{}
}

// NewAttachmentService constructs the service with defaults.
func NewAttachmentService(repo attachmentStore, answers answerGetter, store fileStorage, logger *zap.Logger, cfg AttachmentServiceConfig) *AttachmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 50 * 1024 * 1024
	}
	if len(cfg.AudioMIMEs) == 0 {
		cfg.AudioMIMEs = []string{"audio/webm", "audio/mp3", "audio/mpeg", "audio/wav", "audio/ogg", "audio/mp4"}
	}
	if len(cfg.DocumentMIMEs) == 0 {
		cfg.DocumentMIMEs = []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.ms-excel",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"application/vnd.ms-powerpoint",
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
			"image/jpeg",
			"image/png",
			"image/gif",
			"text/plain",
			"text/csv",
		}
	}
	return &AttachmentService{
		repo:    repo,
		answers: answers,
		storage: store,
		logger:  logger,
		cfg:     cfg,
		audio:   mimeSet(cfg.AudioMIMEs),
		docs:    mimeSet(cfg.DocumentMIMEs),
	}
}

// UploadAudio validates and stores a recording for an answer.
func (s *AttachmentService) UploadAudio(ctx context.Context, answerID int64, upload Upload, durationSeconds *float64) (*models.AudioRecording, error) {
	if err := s.ensureAnswer(ctx, answerID); err != nil {
		return nil, err
	}
	if err := s.validateUpload(upload, s.audio); err != nil {
		return nil, err
	}

	key := storage.Key(storage.KindAudio, storage.GenerateFilename(upload.Filename))
	written, err := s.storage.SaveStream(key, upload.Content)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store audio file")
	}

	rec := &models.AudioRecording{
		AnswerID:        answerID,
		FilePath:        path.Join(uploadPathPrefix, key),
		FileName:        path.Base(key),
		MimeType:        upload.MimeType,
		FileSize:        written,
		DurationSeconds: durationSeconds,
	}
	stored, err := s.repo.InsertAudio(ctx, rec)
	if err != nil {
		_ = s.storage.Delete(key)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save audio metadata")
	}
	return stored, nil
}

// UploadDocument validates and stores a document for an answer, keeping the
// caller-supplied original filename for downloads.
func (s *AttachmentService) UploadDocument(ctx context.Context, answerID int64, upload Upload, description *string) (*models.Document, error) {
	if err := s.ensureAnswer(ctx, answerID); err != nil {
		return nil, err
	}
	if err := s.validateUpload(upload, s.docs); err != nil {
		return nil, err
	}

	key := storage.Key(storage.KindDocument, storage.GenerateFilename(upload.Filename))
	written, err := s.storage.SaveStream(key, upload.Content)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store document file")
	}

	doc := &models.Document{
		AnswerID:     answerID,
		FilePath:     path.Join(uploadPathPrefix, key),
		FileName:     path.Base(key),
		OriginalName: upload.Filename,
		MimeType:     upload.MimeType,
		FileSize:     written,
		Description:  description,
	}
	stored, err := s.repo.InsertDocument(ctx, doc)
	if err != nil {
		_ = s.storage.Delete(key)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save document metadata")
	}
	return stored, nil
}

// DeleteAudio removes a recording row, then best-effort removes the backing
// file. A file already missing from disk is not an error.
func (s *AttachmentService) DeleteAudio(ctx context.Context, id int64) error {
	rec, err := s.repo.GetAudioByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "audio recording not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load audio recording")
	}
	if err := s.repo.DeleteAudio(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete audio recording")
	}
	s.removeFile(rec.FilePath)
	return nil
}

// DeleteDocument removes a document row, then best-effort removes the backing
// file.
func (s *AttachmentService) DeleteDocument(ctx context.Context, id int64) error {
	doc, err := s.repo.GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load document")
	}
	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete document")
	}
	s.removeFile(doc.FilePath)
	return nil
}

func (s *AttachmentService) ensureAnswer(ctx context.Context, answerID int64) error {
	if _, err := s.answers.GetByID(ctx, answerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "answer not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load answer")
	}
	return nil
}

func (s *AttachmentService) validateUpload(upload Upload, allowed map[string]struct{}) error {
	if upload.Content == nil || upload.Size <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "file is required")
	}
	if _, ok := allowed[strings.ToLower(upload.MimeType)]; !ok {
		return appErrors.Clone(appErrors.ErrInvalidFileType, fmt.Sprintf("file type %s is not allowed", upload.MimeType))
	}
	if upload.Size > s.cfg.MaxFileSize {
		return appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes limit", s.cfg.MaxFileSize))
	}
	return nil
}

func (s *AttachmentService) removeFile(filePath string) {
	key := strings.TrimPrefix(filePath, uploadPathPrefix+"/")
	if err := s.storage.Delete(key); err != nil {
		s.logger.Warn("failed to remove attachment file", zap.String("path", filePath), zap.Error(err))
	}
}

func mimeSet(mimes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(mimes))
	for _, mt := range mimes {
		set[strings.ToLower(mt)] = struct{}{}
	}
	return set
}
