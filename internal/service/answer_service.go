package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/dto"
	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
)

// progressCachePattern matches every cached session progress payload. Answer
// writes invalidate all of them since a question's session is not known here
// without an extra lookup.
const progressCachePattern = "progress:session:*"

type answerStore interface {
	Upsert(ctx context.Context, questionID int64, patch models.AnswerPatch) (*models.Answer, error)
	GetByID(ctx context.Context, id int64) (*models.Answer, error)
	SetStatusByQuestion(ctx context.Context, questionID int64, status string) error
}

type attachmentLister interface {
	ListAudioByAnswer(ctx context.Context, answerID int64) ([]models.AudioRecording, error)
	ListDocumentsByAnswer(ctx context.Context, answerID int64) ([]models.Document, error)
}

// AnswerService handles answer use-cases.
type AnswerService struct {
	repo        answerStore
	attachments attachmentLister
	cache       *CacheService
	logger      *zap.Logger
}

// NewAnswerService constructs the answer service.
func NewAnswerService(repo answerStore, attachments attachmentLister, cache *CacheService, logger *zap.Logger) *AnswerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnswerService{repo: repo, attachments: attachments, cache: cache, logger: logger}
}

// Upsert saves the answer for a question. Absent fields retain their stored
// values; status defaults to in_progress on first save when omitted.
func (s *AnswerService) Upsert(ctx context.Context, questionID int64, req dto.UpsertAnswerRequest) (*models.Answer, error) {
	if req.Status != nil && !models.ValidAnswerStatus(*req.Status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid answer status")
	}
	patch := models.AnswerPatch{
		TextResponse:   req.TextResponse,
		RespondentName: req.RespondentName,
		RespondentRole: req.RespondentRole,
		Notes:          req.Notes,
		Status:         req.Status,
	}
	answer, err := s.repo.Upsert(ctx, questionID, patch)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save answer")
	}
	s.cache.Invalidate(ctx, progressCachePattern)
	return answer, nil
}

// GetWithAttachments returns an answer with its recordings and documents,
// newest-first.
func (s *AnswerService) GetWithAttachments(ctx context.Context, answerID int64) (*models.AnswerWithAttachments, error) {
	answer, err := s.repo.GetByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "answer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load answer")
	}
	audio, err := s.attachments.ListAudioByAnswer(ctx, answerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load audio recordings")
	}
	docs, err := s.attachments.ListDocumentsByAnswer(ctx, answerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load documents")
	}
	if audio == nil {
		audio = []models.AudioRecording{}
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return &models.AnswerWithAttachments{Answer: *answer, AudioRecordings: audio, Documents: docs}, nil
}

// BulkSetStatus upserts the status of many questions. A failing id (for
// example one referencing a non-existent question) is logged and skipped; the
// remaining batch still runs. Returns the number of successful updates.
func (s *AnswerService) BulkSetStatus(ctx context.Context, req dto.BulkStatusRequest) (int, error) {
	if len(req.QuestionIDs) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "question_ids is required")
	}
	if !models.ValidAnswerStatus(req.Status) {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid answer status")
	}
	updated := 0
	for _, questionID := range req.QuestionIDs {
		if err := s.repo.SetStatusByQuestion(ctx, questionID, req.Status); err != nil {
			s.logger.Warn("bulk status update failed for question",
				zap.Int64("question_id", questionID), zap.Error(err))
			continue
		}
		updated++
	}
	s.cache.Invalidate(ctx, progressCachePattern)
	return updated, nil
}
