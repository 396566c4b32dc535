package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
)

type questionStore interface {
	List(ctx context.Context, filter models.QuestionFilter) ([]models.QuestionListItem, error)
	GetByID(ctx context.Context, id int64) (*models.QuestionListItem, error)
	Neighbors(ctx context.Context, sessionID, id int64) (prev, next *int64, err error)
}

// QuestionService serves the seeded questionnaire.
type QuestionService struct {
	repo        questionStore
	answers     answerGetter
	attachments attachmentLister
	logger      *zap.Logger
}

// NewQuestionService constructs the question service.
func NewQuestionService(repo questionStore, answers answerGetter, attachments attachmentLister, logger *zap.Logger) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{repo: repo, answers: answers, attachments: attachments, logger: logger}
}

// List returns questions matching the filter, decorated with entity context
// and answer state.
func (s *QuestionService) List(ctx context.Context, filter models.QuestionFilter) ([]models.QuestionListItem, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list questions")
	}
	if items == nil {
		items = []models.QuestionListItem{}
	}
	return items, nil
}

// Get returns a question with its answer, attachments and prev/next
// navigation within the session.
func (s *QuestionService) Get(ctx context.Context, id int64) (*models.QuestionDetail, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "question not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load question")
	}

	detail := &models.QuestionDetail{
		QuestionListItem: *item,
		AudioRecordings:  []models.AudioRecording{},
		Documents:        []models.Document{},
	}

	if item.AnswerID != nil {
		answer, err := s.answers.GetByID(ctx, *item.AnswerID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load answer")
		}
		detail.Answer = answer

		if answer != nil {
			audio, err := s.attachments.ListAudioByAnswer(ctx, answer.ID)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load audio recordings")
			}
			docs, err := s.attachments.ListDocumentsByAnswer(ctx, answer.ID)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load documents")
			}
			if audio != nil {
				detail.AudioRecordings = audio
			}
			if docs != nil {
				detail.Documents = docs
			}
		}
	}

	prev, next, err := s.repo.Neighbors(ctx, item.SessionID, item.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve navigation")
	}
	detail.PrevID = prev
	detail.NextID = next

	return detail, nil
}

// ListByCategory groups a session's questions by category for display. An
// entityID of zero means all entities.
func (s *QuestionService) ListByCategory(ctx context.Context, sessionID, entityID int64) ([]models.CategoryGroup, error) {
	items, err := s.List(ctx, models.QuestionFilter{SessionID: sessionID, EntityID: entityID})
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}

// GroupByCategory partitions questions into category buckets, preserving
// first-seen order. Questions without a category land in "Uncategorized".
func GroupByCategory(items []models.QuestionListItem) []models.CategoryGroup {
	groups := []models.CategoryGroup{}
	index := map[string]int{}
	for _, item := range items {
		category := "Uncategorized"
		if item.CategoryName != nil && *item.CategoryName != "" {
			category = *item.CategoryName
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, models.CategoryGroup{Category: category, Questions: []models.QuestionListItem{}})
		}
		groups[i].Questions = append(groups[i].Questions, item)
	}
	return groups
}
