package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/dto"
	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
)

type participantStore interface {
	ListBySession(ctx context.Context, sessionID int64) ([]models.Participant, error)
	Insert(ctx context.Context, p *models.Participant) (*models.Participant, error)
	Update(ctx context.Context, id int64, patch models.ParticipantPatch) (*models.Participant, error)
	Delete(ctx context.Context, id int64) error
	SetPresence(ctx context.Context, id int64, isPresent bool) (*models.Participant, error)
}

// ParticipantService handles roster use-cases.
type ParticipantService struct {
	repo      participantStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewParticipantService constructs the participant service.
func NewParticipantService(repo participantStore, validate *validator.Validate, logger *zap.Logger) *ParticipantService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParticipantService{repo: repo, validator: validate, logger: logger}
}

// List returns a session's roster ordered by name.
func (s *ParticipantService) List(ctx context.Context, sessionID int64) ([]models.Participant, error) {
	participants, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list participants")
	}
	if participants == nil {
		participants = []models.Participant{}
	}
	return participants, nil
}

// Add registers one participant. Name is required; presence defaults to true.
func (s *ParticipantService) Add(ctx context.Context, sessionID int64, req dto.CreateParticipantRequest) (*models.Participant, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name is required")
	}
	participant := &models.Participant{
		SessionID: sessionID,
		Name:      req.Name,
		Role:      req.Role,
		Company:   req.Company,
		Email:     req.Email,
	}
	stored, err := s.repo.Insert(ctx, participant)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add participant")
	}
	return stored, nil
}

// AddBulk registers many participants at once. Entries with a blank name are
// silently skipped; only the inserted rows are returned.
func (s *ParticipantService) AddBulk(ctx context.Context, sessionID int64, req dto.BulkParticipantsRequest) ([]models.Participant, error) {
	if req.Participants == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "participants array is required")
	}
	inserted := make([]models.Participant, 0, len(req.Participants))
	for _, entry := range req.Participants {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		stored, err := s.repo.Insert(ctx, &models.Participant{
			SessionID: sessionID,
			Name:      name,
			Role:      entry.Role,
			Company:   entry.Company,
			Email:     entry.Email,
		})
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add participants")
		}
		inserted = append(inserted, *stored)
	}
	return inserted, nil
}

// Update applies a partial update to a roster entry.
func (s *ParticipantService) Update(ctx context.Context, id int64, req dto.UpdateParticipantRequest) (*models.Participant, error) {
	patch := models.ParticipantPatch{
		Name:      req.Name,
		Role:      req.Role,
		Company:   req.Company,
		Email:     req.Email,
		IsPresent: req.IsPresent,
	}
	stored, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "participant not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update participant")
	}
	return stored, nil
}

// Delete removes a roster entry. Deleting an absent id still succeeds.
func (s *ParticipantService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete participant")
	}
	return nil
}

// SetPresence toggles attendance for a roster entry.
func (s *ParticipantService) SetPresence(ctx context.Context, id int64, isPresent bool) (*models.Participant, error) {
	stored, err := s.repo.SetPresence(ctx, id, isPresent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "participant not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update presence")
	}
	return stored, nil
}
