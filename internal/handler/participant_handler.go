package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksx/rawabi-workshop-app/internal/dto"
	"github.com/deepaksx/rawabi-workshop-app/internal/service"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
	"github.com/deepaksx/rawabi-workshop-app/pkg/response"
)

// ParticipantHandler exposes roster endpoints.
type ParticipantHandler struct {
	service *service.ParticipantService
}

// NewParticipantHandler constructs a participant handler.
func NewParticipantHandler(svc *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{service: svc}
}

// List godoc
// @Summary List a session's participants
// @Tags Participants
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 200 {array} models.Participant
// @Router /participants/session/{sessionId} [get]
func (h *ParticipantHandler) List(c *gin.Context) {
	sessionID, err := pathID(c, "sessionId")
	if err != nil {
		response.Error(c, err)
		return
	}
	participants, err := h.service.List(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, participants)
}

// Add godoc
// @Summary Add a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param payload body dto.CreateParticipantRequest true "Participant payload"
// @Success 201 {object} models.Participant
// @Router /participants/session/{sessionId} [post]
func (h *ParticipantHandler) Add(c *gin.Context) {
	sessionID, err := pathID(c, "sessionId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	participant, err := h.service.Add(c.Request.Context(), sessionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, participant)
}

// AddBulk godoc
// @Summary Add many participants at once
// @Tags Participants
// @Accept json
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param payload body dto.BulkParticipantsRequest true "Participants payload"
// @Success 201 {array} models.Participant
// @Router /participants/session/{sessionId}/bulk [post]
func (h *ParticipantHandler) AddBulk(c *gin.Context) {
	sessionID, err := pathID(c, "sessionId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.BulkParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	participants, err := h.service.AddBulk(c.Request.Context(), sessionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, participants)
}

// Update godoc
// @Summary Update a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Param payload body dto.UpdateParticipantRequest true "Partial payload"
// @Success 200 {object} models.Participant
// @Router /participants/{id} [patch]
func (h *ParticipantHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	participant, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, participant)
}

// SetPresence godoc
// @Summary Toggle a participant's attendance
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Param payload body dto.PresenceRequest true "Presence payload"
// @Success 200 {object} models.Participant
// @Router /participants/{id}/presence [patch]
func (h *ParticipantHandler) SetPresence(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPresent == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "is_present is required"))
		return
	}
	participant, err := h.service.SetPresence(c.Request.Context(), id, *req.IsPresent)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, participant)
}

// Delete godoc
// @Summary Remove a participant
// @Tags Participants
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} map[string]bool
// @Router /participants/{id} [delete]
func (h *ParticipantHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
