package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksx/rawabi-workshop-app/internal/dto"
	"github.com/deepaksx/rawabi-workshop-app/internal/service"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
	"github.com/deepaksx/rawabi-workshop-app/pkg/response"
)

// SessionHandler exposes session endpoints.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler constructs a session handler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// List godoc
// @Summary List workshop sessions
// @Tags Sessions
// @Produce json
// @Success 200 {array} models.Session
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sessions)
}

// Get godoc
// @Summary Get one session
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} models.Session
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	session, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, session)
}

// UpdateStatus godoc
// @Summary Update session status
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param payload body dto.UpdateSessionStatusRequest true "Status payload"
// @Success 200 {object} models.Session
// @Router /sessions/{id}/status [patch]
func (h *SessionHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateSessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, session)
}

// Progress godoc
// @Summary Per-entity completion for a session
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {array} models.EntityProgress
// @Router /sessions/{id}/progress [get]
func (h *SessionHandler) Progress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	progress, err := h.service.Progress(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, progress)
}

// Export godoc
// @Summary Export a session report
// @Tags Sessions
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Session ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /sessions/{id}/export [get]
func (h *SessionHandler) Export(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.Export(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.MimeType, report.Content)
}
