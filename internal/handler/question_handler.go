package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	"github.com/deepaksx/rawabi-workshop-app/internal/service"
	"github.com/deepaksx/rawabi-workshop-app/pkg/response"
)

// QuestionHandler exposes questionnaire endpoints.
type QuestionHandler struct {
	service *service.QuestionService
}

// NewQuestionHandler constructs a question handler.
func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: svc}
}

// List godoc
// @Summary List questions
// @Description List questions with entity context, answer state and attachment counts
// @Tags Questions
// @Produce json
// @Param session_id query int false "Filter by session"
// @Param entity_id query int false "Filter by entity"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} map[string][]models.QuestionListItem
// @Router /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	filter := models.QuestionFilter{
		SessionID: queryInt64(c, "session_id"),
		EntityID:  queryInt64(c, "entity_id"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	questions, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"questions": questions})
}

// Get godoc
// @Summary Get one question
// @Description Question with answer, attachments and prev/next navigation
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.QuestionDetail
// @Router /questions/{id} [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, detail)
}

// ListByCategory godoc
// @Summary List a session's questions grouped by category
// @Tags Questions
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param entity_id query int false "Filter by entity"
// @Success 200 {array} models.CategoryGroup
// @Router /questions/session/{sessionId}/by-category [get]
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	sessionID, err := pathID(c, "sessionId")
	if err != nil {
		response.Error(c, err)
		return
	}
	groups, err := h.service.ListByCategory(c.Request.Context(), sessionID, queryInt64(c, "entity_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, groups)
}
