package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deepaksx/rawabi-workshop-app/internal/dto"
	"github.com/deepaksx/rawabi-workshop-app/internal/service"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
	"github.com/deepaksx/rawabi-workshop-app/pkg/response"
)

// AnswerHandler exposes answer and attachment endpoints.
type AnswerHandler struct {
	answers     *service.AnswerService
	attachments *service.AttachmentService
}

// NewAnswerHandler constructs an answer handler.
func NewAnswerHandler(answers *service.AnswerService, attachments *service.AttachmentService) *AnswerHandler {
	return &AnswerHandler{answers: answers, attachments: attachments}
}

// Upsert godoc
// @Summary Save an answer
// @Description Creates or partially updates the answer for a question
// @Tags Answers
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param payload body dto.UpsertAnswerRequest true "Answer payload"
// @Success 200 {object} models.Answer
// @Router /answers/question/{questionId} [post]
func (h *AnswerHandler) Upsert(c *gin.Context) {
	questionID, err := pathID(c, "questionId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpsertAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	answer, err := h.answers.Upsert(c.Request.Context(), questionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, answer)
}

// Get godoc
// @Summary Get an answer with its attachments
// @Tags Answers
// @Produce json
// @Param answerId path int true "Answer ID"
// @Success 200 {object} models.AnswerWithAttachments
// @Router /answers/{answerId} [get]
func (h *AnswerHandler) Get(c *gin.Context) {
	answerID, err := pathID(c, "answerId")
	if err != nil {
		response.Error(c, err)
		return
	}
	answer, err := h.answers.GetWithAttachments(c.Request.Context(), answerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, answer)
}

// BulkStatus godoc
// @Summary Update the status of many questions at once
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body dto.BulkStatusRequest true "Bulk payload"
// @Success 200 {object} dto.BulkStatusResponse
// @Router /answers/bulk-status [post]
func (h *AnswerHandler) BulkStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	updated, err := h.answers.BulkSetStatus(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BulkStatusResponse{Updated: updated})
}

// UploadAudio godoc
// @Summary Attach an audio recording to an answer
// @Tags Attachments
// @Accept multipart/form-data
// @Produce json
// @Param answerId path int true "Answer ID"
// @Param audio formData file true "Audio file"
// @Param duration_seconds formData number false "Recording duration"
// @Success 201 {object} models.AudioRecording
// @Router /answers/{answerId}/audio [post]
func (h *AnswerHandler) UploadAudio(c *gin.Context) {
	answerID, err := pathID(c, "answerId")
	if err != nil {
		response.Error(c, err)
		return
	}
	upload, closeFn, err := formUpload(c, "audio")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFn()

	var duration *float64
	if raw := c.PostForm("duration_seconds"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			duration = &value
		}
	}

	recording, err := h.attachments.UploadAudio(c.Request.Context(), answerID, upload, duration)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, recording)
}

// UploadDocument godoc
// @Summary Attach a document to an answer
// @Tags Attachments
// @Accept multipart/form-data
// @Produce json
// @Param answerId path int true "Answer ID"
// @Param document formData file true "Document file"
// @Param description formData string false "Description"
// @Success 201 {object} models.Document
// @Router /answers/{answerId}/document [post]
func (h *AnswerHandler) UploadDocument(c *gin.Context) {
	answerID, err := pathID(c, "answerId")
	if err != nil {
		response.Error(c, err)
		return
	}
	upload, closeFn, err := formUpload(c, "document")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFn()

	var description *string
	if raw := strings.TrimSpace(c.PostForm("description")); raw != "" {
		description = &raw
	}

	document, err := h.attachments.UploadDocument(c.Request.Context(), answerID, upload, description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, document)
}

// DeleteAudio godoc
// @Summary Delete an audio recording
// @Tags Attachments
// @Produce json
// @Param audioId path int true "Audio ID"
// @Success 200 {object} map[string]bool
// @Router /answers/audio/{audioId} [delete]
func (h *AnswerHandler) DeleteAudio(c *gin.Context) {
	audioID, err := pathID(c, "audioId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.attachments.DeleteAudio(c.Request.Context(), audioID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags Attachments
// @Produce json
// @Param documentId path int true "Document ID"
// @Success 200 {object} map[string]bool
// @Router /answers/document/{documentId} [delete]
func (h *AnswerHandler) DeleteDocument(c *gin.Context) {
	documentID, err := pathID(c, "documentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.attachments.DeleteDocument(c.Request.Context(), documentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// formUpload extracts one multipart file as a service upload. The returned
// close function must be deferred by the caller.
func formUpload(c *gin.Context, field string) (service.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return service.Upload{}, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing "+field+" file")
	}
	file, err := header.Open()
	if err != nil {
		return service.Upload{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to read upload")
	}
	upload := service.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
		Content:  file,
	}
	return upload, func() { _ = file.Close() }, nil
}
