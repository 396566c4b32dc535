package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
)

// JSON sends a success payload. The body is the payload itself: the view layer
// consumes plain rows and lists, not an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Success responds with the conventional {"success": true} body used by
// delete endpoints.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, gin.H{"success": true})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr})
}
