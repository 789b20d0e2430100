package handlers

import (
	"net/http"

	"github.com/craigashields/docs-feedback/internal/models"
	"github.com/gin-gonic/gin"
)

// Client-facing messages. Provider and runtime details never reach the caller.
const (
	MessageValidationFailure = "validation failure"
	MessageUpstreamFailure   = "Failed to register feedback"
	MessageInternalError     = "Internal Server Error. Please try again later."
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.ErrorResponse{ErrorMessage: message})
}

// respondValidationErrors sends a 400 listing every failing field.
func respondValidationErrors(c *gin.Context, validationErrors []models.ValidationError, err error) {
	attachError(c, err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		ErrorMessage:     MessageValidationFailure,
		ValidationErrors: validationErrors,
	})
}

// RecoveryHandler turns a panic into the generic internal error body.
// Use with gin.CustomRecovery.
func RecoveryHandler(c *gin.Context, recovered any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{ErrorMessage: MessageInternalError})
}
