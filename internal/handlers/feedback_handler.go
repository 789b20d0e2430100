package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/craigashields/docs-feedback/internal/models"
	"github.com/craigashields/docs-feedback/internal/services"
	apperrors "github.com/craigashields/docs-feedback/pkg/errors"
	"github.com/craigashields/docs-feedback/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles documentation feedback submissions
type FeedbackHandler struct {
	service services.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service services.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// SubmitFeedback handles POST /api/v1/feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	// Unparseable bodies are reported as internal errors, not validation failures
	raw, err := decodeJSON(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusInternalServerError, MessageInternalError, err)
		return
	}

	var submission *models.FeedbackSubmission
	body, validationErrors := asObject(raw)
	if len(validationErrors) == 0 {
		submission, validationErrors = ValidateFeedback(body)
	}
	if len(validationErrors) > 0 {
		for _, ve := range validationErrors {
			metrics.FeedbackValidationFailures.WithLabelValues(ve.Path).Inc()
		}
		first := validationErrors[0]
		respondValidationErrors(c, validationErrors, apperrors.InvalidInputError(first.Path, first.Message))
		return
	}

	if err := h.service.SubmitFeedback(c.Request.Context(), submission, body); err != nil {
		if apperrors.Is(err, apperrors.ErrUpstream) {
			respondError(c, http.StatusBadGateway, MessageUpstreamFailure, err)
			return
		}
		respondError(c, http.StatusInternalServerError, MessageInternalError, err)
		return
	}

	c.JSON(http.StatusOK, models.FeedbackResponse{Success: "true"})
}

// decodeJSON reads r fully and decodes it as a JSON document of any shape.
func decodeJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Sprintf("read request body: %v", err))
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, apperrors.InternalError(fmt.Sprintf("decode request body: %v", err))
	}

	return body, nil
}
