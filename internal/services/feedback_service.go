package services

import (
	"context"
	"fmt"

	"github.com/craigashields/docs-feedback/config"
	"github.com/craigashields/docs-feedback/internal/models"
	"github.com/craigashields/docs-feedback/pkg/emailjs"
	apperrors "github.com/craigashields/docs-feedback/pkg/errors"
	"github.com/craigashields/docs-feedback/pkg/logger"
	"github.com/craigashields/docs-feedback/pkg/metrics"
	"go.uber.org/zap"
)

// FeedbackService forwards validated feedback to maintainers by email
type FeedbackService struct {
	config config.EmailJSConfig
	sender EmailSender
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(cfg config.EmailJSConfig, sender EmailSender) *FeedbackService {
	return &FeedbackService{
		config: cfg,
		sender: sender,
	}
}

// SubmitFeedback sends one notification for a validated submission.
// templateParams is forwarded to the provider verbatim.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, submission *models.FeedbackSubmission, templateParams map[string]any) error {
	if submission == nil {
		return apperrors.InternalError("feedback submission is nil")
	}

	feedbackType := "unknown"
	if submission.FeedbackType != nil && models.FeedbackType(*submission.FeedbackType).Valid() {
		feedbackType = *submission.FeedbackType
	}

	req := &emailjs.Request{
		ServiceID:      s.config.ServiceID,
		TemplateID:     s.config.TemplateID,
		UserID:         s.config.PublicKey,
		AccessToken:    s.config.PrivateKey,
		TemplateParams: templateParams,
	}

	log := logger.With(zap.String("feedback_type", feedbackType))
	logger.Debug("Sending feedback notification",
		zap.String("feedback_type", feedbackType),
		zap.Int("template_params", len(templateParams)))

	if err := s.sender.Send(ctx, req); err != nil {
		if apperrors.Is(err, apperrors.ErrUpstream) {
			metrics.FeedbackSubmissions.WithLabelValues(feedbackType, "rejected").Inc()
			log.Warn("Email provider rejected feedback notification", zap.Error(err))
			return fmt.Errorf("failed to register feedback: %w", err)
		}

		metrics.FeedbackSubmissions.WithLabelValues(feedbackType, "error").Inc()
		log.Error("Failed to send feedback notification", zap.Error(err))
		return fmt.Errorf("failed to send feedback notification: %w", err)
	}

	metrics.FeedbackSubmissions.WithLabelValues(feedbackType, "success").Inc()
	log.Info("Feedback notification sent",
		zap.Stringp("page", submission.Page),
		zap.Stringp("product", submission.Product))

	return nil
}
