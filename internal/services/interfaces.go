package services

import (
	"context"

	"github.com/craigashields/docs-feedback/internal/models"
	"github.com/craigashields/docs-feedback/pkg/emailjs"
)

// FeedbackServiceInterface defines the interface for feedback service operations
type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, submission *models.FeedbackSubmission, templateParams map[string]any) error
}

// EmailSender delivers a notification through the email provider
type EmailSender interface {
	Send(ctx context.Context, req *emailjs.Request) error
}
