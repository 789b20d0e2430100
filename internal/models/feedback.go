package models

// FeedbackType is the reader's verdict on a documentation page
type FeedbackType string

const (
	FeedbackPositive FeedbackType = "positive"
	FeedbackNegative FeedbackType = "negative"
)

// Valid reports whether t is one of the known feedback types
func (t FeedbackType) Valid() bool {
	return t == FeedbackPositive || t == FeedbackNegative
}

// FeedbackSubmission represents a feedback form submission.
// Pointer fields distinguish an absent key from an empty string.
type FeedbackSubmission struct {
	Page            *string `json:"page" validate:"required"`
	Product         *string `json:"product" validate:"required"`
	Option          *string `json:"option" validate:"required"`
	FeedbackType    *string `json:"feedbackType" validate:"required,oneof=positive negative"`
	FeedbackComment *string `json:"feedbackComment,omitempty"`
}

// ValidationError describes a single field that failed validation
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-200 feedback response
type ErrorResponse struct {
	ErrorMessage     string            `json:"errorMessage"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// FeedbackResponse is the body returned once the provider accepted the notification
type FeedbackResponse struct {
	Success string `json:"success"`
}
