package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	err := UpstreamError("emailjs", 503)

	assert.True(t, Is(err, ErrUpstream))
	assert.False(t, Is(err, ErrInternal))
	assert.Equal(t, "emailjs responded with status 503: upstream failure", err.Error())
}

func TestWrappedKindsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"invalid input", InvalidInputError("page", "missing"), ErrInvalidInput},
		{"upstream", UpstreamError("emailjs", 400), ErrUpstream},
		{"internal", InternalError("decode body"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("submit feedback: %w", tt.err)
			assert.True(t, Is(wrapped, tt.target))
		})
	}
}
