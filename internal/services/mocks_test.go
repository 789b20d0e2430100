package services_test

import (
	"context"

	"github.com/craigashields/docs-feedback/pkg/emailjs"
	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of EmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, req *emailjs.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
