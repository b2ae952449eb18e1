package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, userID, title, body string) error {
	args := m.Called(ctx, userID, title, body)
	return args.Error(0)
}
