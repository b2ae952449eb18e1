package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RequestOTP(ctx context.Context, phone, companyID string) error {
	args := m.Called(ctx, phone, companyID)
	return args.Error(0)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, phone, code string) (*service.Token, error) {
	args := m.Called(ctx, phone, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Token), args.Error(1)
}

func (m *MockAuthService) ParseToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}
