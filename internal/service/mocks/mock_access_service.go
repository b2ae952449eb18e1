package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/model"
)

type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) CheckAccess(ctx context.Context, userID, companyID, warehouseID string) (bool, error) {
	args := m.Called(ctx, userID, companyID, warehouseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessService) CheckAccessLevel(ctx context.Context, userID, companyID, warehouseID string, required model.AccessLevel) (bool, error) {
	args := m.Called(ctx, userID, companyID, warehouseID, required)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessService) InvalidateAccess(ctx context.Context, userID, companyID, warehouseID string) error {
	args := m.Called(ctx, userID, companyID, warehouseID)
	return args.Error(0)
}

func (m *MockAccessService) InvalidateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
