package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhoneInCompany(ctx context.Context, phone, companyID string) (*model.User, error) {
	args := m.Called(ctx, phone, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) AccessFacts(ctx context.Context, userID, companyID, warehouseID string) (*repository.AccessFacts, error) {
	args := m.Called(ctx, userID, companyID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AccessFacts), args.Error(1)
}
