package mocks

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/model"
	"stockroom/internal/service"
)

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) CreateStorage(ctx context.Context, in service.CreateStorageInput) (*service.StorageView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StorageView), args.Error(1)
}

func (m *MockStorageService) AddProductToShelf(ctx context.Context, in service.PlaceProductInput) (*service.Placement, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Placement), args.Error(1)
}

func (m *MockStorageService) DuplicateStorage(ctx context.Context, storageID, companyID, targetWarehouseID string) (*service.StorageView, error) {
	args := m.Called(ctx, storageID, companyID, targetWarehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StorageView), args.Error(1)
}

func (m *MockStorageService) CheckCrowdedShelves(ctx context.Context, companyID string, threshold float64) (iter.Seq[service.CrowdedShelf], error) {
	args := m.Called(ctx, companyID, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq[service.CrowdedShelf]), args.Error(1)
}

func (m *MockStorageService) GetStorage(ctx context.Context, storageID, companyID string) (*service.StorageView, error) {
	args := m.Called(ctx, storageID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StorageView), args.Error(1)
}

func (m *MockStorageService) GetStorageLayout(ctx context.Context, warehouseID, companyID string) (*service.Layout, error) {
	args := m.Called(ctx, warehouseID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Layout), args.Error(1)
}

func (m *MockStorageService) UpdateStorage(ctx context.Context, storageID, companyID string, coordinates []float64) (*model.Storage, error) {
	args := m.Called(ctx, storageID, companyID, coordinates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Storage), args.Error(1)
}

func (m *MockStorageService) DeleteStorage(ctx context.Context, storageID, companyID string) error {
	args := m.Called(ctx, storageID, companyID)
	return args.Error(0)
}
