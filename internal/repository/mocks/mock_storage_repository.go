package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) FindStorage(ctx context.Context, id string) (*model.Storage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Storage), args.Error(1)
}

func (m *MockStorageRepository) ListShelves(ctx context.Context, storageID string) ([]model.Shelf, error) {
	args := m.Called(ctx, storageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shelf), args.Error(1)
}

func (m *MockStorageRepository) InsertStorage(ctx context.Context, s *model.Storage) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStorageRepository) UpdateStorage(ctx context.Context, s *model.Storage) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStorageRepository) InsertShelf(ctx context.Context, s *model.Shelf) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStorageRepository) UpdateShelf(ctx context.Context, s *model.Shelf) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStorageRepository) DeleteShelves(ctx context.Context, storageID string) (int64, error) {
	args := m.Called(ctx, storageID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorageRepository) DeleteStorage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorageRepository) ListStoragesByWarehouse(ctx context.Context, warehouseID, companyID string) ([]model.Storage, error) {
	args := m.Called(ctx, warehouseID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Storage), args.Error(1)
}

func (m *MockStorageRepository) ListShelvesByCompany(ctx context.Context, companyID string) ([]model.Shelf, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shelf), args.Error(1)
}

// WithinTx records the call and, unless an error is configured, runs fn
// against the mock itself so the queries inside are matched as usual.
func (m *MockStorageRepository) WithinTx(ctx context.Context, fn func(q repository.StorageQueries) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}
