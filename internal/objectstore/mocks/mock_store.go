package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/objectstore"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, key string, r io.Reader, opt objectstore.PutOptions) (objectstore.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	return args.Get(0).(objectstore.ObjectInfo), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
