package service

import (
	"context"
	"database/sql"
	"slices"
	"sync"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// memStorage is an in-memory StorageRepository. Transactions run one at a
// time against a staged copy that is swapped in on success.
type memStorage struct {
	txMu     sync.Mutex
	mu       sync.RWMutex
	storages map[string]model.Storage
	shelves  map[string]model.Shelf
}

func newMemStorage() *memStorage {
	return &memStorage{storages: map[string]model.Storage{}, shelves: map[string]model.Shelf{}}
}

func (m *memStorage) WithinTx(_ context.Context, fn func(q repository.StorageQueries) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.RLock()
	staged := &memTables{storages: cloneMap(m.storages), shelves: cloneMap(m.shelves)}
	m.mu.RUnlock()

	if err := fn(staged); err != nil {
		return err
	}
	m.mu.Lock()
	m.storages, m.shelves = staged.storages, staged.shelves
	m.mu.Unlock()
	return nil
}

func (m *memStorage) tables() *memTables {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &memTables{storages: cloneMap(m.storages), shelves: cloneMap(m.shelves)}
}

func (m *memStorage) FindStorage(ctx context.Context, id string) (*model.Storage, error) {
	return m.tables().FindStorage(ctx, id)
}

func (m *memStorage) ListShelves(ctx context.Context, storageID string) ([]model.Shelf, error) {
	return m.tables().ListShelves(ctx, storageID)
}

func (m *memStorage) InsertStorage(ctx context.Context, s *model.Storage) error {
	return m.WithinTx(ctx, func(q repository.StorageQueries) error { return q.InsertStorage(ctx, s) })
}

func (m *memStorage) UpdateStorage(ctx context.Context, s *model.Storage) error {
	return m.WithinTx(ctx, func(q repository.StorageQueries) error { return q.UpdateStorage(ctx, s) })
}

func (m *memStorage) InsertShelf(ctx context.Context, s *model.Shelf) error {
	return m.WithinTx(ctx, func(q repository.StorageQueries) error { return q.InsertShelf(ctx, s) })
}

func (m *memStorage) UpdateShelf(ctx context.Context, s *model.Shelf) error {
	return m.WithinTx(ctx, func(q repository.StorageQueries) error { return q.UpdateShelf(ctx, s) })
}

func (m *memStorage) DeleteShelves(ctx context.Context, storageID string) (n int64, err error) {
	err = m.WithinTx(ctx, func(q repository.StorageQueries) error {
		n, err = q.DeleteShelves(ctx, storageID)
		return err
	})
	return n, err
}

func (m *memStorage) DeleteStorage(ctx context.Context, id string) error {
	return m.WithinTx(ctx, func(q repository.StorageQueries) error { return q.DeleteStorage(ctx, id) })
}

func (m *memStorage) ListStoragesByWarehouse(_ context.Context, warehouseID, companyID string) ([]model.Storage, error) {
	t := m.tables()
	out := make([]model.Storage, 0)
	for _, s := range t.storages {
		if s.WarehouseID == warehouseID && s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b model.Storage) int { return a.UpdatedAt.Compare(b.UpdatedAt) })
	return out, nil
}

func (m *memStorage) ListShelvesByCompany(_ context.Context, companyID string) ([]model.Shelf, error) {
	t := m.tables()
	out := make([]model.Shelf, 0)
	for _, sh := range t.shelves {
		if st, ok := t.storages[sh.StorageID]; ok && st.CompanyID == companyID {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (m *memStorage) shelf(id string) model.Shelf {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shelves[id]
}

type memTables struct {
	storages map[string]model.Storage
	shelves  map[string]model.Shelf
}

func (t *memTables) FindStorage(_ context.Context, id string) (*model.Storage, error) {
	s, ok := t.storages[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	s.Coordinates = slices.Clone(s.Coordinates)
	s.ShelfIDs = slices.Clone(s.ShelfIDs)
	return &s, nil
}

func (t *memTables) ListShelves(_ context.Context, storageID string) ([]model.Shelf, error) {
	out := make([]model.Shelf, 0)
	for _, sh := range t.shelves {
		if sh.StorageID == storageID {
			sh.ProductIDs = slices.Clone(sh.ProductIDs)
			out = append(out, sh)
		}
	}
	return out, nil
}

func (t *memTables) InsertStorage(_ context.Context, s *model.Storage) error {
	if _, ok := t.storages[s.ID]; ok {
		return repository.ErrUniqueViolation
	}
	t.storages[s.ID] = *s
	return nil
}

func (t *memTables) UpdateStorage(_ context.Context, s *model.Storage) error {
	if _, ok := t.storages[s.ID]; !ok {
		return sql.ErrNoRows
	}
	t.storages[s.ID] = *s
	return nil
}

func (t *memTables) InsertShelf(_ context.Context, s *model.Shelf) error {
	if _, ok := t.shelves[s.ID]; ok {
		return repository.ErrUniqueViolation
	}
	t.shelves[s.ID] = *s
	return nil
}

func (t *memTables) UpdateShelf(_ context.Context, s *model.Shelf) error {
	if _, ok := t.shelves[s.ID]; !ok {
		return sql.ErrNoRows
	}
	t.shelves[s.ID] = *s
	return nil
}

func (t *memTables) DeleteShelves(_ context.Context, storageID string) (int64, error) {
	var n int64
	for id, sh := range t.shelves {
		if sh.StorageID == storageID {
			delete(t.shelves, id)
			n++
		}
	}
	return n, nil
}

func (t *memTables) DeleteStorage(_ context.Context, id string) error {
	if _, ok := t.storages[id]; !ok {
		return sql.ErrNoRows
	}
	delete(t.storages, id)
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
