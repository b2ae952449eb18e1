package repository

import (
	"context"

	"stockroom/internal/model"
)

// StorageQueries are the storage and shelf operations usable both directly
// and inside a transaction started by StorageRepository.WithinTx.
type StorageQueries interface {
	// FindStorage returns a storage by ID or sql.ErrNoRows.
	FindStorage(ctx context.Context, id string) (*model.Storage, error)

	// ListShelves returns every shelf of a storage in no particular order.
	ListShelves(ctx context.Context, storageID string) ([]model.Shelf, error)

	InsertStorage(ctx context.Context, s *model.Storage) error

	// UpdateStorage persists coordinates, shelf ids and updated_at.
	UpdateStorage(ctx context.Context, s *model.Storage) error

	InsertShelf(ctx context.Context, s *model.Shelf) error

	// UpdateShelf persists occupied space, product ids and updated_at.
	UpdateShelf(ctx context.Context, s *model.Shelf) error

	// DeleteShelves removes all shelves of a storage and returns how many were removed.
	DeleteShelves(ctx context.Context, storageID string) (int64, error)

	// DeleteStorage removes a storage row. Its shelves must be deleted first.
	DeleteStorage(ctx context.Context, id string) error
}

// StorageRepository defines data access for storages and their shelves.
type StorageRepository interface {
	StorageQueries

	// ListStoragesByWarehouse returns the storages of a warehouse owned by companyID.
	ListStoragesByWarehouse(ctx context.Context, warehouseID, companyID string) ([]model.Storage, error)

	// ListShelvesByCompany returns every shelf in every storage of a company.
	ListShelvesByCompany(ctx context.Context, companyID string) ([]model.Shelf, error)

	// WithinTx runs fn inside a single serializable transaction and commits it
	// when fn returns nil. Serialization failures surface as ErrConflict.
	WithinTx(ctx context.Context, fn func(q StorageQueries) error) error
}
