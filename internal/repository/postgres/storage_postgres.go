package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

const (
	storageColumns = `id, company_id, warehouse_id, coordinates, shelf_ids, updated_at`
	shelfColumns   = `id, storage_id, parameters, space, occupied_space, product_ids, updated_at`
)

// storageQueries runs storage statements against a pool or a transaction.
type storageQueries struct {
	q querier
}

// StoragePostgres is a PostgreSQL implementation of repository.StorageRepository.
type StoragePostgres struct {
	storageQueries
	db *sql.DB
}

// NewStoragePostgres creates a new StoragePostgres repository.
func NewStoragePostgres(db *sql.DB) *StoragePostgres {
	return &StoragePostgres{storageQueries: storageQueries{q: db}, db: db}
}

var _ repository.StorageRepository = (*StoragePostgres)(nil)

// WithinTx runs fn in a serializable transaction. Any error from fn rolls it back.
func (r *StoragePostgres) WithinTx(ctx context.Context, fn func(q repository.StorageQueries) error) (err error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", mapError(err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(storageQueries{q: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapError(err))
	}
	return nil
}

func (r *StoragePostgres) ListStoragesByWarehouse(ctx context.Context, warehouseID, companyID string) ([]model.Storage, error) {
	q := `SELECT ` + storageColumns + `
		FROM storages
		WHERE warehouse_id = $1 AND company_id = $2
		ORDER BY updated_at, id`
	rows, err := r.q.QueryContext(ctx, q, warehouseID, companyID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	items := make([]model.Storage, 0)
	for rows.Next() {
		s, err := scanStorage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r *StoragePostgres) ListShelvesByCompany(ctx context.Context, companyID string) ([]model.Shelf, error) {
	q := `SELECT s.id, s.storage_id, s.parameters, s.space, s.occupied_space, s.product_ids, s.updated_at
		FROM shelves s
		JOIN storages st ON st.id = s.storage_id
		WHERE st.company_id = $1
		ORDER BY s.storage_id, s.id`
	rows, err := r.q.QueryContext(ctx, q, companyID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectShelves(rows)
}

func (s storageQueries) FindStorage(ctx context.Context, id string) (*model.Storage, error) {
	q := `SELECT ` + storageColumns + ` FROM storages WHERE id = $1`
	st, err := scanStorage(s.q.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, mapError(err)
	}
	return st, nil
}

func (s storageQueries) ListShelves(ctx context.Context, storageID string) ([]model.Shelf, error) {
	q := `SELECT ` + shelfColumns + ` FROM shelves WHERE storage_id = $1`
	rows, err := s.q.QueryContext(ctx, q, storageID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectShelves(rows)
}

func (s storageQueries) InsertStorage(ctx context.Context, st *model.Storage) error {
	coords, err := toJSON(st.Coordinates)
	if err != nil {
		return err
	}
	shelfIDs, err := toJSON(nonNilStrings(st.ShelfIDs))
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO storages (id, company_id, warehouse_id, coordinates, shelf_ids, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.q.ExecContext(ctx, q, st.ID, st.CompanyID, st.WarehouseID, coords, shelfIDs, st.UpdatedAt)
	return mapError(err)
}

func (s storageQueries) UpdateStorage(ctx context.Context, st *model.Storage) error {
	coords, err := toJSON(st.Coordinates)
	if err != nil {
		return err
	}
	shelfIDs, err := toJSON(nonNilStrings(st.ShelfIDs))
	if err != nil {
		return err
	}
	const q = `UPDATE storages SET coordinates = $2, shelf_ids = $3, updated_at = $4 WHERE id = $1`
	res, err := s.q.ExecContext(ctx, q, st.ID, coords, shelfIDs, st.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (s storageQueries) InsertShelf(ctx context.Context, sh *model.Shelf) error {
	params, err := toJSON(sh.Parameters)
	if err != nil {
		return err
	}
	products, err := toJSON(nonNilStrings(sh.ProductIDs))
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO shelves (id, storage_id, parameters, space, occupied_space, product_ids, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.q.ExecContext(ctx, q, sh.ID, sh.StorageID, params, sh.Space, sh.OccupiedSpace, products, sh.UpdatedAt)
	return mapError(err)
}

func (s storageQueries) UpdateShelf(ctx context.Context, sh *model.Shelf) error {
	products, err := toJSON(nonNilStrings(sh.ProductIDs))
	if err != nil {
		return err
	}
	const q = `UPDATE shelves SET occupied_space = $2, product_ids = $3, updated_at = $4 WHERE id = $1`
	res, err := s.q.ExecContext(ctx, q, sh.ID, sh.OccupiedSpace, products, sh.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (s storageQueries) DeleteShelves(ctx context.Context, storageID string) (int64, error) {
	res, err := s.q.ExecContext(ctx, `DELETE FROM shelves WHERE storage_id = $1`, storageID)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func (s storageQueries) DeleteStorage(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM storages WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStorage(row rowScanner) (*model.Storage, error) {
	var (
		st               model.Storage
		coords, shelfIDs []byte
	)
	if err := row.Scan(&st.ID, &st.CompanyID, &st.WarehouseID, &coords, &shelfIDs, &st.UpdatedAt); err != nil {
		return nil, err
	}
	if err := fromJSON(coords, &st.Coordinates); err != nil {
		return nil, err
	}
	if err := fromJSON(shelfIDs, &st.ShelfIDs); err != nil {
		return nil, err
	}
	return &st, nil
}

func scanShelf(row rowScanner) (*model.Shelf, error) {
	var (
		sh               model.Shelf
		params, products []byte
	)
	if err := row.Scan(&sh.ID, &sh.StorageID, &params, &sh.Space, &sh.OccupiedSpace, &products, &sh.UpdatedAt); err != nil {
		return nil, err
	}
	if err := fromJSON(params, &sh.Parameters); err != nil {
		return nil, err
	}
	if err := fromJSON(products, &sh.ProductIDs); err != nil {
		return nil, err
	}
	return &sh, nil
}

func collectShelves(rows *sql.Rows) ([]model.Shelf, error) {
	items := make([]model.Shelf, 0)
	for rows.Next() {
		sh, err := scanShelf(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *sh)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
