package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// WarehousePostgres is a PostgreSQL implementation of repository.WarehouseRepository.
type WarehousePostgres struct {
	db *sql.DB
}

// NewWarehousePostgres creates a new WarehousePostgres repository.
func NewWarehousePostgres(db *sql.DB) *WarehousePostgres {
	return &WarehousePostgres{db: db}
}

var _ repository.WarehouseRepository = (*WarehousePostgres)(nil)

func (r *WarehousePostgres) FindByID(ctx context.Context, id string) (*model.Warehouse, error) {
	const q = `SELECT id, company_id, location FROM warehouses WHERE id = $1`
	var w model.Warehouse
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&w.ID, &w.CompanyID, &w.Location); err != nil {
		return nil, err
	}
	return &w, nil
}

// ProductPostgres is a PostgreSQL implementation of repository.ProductRepository.
type ProductPostgres struct {
	db *sql.DB
}

// NewProductPostgres creates a new ProductPostgres repository.
func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

const productColumns = `id, company_id, name, cost, article, barcode, item_type, dekart_parameters`

func (r *ProductPostgres) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *ProductPostgres) FindByArticle(ctx context.Context, article string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE article = $1`, article)
}

func (r *ProductPostgres) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE barcode = $1`, barcode)
}

// Create inserts a product. A NULL dekart_parameters column marks a not_boxed item.
func (r *ProductPostgres) Create(ctx context.Context, p *model.Product) error {
	var dims any
	if len(p.DekartParameters) > 0 {
		enc, err := toJSON(p.DekartParameters)
		if err != nil {
			return err
		}
		dims = enc
	}
	const q = `
		INSERT INTO products (id, company_id, name, cost, article, barcode, item_type, dekart_parameters)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, q, p.ID, p.CompanyID, p.Name, p.Cost, p.Article, p.Barcode, string(p.ItemType), dims)
	return mapError(err)
}

func (r *ProductPostgres) findOne(ctx context.Context, q string, arg any) (*model.Product, error) {
	var (
		p        model.Product
		itemType string
		dims     []byte
	)
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&p.ID,
		&p.CompanyID,
		&p.Name,
		&p.Cost,
		&p.Article,
		&p.Barcode,
		&itemType,
		&dims,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, mapError(err)
	}
	p.ItemType = model.ItemType(itemType)
	if err := fromJSON(dims, &p.DekartParameters); err != nil {
		return nil, err
	}
	return &p, nil
}
