package repository

import (
	"context"
	"time"

	"stockroom/internal/model"
)

// WarehouseRepository reads warehouse ownership.
type WarehouseRepository interface {
	// FindByID returns a warehouse or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Warehouse, error)
}

// ProductRepository defines data access for catalog products.
type ProductRepository interface {
	// FindByID returns a product or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByArticle(ctx context.Context, article string) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	// Create inserts a product; duplicate article or barcode yields ErrUniqueViolation.
	Create(ctx context.Context, p *model.Product) error
}

// ReportRepository defines data access for the daily action journal.
type ReportRepository interface {
	// AppendAction adds entry to the report of (r.WarehouseID, r.Date), creating
	// the row from r when it does not exist yet. Existing entries are never rewritten.
	AppendAction(ctx context.Context, r *model.Report, entry model.ActionEntry) error

	// FindByWarehouseAndDate returns the report of one warehouse-day or sql.ErrNoRows.
	FindByWarehouseAndDate(ctx context.Context, warehouseID string, date time.Time) (*model.Report, error)
}
