package postgres

import (
	"context"
	"database/sql"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// AppendAction upserts the warehouse-day row and concatenates entry to its actions.
// Concurrent appends to one row serialize on the row lock and keep arrival order.
func (r *ReportPostgres) AppendAction(ctx context.Context, rep *model.Report, entry model.ActionEntry) error {
	enc, err := toJSON(entry)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO reports (id, warehouse_id, company_id, report_date, actions)
		VALUES ($1, $2, $3, $4, jsonb_build_array($5::jsonb))
		ON CONFLICT (warehouse_id, report_date)
		DO UPDATE SET actions = reports.actions || EXCLUDED.actions
	`
	_, err = r.db.ExecContext(ctx, q, rep.ID, rep.WarehouseID, rep.CompanyID, rep.Date, enc)
	return mapError(err)
}

func (r *ReportPostgres) FindByWarehouseAndDate(ctx context.Context, warehouseID string, date time.Time) (*model.Report, error) {
	const q = `
		SELECT id, warehouse_id, company_id, report_date, actions
		FROM reports
		WHERE warehouse_id = $1 AND report_date = $2
	`
	var (
		rep     model.Report
		actions []byte
	)
	err := r.db.QueryRowContext(ctx, q, warehouseID, date).Scan(
		&rep.ID,
		&rep.WarehouseID,
		&rep.CompanyID,
		&rep.Date,
		&actions,
	)
	if err != nil {
		return nil, err
	}
	rep.Actions = make([]model.ActionEntry, 0)
	if err := fromJSON(actions, &rep.Actions); err != nil {
		return nil, err
	}
	return &rep, nil
}
