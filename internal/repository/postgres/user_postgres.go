package postgres

import (
	"context"
	"database/sql"

	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, phone, company_id, jwt_deactivated_until`

func (r *UserPostgres) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, phone))
}

func (r *UserPostgres) FindByPhoneInCompany(ctx context.Context, phone, companyID string) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 AND company_id = $2`
	return scanUser(r.db.QueryRowContext(ctx, q, phone, companyID))
}

// AccessFacts only reports a grant, or WarehouseInCompany, when the warehouse
// belongs to the company.
func (r *UserPostgres) AccessFacts(ctx context.Context, userID, companyID, warehouseID string) (*repository.AccessFacts, error) {
	const q = `
		SELECT c.owner_id, COALESCE(a.access_level, ''), w.id IS NOT NULL
		FROM companies c
		LEFT JOIN warehouses w ON w.id = $3 AND w.company_id = c.id
		LEFT JOIN access_levels a ON a.warehouse_id = w.id AND a.user_id = $1
		WHERE c.id = $2
	`
	var (
		facts repository.AccessFacts
		level string
	)
	if err := r.db.QueryRowContext(ctx, q, userID, companyID, warehouseID).Scan(&facts.OwnerID, &level, &facts.WarehouseInCompany); err != nil {
		return nil, err
	}
	facts.Level = model.AccessLevel(level)
	return &facts, nil
}

func scanUser(row rowScanner) (*model.User, error) {
	var (
		u           model.User
		deactivated sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.CompanyID, &deactivated); err != nil {
		return nil, err
	}
	if deactivated.Valid {
		t := deactivated.Time
		u.JWTDeactivatedUntil = &t
	}
	return &u, nil
}
