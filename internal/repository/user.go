package repository

import (
	"context"

	"stockroom/internal/model"
)

// AccessFacts is what the permission source knows about a user at a warehouse.
// Level is empty when the user holds no grant there.
type AccessFacts struct {
	OwnerID string
	Level   model.AccessLevel
	// WarehouseInCompany is false when the warehouse is unknown or belongs
	// to another company.
	WarehouseInCompany bool
}

// UserRepository defines data access for users and their access grants.
type UserRepository interface {
	// FindByPhone returns the user registered under phone or sql.ErrNoRows.
	FindByPhone(ctx context.Context, phone string) (*model.User, error)

	// FindByPhoneInCompany is FindByPhone restricted to one company.
	FindByPhoneInCompany(ctx context.Context, phone, companyID string) (*model.User, error)

	// AccessFacts returns the company owner and the user's grant at warehouseID
	// in a single query. A missing company yields sql.ErrNoRows.
	AccessFacts(ctx context.Context, userID, companyID, warehouseID string) (*AccessFacts, error)
}
