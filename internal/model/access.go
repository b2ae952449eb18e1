package model

import (
	"fmt"
	"time"
)

// AccessLevel is the closed set of roles a user can hold at a warehouse.
type AccessLevel string

const (
	AccessEmployee        AccessLevel = "employee"
	AccessAdmin           AccessLevel = "admin"
	AccessRegionalManager AccessLevel = "regional_manager"
	AccessCEO             AccessLevel = "CEO"
	AccessOwner           AccessLevel = "owner"
)

// AccessLevels lists every level from lowest to highest rank.
var AccessLevels = []AccessLevel{
	AccessEmployee,
	AccessAdmin,
	AccessRegionalManager,
	AccessCEO,
	AccessOwner,
}

// Rank orders levels; unknown levels rank 0 and satisfy nothing.
func (l AccessLevel) Rank() int {
	switch l {
	case AccessEmployee:
		return 1
	case AccessAdmin:
		return 2
	case AccessRegionalManager:
		return 3
	case AccessCEO:
		return 4
	case AccessOwner:
		return 5
	default:
		return 0
	}
}

// Satisfies reports whether l is at least as privileged as required.
func (l AccessLevel) Satisfies(required AccessLevel) bool {
	return l.Rank() > 0 && l.Rank() >= required.Rank()
}

// ParseAccessLevel converts a stored value into an AccessLevel.
func ParseAccessLevel(s string) (AccessLevel, error) {
	l := AccessLevel(s)
	if l.Rank() == 0 {
		return "", fmt.Errorf("unknown access level %q", s)
	}
	return l, nil
}

// AccessGrant is the role a user holds at one warehouse.
type AccessGrant struct {
	UserID      string      `json:"user_id"`
	WarehouseID string      `json:"warehouse_id"`
	Level       AccessLevel `json:"access_level"`
}

// User is an employee account; authentication is by phone number.
// JWTDeactivatedUntil blocks logins while it lies in the future.
type User struct {
	ID                  string     `json:"uuid"`
	Name                string     `json:"name"`
	Phone               string     `json:"number"`
	CompanyID           string     `json:"company_id"`
	JWTDeactivatedUntil *time.Time `json:"date_jwt_unactivate,omitempty"`
}

// LoginBlocked reports whether the deactivation window is active at now.
func (u User) LoginBlocked(now time.Time) bool {
	return u.JWTDeactivatedUntil != nil && u.JWTDeactivatedUntil.After(now)
}
