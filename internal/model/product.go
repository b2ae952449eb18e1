package model

import "github.com/shopspring/decimal"

// ItemType distinguishes boxed goods (with cartesian dimensions) from loose goods.
type ItemType string

const (
	ItemTypeBoxed    ItemType = "boxed"
	ItemTypeNotBoxed ItemType = "not_boxed"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeBoxed, ItemTypeNotBoxed:
		return true
	}
	return false
}

// Product is a catalog item that can be placed on shelves.
// DekartParameters is non-empty if and only if ItemType is boxed.
type Product struct {
	ID               string          `json:"item_id"`
	CompanyID        string          `json:"company_id"`
	Name             string          `json:"name"`
	Cost             decimal.Decimal `json:"cost"`
	Article          string          `json:"article"`
	Barcode          string          `json:"barcode"`
	ItemType         ItemType        `json:"item_type"`
	DekartParameters []float64       `json:"dekart_parameters,omitempty"`
}
