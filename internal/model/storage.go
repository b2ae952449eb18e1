package model

import "time"

// Storage is a physical storage unit inside a warehouse.
// ShelfIDs keeps the placement order used by first-fit allocation.
type Storage struct {
	ID          string    `json:"storage_id"`
	CompanyID   string    `json:"company_id"`
	WarehouseID string    `json:"warehouse_id"`
	Coordinates []float64 `json:"coordinates"`
	ShelfIDs    []string  `json:"shelf_ids"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Shelf is a capacity-bounded container within a Storage.
// Invariant: 0 <= OccupiedSpace <= Space.
type Shelf struct {
	ID            string    `json:"shelf_id"`
	StorageID     string    `json:"storage_id"`
	Parameters    []float64 `json:"parameters"`
	Space         float64   `json:"space"`
	OccupiedSpace float64   `json:"occupied_space"`
	ProductIDs    []string  `json:"products"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FreeSpace returns the remaining capacity of the shelf.
func (s Shelf) FreeSpace() float64 {
	return s.Space - s.OccupiedSpace
}

// Fits reports whether volume can be placed without exceeding Space.
func (s Shelf) Fits(volume float64) bool {
	return s.OccupiedSpace+volume <= s.Space
}

// FillRatio returns OccupiedSpace/Space, or 0 for a shelf without capacity.
func (s Shelf) FillRatio() float64 {
	if s.Space <= 0 {
		return 0
	}
	return s.OccupiedSpace / s.Space
}

// Warehouse is the parent of storages; only its ownership is used here.
type Warehouse struct {
	ID        string `json:"warehouse_id"`
	CompanyID string `json:"company_id"`
	Location  string `json:"location"`
}

// Company owns warehouses, storages and products.
type Company struct {
	ID      string `json:"company_id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}
