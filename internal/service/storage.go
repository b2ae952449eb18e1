package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stockroom/internal/cache"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

const (
	// DefaultCrowdedThreshold is the fill ratio at which a shelf counts as crowded.
	DefaultCrowdedThreshold = 0.9
	// DefaultLayoutTTL bounds how long a cached warehouse layout is served.
	DefaultLayoutTTL = time.Hour

	layoutFanOut = 8
)

// CreateStorageInput describes a new storage and its first shelf.
type CreateStorageInput struct {
	CompanyID       string    `json:"company_id"`
	WarehouseID     string    `json:"warehouse_id"`
	Coordinates     []float64 `json:"coordinates"`
	ShelfParameters []float64 `json:"shelf_parameters"`
	ShelfSpace      float64   `json:"shelf_space"`
}

// PlaceProductInput asks for quantity units of a product in a storage.
type PlaceProductInput struct {
	StorageID string `json:"storage_id"`
	CompanyID string `json:"company_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Placement is the outcome of a successful AddProductToShelf.
type Placement struct {
	ShelfID       string  `json:"shelf_id"`
	Volume        float64 `json:"volume"`
	FreeSpaceLeft float64 `json:"free_space_left"`
}

// StorageView is a storage with its shelves in placement order.
type StorageView struct {
	Storage model.Storage `json:"storage"`
	Shelves []model.Shelf `json:"shelves"`
}

// Layout is the nested view of every storage in a warehouse.
type Layout struct {
	WarehouseID string        `json:"warehouse_id"`
	CompanyID   string        `json:"company_id"`
	Storages    []StorageView `json:"storages"`
}

// CrowdedShelf is a shelf at or above the requested fill ratio.
type CrowdedShelf struct {
	Shelf       model.Shelf `json:"shelf"`
	FillPercent float64     `json:"fill_percent"`
}

// StorageService owns storages, shelves and product placement.
type StorageService interface {
	// CreateStorage creates a storage and its first, empty shelf atomically.
	CreateStorage(ctx context.Context, in CreateStorageInput) (*StorageView, error)

	// AddProductToShelf places the product on the first shelf, in storage
	// order, that still has room for it. Nothing changes when none has.
	AddProductToShelf(ctx context.Context, in PlaceProductInput) (*Placement, error)

	// DuplicateStorage clones a storage and its shelves with zero occupancy.
	// An empty targetWarehouseID keeps the source warehouse.
	DuplicateStorage(ctx context.Context, storageID, companyID, targetWarehouseID string) (*StorageView, error)

	// CheckCrowdedShelves lists the company's shelves filled to at least
	// threshold. Zero selects DefaultCrowdedThreshold.
	CheckCrowdedShelves(ctx context.Context, companyID string, threshold float64) (iter.Seq[CrowdedShelf], error)

	// GetStorage returns one storage of the company with its shelves.
	GetStorage(ctx context.Context, storageID, companyID string) (*StorageView, error)

	GetStorageLayout(ctx context.Context, warehouseID, companyID string) (*Layout, error)

	// UpdateStorage replaces the coordinates of a storage.
	UpdateStorage(ctx context.Context, storageID, companyID string, coordinates []float64) (*model.Storage, error)

	// DeleteStorage removes a storage and all of its shelves.
	DeleteStorage(ctx context.Context, storageID, companyID string) error
}

// StorageDeps are the collaborators of StorageService. Journal, Metrics,
// Logger and Clock are optional.
type StorageDeps struct {
	Storages   repository.StorageRepository
	Warehouses repository.WarehouseRepository
	Products   repository.ProductRepository
	Cache      cache.Cache
	Journal    Journal
	Metrics    *Metrics
	Logger     *zap.Logger
	Clock      Clock
	LayoutTTL  time.Duration
}

type storageService struct {
	StorageDeps
}

// NewStorageService constructs a StorageService.
func NewStorageService(d StorageDeps) StorageService {
	if d.Clock == nil {
		d.Clock = SystemClock()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.LayoutTTL <= 0 {
		d.LayoutTTL = DefaultLayoutTTL
	}
	return &storageService{StorageDeps: d}
}

func (s *storageService) CreateStorage(ctx context.Context, in CreateStorageInput) (*StorageView, error) {
	if in.CompanyID == "" || in.WarehouseID == "" {
		return nil, badRequest("company and warehouse are required")
	}
	if err := validateCoordinates(in.Coordinates); err != nil {
		return nil, err
	}
	if len(in.ShelfParameters) != 3 {
		return nil, badRequest("shelf parameters must have exactly 3 values")
	}
	if in.ShelfSpace <= 0 {
		return nil, badRequest("shelf space must be positive")
	}
	if err := s.requireWarehouse(ctx, in.WarehouseID, in.CompanyID); err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	shelf := model.Shelf{
		ID:         uuid.NewString(),
		Parameters: slices.Clone(in.ShelfParameters),
		Space:      in.ShelfSpace,
		ProductIDs: []string{},
		UpdatedAt:  now,
	}
	st := model.Storage{
		ID:          uuid.NewString(),
		CompanyID:   in.CompanyID,
		WarehouseID: in.WarehouseID,
		Coordinates: slices.Clone(in.Coordinates),
		ShelfIDs:    []string{shelf.ID},
		UpdatedAt:   now,
	}
	shelf.StorageID = st.ID

	err := s.Storages.WithinTx(ctx, func(q repository.StorageQueries) error {
		if err := q.InsertStorage(ctx, &st); err != nil {
			return fmt.Errorf("insert storage: %w", err)
		}
		if err := q.InsertShelf(ctx, &shelf); err != nil {
			return fmt.Errorf("insert shelf: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err, "storage")
	}

	s.dropLayout(ctx, st.CompanyID, st.WarehouseID)
	return &StorageView{Storage: st, Shelves: []model.Shelf{shelf}}, nil
}

func (s *storageService) AddProductToShelf(ctx context.Context, in PlaceProductInput) (*Placement, error) {
	if in.Quantity <= 0 {
		return nil, badRequest("quantity must be positive")
	}
	if in.StorageID == "" || in.CompanyID == "" || in.ProductID == "" {
		return nil, badRequest("storage, company and product are required")
	}

	product, err := s.Products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, translate(err, "product")
	}
	if product.CompanyID != in.CompanyID {
		return nil, fmt.Errorf("product %w", ErrNotFound)
	}
	if product.ItemType != model.ItemTypeBoxed || len(product.DekartParameters) == 0 {
		return nil, badRequest("product has no dimensions to place")
	}
	// Only the first dimension is used; the capacity model is linear.
	volume := product.DekartParameters[0] * float64(in.Quantity)

	var (
		placed      model.Shelf
		warehouseID string
	)
	err = s.Storages.WithinTx(ctx, func(q repository.StorageQueries) error {
		st, err := q.FindStorage(ctx, in.StorageID)
		if err != nil {
			return err
		}
		if st.CompanyID != in.CompanyID {
			return fmt.Errorf("storage %w", ErrNotFound)
		}
		warehouseID = st.WarehouseID

		shelves, err := q.ListShelves(ctx, st.ID)
		if err != nil {
			return fmt.Errorf("list shelves: %w", err)
		}
		for _, shelf := range orderShelves(st.ShelfIDs, shelves) {
			if !shelf.Fits(volume) {
				continue
			}
			shelf.OccupiedSpace += volume
			shelf.ProductIDs = append(shelf.ProductIDs, product.ID)
			shelf.UpdatedAt = s.Clock.Now()
			if err := q.UpdateShelf(ctx, &shelf); err != nil {
				return fmt.Errorf("update shelf: %w", err)
			}
			placed = shelf
			return nil
		}
		return ErrCapacityExceeded
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCapacityExceeded):
			s.Metrics.placement("no_space")
		case errors.Is(err, repository.ErrConflict):
			s.Metrics.placement("conflict")
		}
		return nil, translate(err, "storage")
	}
	s.Metrics.placement("placed")

	s.dropLayout(ctx, in.CompanyID, warehouseID)
	if s.Journal != nil {
		if err := s.Journal.LogAction(ctx, product.ID, warehouseID, in.CompanyID, model.ActionPlaced, in.Quantity); err != nil {
			s.Logger.Warn("journal append failed",
				zap.String("component", "storage"),
				zap.String("warehouse_id", warehouseID),
				zap.String("product_id", product.ID),
				zap.Error(err),
			)
		}
	}

	return &Placement{ShelfID: placed.ID, Volume: volume, FreeSpaceLeft: placed.FreeSpace()}, nil
}

func (s *storageService) DuplicateStorage(ctx context.Context, storageID, companyID, targetWarehouseID string) (*StorageView, error) {
	if storageID == "" || companyID == "" {
		return nil, badRequest("storage and company are required")
	}
	if targetWarehouseID != "" {
		if err := s.requireWarehouse(ctx, targetWarehouseID, companyID); err != nil {
			return nil, err
		}
	}

	var view StorageView
	err := s.Storages.WithinTx(ctx, func(q repository.StorageQueries) error {
		src, err := q.FindStorage(ctx, storageID)
		if err != nil {
			return err
		}
		if src.CompanyID != companyID {
			return fmt.Errorf("storage %w", ErrNotFound)
		}
		shelves, err := q.ListShelves(ctx, src.ID)
		if err != nil {
			return fmt.Errorf("list shelves: %w", err)
		}

		now := s.Clock.Now()
		clone := model.Storage{
			ID:          uuid.NewString(),
			CompanyID:   src.CompanyID,
			WarehouseID: src.WarehouseID,
			Coordinates: slices.Clone(src.Coordinates),
			UpdatedAt:   now,
		}
		if targetWarehouseID != "" {
			clone.WarehouseID = targetWarehouseID
		}
		ordered := orderShelves(src.ShelfIDs, shelves)
		cloned := make([]model.Shelf, 0, len(ordered))
		for _, sh := range ordered {
			c := model.Shelf{
				ID:         uuid.NewString(),
				StorageID:  clone.ID,
				Parameters: slices.Clone(sh.Parameters),
				Space:      sh.Space,
				ProductIDs: []string{},
				UpdatedAt:  now,
			}
			clone.ShelfIDs = append(clone.ShelfIDs, c.ID)
			cloned = append(cloned, c)
		}

		if err := q.InsertStorage(ctx, &clone); err != nil {
			return fmt.Errorf("insert storage: %w", err)
		}
		for i := range cloned {
			if err := q.InsertShelf(ctx, &cloned[i]); err != nil {
				return fmt.Errorf("insert shelf: %w", err)
			}
		}
		view = StorageView{Storage: clone, Shelves: cloned}
		return nil
	})
	if err != nil {
		return nil, translate(err, "storage")
	}

	s.dropLayout(ctx, companyID, view.Storage.WarehouseID)
	return &view, nil
}

func (s *storageService) CheckCrowdedShelves(ctx context.Context, companyID string, threshold float64) (iter.Seq[CrowdedShelf], error) {
	if companyID == "" {
		return nil, badRequest("company is required")
	}
	if threshold == 0 {
		threshold = DefaultCrowdedThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, badRequest("threshold must be within (0, 1]")
	}

	shelves, err := s.Storages.ListShelvesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	crowded := make([]CrowdedShelf, 0)
	for _, sh := range shelves {
		if ratio := sh.FillRatio(); ratio >= threshold {
			crowded = append(crowded, CrowdedShelf{Shelf: sh, FillPercent: ratio * 100})
		}
	}
	return slices.Values(crowded), nil
}

func (s *storageService) GetStorage(ctx context.Context, storageID, companyID string) (*StorageView, error) {
	if storageID == "" || companyID == "" {
		return nil, badRequest("storage and company are required")
	}
	st, err := s.Storages.FindStorage(ctx, storageID)
	if err != nil {
		return nil, translate(err, "storage")
	}
	if st.CompanyID != companyID {
		return nil, fmt.Errorf("storage %w", ErrNotFound)
	}
	shelves, err := s.Storages.ListShelves(ctx, st.ID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	return &StorageView{Storage: *st, Shelves: orderShelves(st.ShelfIDs, shelves)}, nil
}

func (s *storageService) GetStorageLayout(ctx context.Context, warehouseID, companyID string) (*Layout, error) {
	if warehouseID == "" || companyID == "" {
		return nil, badRequest("warehouse and company are required")
	}

	key := layoutKey(companyID, warehouseID)
	if raw, err := s.Cache.Get(ctx, key); err == nil {
		var cached Layout
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		s.Logger.Warn("discard unreadable layout", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		s.cacheFailed("read layout", err)
	}

	storages, err := s.Storages.ListStoragesByWarehouse(ctx, warehouseID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list storages: %w", err)
	}
	if len(storages) == 0 {
		return nil, badRequest("warehouse has no storages")
	}

	views := make([]StorageView, len(storages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(layoutFanOut)
	for i, st := range storages {
		g.Go(func() error {
			shelves, err := s.Storages.ListShelves(gctx, st.ID)
			if err != nil {
				return fmt.Errorf("list shelves of %s: %w", st.ID, err)
			}
			views[i] = StorageView{Storage: st, Shelves: orderShelves(st.ShelfIDs, shelves)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	layout := &Layout{WarehouseID: warehouseID, CompanyID: companyID, Storages: views}
	if raw, err := json.Marshal(layout); err == nil {
		if err := s.Cache.SetWithExpiry(ctx, key, string(raw), s.LayoutTTL); err != nil {
			s.cacheFailed("store layout", err)
		}
	}
	return layout, nil
}

func (s *storageService) UpdateStorage(ctx context.Context, storageID, companyID string, coordinates []float64) (*model.Storage, error) {
	if storageID == "" || companyID == "" {
		return nil, badRequest("storage and company are required")
	}
	if err := validateCoordinates(coordinates); err != nil {
		return nil, err
	}

	var updated model.Storage
	err := s.Storages.WithinTx(ctx, func(q repository.StorageQueries) error {
		st, err := q.FindStorage(ctx, storageID)
		if err != nil {
			return err
		}
		if st.CompanyID != companyID {
			return fmt.Errorf("storage %w", ErrNotFound)
		}
		st.Coordinates = slices.Clone(coordinates)
		st.UpdatedAt = s.Clock.Now()
		if err := q.UpdateStorage(ctx, st); err != nil {
			return fmt.Errorf("update storage: %w", err)
		}
		updated = *st
		return nil
	})
	if err != nil {
		return nil, translate(err, "storage")
	}

	s.dropLayout(ctx, companyID, updated.WarehouseID)
	return &updated, nil
}

func (s *storageService) DeleteStorage(ctx context.Context, storageID, companyID string) error {
	if storageID == "" || companyID == "" {
		return badRequest("storage and company are required")
	}

	var warehouseID string
	err := s.Storages.WithinTx(ctx, func(q repository.StorageQueries) error {
		st, err := q.FindStorage(ctx, storageID)
		if err != nil {
			return err
		}
		if st.CompanyID != companyID {
			return fmt.Errorf("storage %w", ErrNotFound)
		}
		warehouseID = st.WarehouseID
		removed, err := q.DeleteShelves(ctx, st.ID)
		if err != nil {
			return fmt.Errorf("delete shelves: %w", err)
		}
		if err := q.DeleteStorage(ctx, st.ID); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
		s.Logger.Debug("storage deleted",
			zap.String("storage_id", st.ID),
			zap.Int64("shelves", removed),
		)
		return nil
	})
	if err != nil {
		return translate(err, "storage")
	}

	s.dropLayout(ctx, companyID, warehouseID)
	return nil
}

func (s *storageService) requireWarehouse(ctx context.Context, warehouseID, companyID string) error {
	w, err := s.Warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return translate(err, "warehouse")
	}
	if w.CompanyID != companyID {
		return fmt.Errorf("warehouse %w", ErrNotFound)
	}
	return nil
}

// dropLayout evicts the cached layout; a failure leaves it to expire.
func (s *storageService) dropLayout(ctx context.Context, companyID, warehouseID string) {
	if _, err := s.Cache.Delete(ctx, layoutKey(companyID, warehouseID)); err != nil {
		s.cacheFailed("drop layout", err)
	}
}

func (s *storageService) cacheFailed(op string, err error) {
	s.Logger.Warn("layout cache unavailable",
		zap.String("component", "storage"),
		zap.String("op", op),
		zap.Error(err),
	)
}

func validateCoordinates(c []float64) error {
	if len(c) != 4 {
		return badRequest("coordinates must have exactly 4 values")
	}
	return nil
}

// orderShelves arranges shelves by ids. Shelves missing from ids are skipped.
func orderShelves(ids []string, shelves []model.Shelf) []model.Shelf {
	byID := make(map[string]model.Shelf, len(shelves))
	for _, sh := range shelves {
		byID[sh.ID] = sh
	}
	out := make([]model.Shelf, 0, len(ids))
	for _, id := range ids {
		if sh, ok := byID[id]; ok {
			out = append(out, sh)
		}
	}
	return out
}

func layoutKey(companyID, warehouseID string) string {
	return "layout:" + companyID + ":" + warehouseID
}
