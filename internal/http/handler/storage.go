package handler

import (
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/http/middleware"
	"stockroom/internal/service"
)

type createStorageRequest struct {
	WarehouseID     string    `json:"warehouse_id"`
	Coordinates     []float64 `json:"coordinates"`
	ShelfParameters []float64 `json:"shelf_parameters"`
	ShelfSpace      float64   `json:"shelf_space"`
}

type placeProductRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type duplicateStorageRequest struct {
	WarehouseID string `json:"warehouse_id"`
}

type updateStorageRequest struct {
	Coordinates []float64 `json:"coordinates"`
}

// storageInWarehouse loads the storage named by the :id param and checks the
// caller's access to its warehouse. A nil view means a response was written.
func storageInWarehouse(c *fiber.Ctx, storages service.StorageService, access service.AccessService) (*service.StorageView, error) {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return nil, unauthorized(c)
	}
	view, err := storages.GetStorage(c.UserContext(), c.Params("id"), claims.CompanyID)
	if err != nil {
		return nil, writeServiceError(c, err)
	}
	if ok, err := guard(c, access, view.Storage.WarehouseID); !ok {
		return nil, err
	}
	return view, nil
}

// CreateStorage creates a storage with one empty shelf.
//
//	@Summary	Create a storage
//	@Tags		storages
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createStorageRequest	true	"Storage"
//	@Success	201		{object}	service.StorageView
//	@Failure	400		{object}	errorPayload
//	@Failure	403		{object}	errorPayload
//	@Router		/api/storages [post]
func CreateStorage(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createStorageRequest
		if err := c.BodyParser(&req); err != nil || req.WarehouseID == "" {
			return invalidBody(c)
		}
		if ok, err := guard(c, access, req.WarehouseID); !ok {
			return err
		}
		view, err := storages.CreateStorage(c.UserContext(), service.CreateStorageInput{
			CompanyID:       middleware.ClaimsFromCtx(c).CompanyID,
			WarehouseID:     req.WarehouseID,
			Coordinates:     req.Coordinates,
			ShelfParameters: req.ShelfParameters,
			ShelfSpace:      req.ShelfSpace,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	}
}

// GetStorage returns a storage with its shelves.
//
//	@Summary	Get a storage
//	@Tags		storages
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Storage ID"
//	@Success	200	{object}	service.StorageView
//	@Failure	404	{object}	errorPayload
//	@Router		/api/storages/{id} [get]
func GetStorage(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := storageInWarehouse(c, storages, access)
		if view == nil {
			return err
		}
		return c.JSON(view)
	}
}

// AddProductToShelf places a product on the first shelf with room for it.
//
//	@Summary	Place a product
//	@Tags		storages
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Storage ID"
//	@Param		body	body		placeProductRequest	true	"Product and quantity"
//	@Success	200		{object}	service.Placement
//	@Failure	409		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/api/storages/{id}/products [post]
func AddProductToShelf(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req placeProductRequest
		if err := c.BodyParser(&req); err != nil || req.ProductID == "" {
			return invalidBody(c)
		}
		view, err := storageInWarehouse(c, storages, access)
		if view == nil {
			return err
		}
		placed, err := storages.AddProductToShelf(c.UserContext(), service.PlaceProductInput{
			StorageID: view.Storage.ID,
			CompanyID: view.Storage.CompanyID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(placed)
	}
}

// DuplicateStorage clones a storage with empty shelves, optionally into
// another warehouse of the company.
//
//	@Summary	Duplicate a storage
//	@Tags		storages
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Storage ID"
//	@Param		body	body		duplicateStorageRequest	false	"Target warehouse"
//	@Success	201		{object}	service.StorageView
//	@Router		/api/storages/{id}/duplicate [post]
func DuplicateStorage(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req duplicateStorageRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return invalidBody(c)
			}
		}
		view, err := storageInWarehouse(c, storages, access)
		if view == nil {
			return err
		}
		if req.WarehouseID != "" && req.WarehouseID != view.Storage.WarehouseID {
			if ok, err := guard(c, access, req.WarehouseID); !ok {
				return err
			}
		}
		dup, err := storages.DuplicateStorage(c.UserContext(), view.Storage.ID, view.Storage.CompanyID, req.WarehouseID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dup)
	}
}

// UpdateStorage replaces the coordinates of a storage.
//
//	@Summary	Move a storage
//	@Tags		storages
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Storage ID"
//	@Param		body	body		updateStorageRequest	true	"Coordinates"
//	@Success	200		{object}	model.Storage
//	@Router		/api/storages/{id} [patch]
func UpdateStorage(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateStorageRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		view, err := storageInWarehouse(c, storages, access)
		if view == nil {
			return err
		}
		st, err := storages.UpdateStorage(c.UserContext(), view.Storage.ID, view.Storage.CompanyID, req.Coordinates)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// DeleteStorage removes a storage and its shelves.
//
//	@Summary	Delete a storage
//	@Tags		storages
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Storage ID"
//	@Success	204
//	@Router		/api/storages/{id} [delete]
func DeleteStorage(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := storageInWarehouse(c, storages, access)
		if view == nil {
			return err
		}
		if err := storages.DeleteStorage(c.UserContext(), view.Storage.ID, view.Storage.CompanyID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetStorageLayout returns every storage of a warehouse with its shelves.
//
//	@Summary	Warehouse layout
//	@Tags		warehouses
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Warehouse ID"
//	@Success	200	{object}	service.Layout
//	@Router		/api/warehouses/{id}/layout [get]
func GetStorageLayout(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wh := c.Params("id")
		if ok, err := guard(c, access, wh); !ok {
			return err
		}
		layout, err := storages.GetStorageLayout(c.UserContext(), wh, middleware.ClaimsFromCtx(c).CompanyID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(layout)
	}
}

// CrowdedShelves lists the company's shelves filled to at least threshold.
// Company-wide data is limited to the owner.
//
//	@Summary	Crowded shelves
//	@Tags		storages
//	@Security	BearerAuth
//	@Produce	json
//	@Param		threshold	query		number	false	"Fill ratio in (0, 1]"
//	@Success	200			{array}		service.CrowdedShelf
//	@Router		/api/shelves/crowded [get]
func CrowdedShelves(storages service.StorageService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threshold := 0.0
		if s := c.Query("threshold"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_THRESHOLD", "invalid threshold")
			}
			threshold = v
		}
		if ok, err := guard(c, access, ""); !ok {
			return err
		}
		seq, err := storages.CheckCrowdedShelves(c.UserContext(), middleware.ClaimsFromCtx(c).CompanyID, threshold)
		if err != nil {
			return writeServiceError(c, err)
		}
		items := slices.Collect(seq)
		if items == nil {
			items = []service.CrowdedShelf{}
		}
		return c.JSON(items)
	}
}
