package handler

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/http/middleware"
	"stockroom/internal/model"
	"stockroom/internal/service"
)

// allow checks that the caller may act at warehouseID. An empty warehouseID
// asks for company-wide rights, which only the owner holds.
func allow(c *fiber.Ctx, access service.AccessService, warehouseID string) (bool, error) {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return false, service.ErrUnauthorized
	}
	if warehouseID == "" {
		return access.CheckAccessLevel(c.UserContext(), claims.UserID, claims.CompanyID, "", model.AccessOwner)
	}
	return access.CheckAccess(c.UserContext(), claims.UserID, claims.CompanyID, warehouseID)
}

// guard runs allow and writes the error response when access is refused.
// It returns true when the handler may proceed.
func guard(c *fiber.Ctx, access service.AccessService, warehouseID string) (bool, error) {
	ok, err := allow(c, access, warehouseID)
	if err != nil {
		return false, writeServiceError(c, err)
	}
	if !ok {
		return false, forbidden(c)
	}
	return true, nil
}

// InvalidateAccess drops cached access decisions of a user. Without the
// warehouse_id query parameter every decision of the user is dropped.
//
//	@Summary	Invalidate cached access decisions
//	@Tags		access
//	@Security	BearerAuth
//	@Param		user_id			path	string	true	"User ID"
//	@Param		warehouse_id	query	string	false	"Warehouse ID"
//	@Success	204
//	@Failure	403	{object}	errorPayload
//	@Router		/api/access/{user_id} [delete]
func InvalidateAccess(access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := guard(c, access, ""); !ok {
			return err
		}
		claims := middleware.ClaimsFromCtx(c)
		userID := c.Params("user_id")

		var err error
		if wh := c.Query("warehouse_id"); wh != "" {
			err = access.InvalidateAccess(c.UserContext(), userID, claims.CompanyID, wh)
		} else {
			err = access.InvalidateUser(c.UserContext(), userID)
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
