package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"stockroom/internal/http/middleware"
	"stockroom/internal/model"
	"stockroom/internal/service"
)

type createProductRequest struct {
	Name             string          `json:"name"`
	Cost             decimal.Decimal `json:"cost"`
	Article          string          `json:"article"`
	Barcode          string          `json:"barcode"`
	ItemType         model.ItemType  `json:"item_type"`
	DekartParameters []float64       `json:"dekart_parameters"`
}

// CreateProduct registers a catalog item for the caller's company.
//
//	@Summary	Create a product
//	@Tags		products
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createProductRequest	true	"Product"
//	@Success	201		{object}	model.Product
//	@Failure	409		{object}	errorPayload
//	@Router		/api/products [post]
func CreateProduct(products service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createProductRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		claims := middleware.ClaimsFromCtx(c)
		if claims == nil {
			return unauthorized(c)
		}
		p, err := products.CreateProduct(c.UserContext(), service.CreateProductInput{
			CompanyID:        claims.CompanyID,
			Name:             req.Name,
			Cost:             req.Cost,
			Article:          req.Article,
			Barcode:          req.Barcode,
			ItemType:         req.ItemType,
			DekartParameters: req.DekartParameters,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetProduct returns a product of the caller's company.
//
//	@Summary	Get a product
//	@Tags		products
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	model.Product
//	@Failure	404	{object}	errorPayload
//	@Router		/api/products/{id} [get]
func GetProduct(products service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := middleware.ClaimsFromCtx(c)
		if claims == nil {
			return unauthorized(c)
		}
		p, err := products.GetProduct(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if p.CompanyID != claims.CompanyID {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
		}
		return c.JSON(p)
	}
}
