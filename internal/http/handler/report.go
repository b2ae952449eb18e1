package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/http/middleware"
	"stockroom/internal/model"
	"stockroom/internal/service"
)

const dateLayout = "2006-01-02"

type logActionRequest struct {
	ProductID string             `json:"product_id"`
	Action    model.ReportAction `json:"action"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity,omitempty"`
}

func (r logActionRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// reportDate parses the :date param as a calendar day.
func reportDate(c *fiber.Ctx) (time.Time, bool) {
	d, err := time.Parse(dateLayout, c.Params("date"))
	return d, err == nil
}

// LogAction appends an action to today's report of a warehouse.
//
//	@Summary	Record an inventory action
//	@Tags		reports
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string				true	"Warehouse ID"
//	@Param		body	body	logActionRequest	true	"Action"
//	@Success	204
//	@Failure	400	{object}	errorPayload
//	@Router		/api/warehouses/{id}/reports/actions [post]
func LogAction(reports service.ReportService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req logActionRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		wh := c.Params("id")
		if ok, err := guard(c, access, wh); !ok {
			return err
		}
		claims := middleware.ClaimsFromCtx(c)
		if err := reports.LogAction(c.UserContext(), req.ProductID, wh, claims.CompanyID, req.Action, req.quantity()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetDailyReport returns the journal of a warehouse for one day.
//
//	@Summary	Daily report
//	@Tags		reports
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		string	true	"Warehouse ID"
//	@Param		date	path		string	true	"Day, YYYY-MM-DD"
//	@Success	200		{object}	model.Report
//	@Failure	404		{object}	errorPayload
//	@Router		/api/warehouses/{id}/reports/{date} [get]
func GetDailyReport(reports service.ReportService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, ok := reportDate(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		}
		wh := c.Params("id")
		if ok, err := guard(c, access, wh); !ok {
			return err
		}
		rep, err := reports.GetDailyReport(c.UserContext(), wh, middleware.ClaimsFromCtx(c).CompanyID, day)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rep)
	}
}

// ExportDailyReport uploads a daily report to object storage and returns a
// temporary download link.
//
//	@Summary	Export a daily report
//	@Tags		reports
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		string	true	"Warehouse ID"
//	@Param		date	path		string	true	"Day, YYYY-MM-DD"
//	@Success	201		{object}	service.ReportExport
//	@Router		/api/warehouses/{id}/reports/{date}/export [post]
func ExportDailyReport(reports service.ReportService, access service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, ok := reportDate(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		}
		wh := c.Params("id")
		if ok, err := guard(c, access, wh); !ok {
			return err
		}
		exp, err := reports.ExportDailyReport(c.UserContext(), wh, middleware.ClaimsFromCtx(c).CompanyID, day)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(exp)
	}
}
