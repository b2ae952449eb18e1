package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/http/middleware"
	"stockroom/internal/service"
)

// Services bundles what the HTTP layer calls into.
type Services struct {
	Auth     service.AuthService
	Access   service.AccessService
	Storages service.StorageService
	Reports  service.ReportService
	Products service.ProductService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Everything
// under /api requires a bearer token from /auth/token.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	auth := app.Group("/auth")
	auth.Post("/otp", RequestOTP(svc.Auth))
	auth.Post("/token", VerifyOTP(svc.Auth))

	api := app.Group("/api", middleware.Auth(svc.Auth, unauthorized))

	api.Post("/storages", CreateStorage(svc.Storages, svc.Access))
	api.Get("/storages/:id", GetStorage(svc.Storages, svc.Access))
	api.Patch("/storages/:id", UpdateStorage(svc.Storages, svc.Access))
	api.Delete("/storages/:id", DeleteStorage(svc.Storages, svc.Access))
	api.Post("/storages/:id/products", AddProductToShelf(svc.Storages, svc.Access))
	api.Post("/storages/:id/duplicate", DuplicateStorage(svc.Storages, svc.Access))
	api.Get("/shelves/crowded", CrowdedShelves(svc.Storages, svc.Access))

	api.Get("/warehouses/:id/layout", GetStorageLayout(svc.Storages, svc.Access))
	api.Post("/warehouses/:id/reports/actions", LogAction(svc.Reports, svc.Access))
	api.Get("/warehouses/:id/reports/:date", GetDailyReport(svc.Reports, svc.Access))
	api.Post("/warehouses/:id/reports/:date/export", ExportDailyReport(svc.Reports, svc.Access))

	api.Post("/products", CreateProduct(svc.Products))
	api.Get("/products/:id", GetProduct(svc.Products))

	api.Delete("/access/:user_id", InvalidateAccess(svc.Access))
}
