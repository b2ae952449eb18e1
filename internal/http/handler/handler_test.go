package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockroom/internal/http/middleware"
	"stockroom/internal/model"
	"stockroom/internal/service"
	serviceMocks "stockroom/internal/service/mocks"
)

var testClaims = &service.Claims{UserID: "u-1", CompanyID: "co-A"}

// newApp returns an app whose requests carry testClaims, as if Auth ran.
func newApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.ClaimsLocalKey, testClaims)
		return c.Next()
	})
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{service.ErrCapacityExceeded, http.StatusUnprocessableEntity, "CAPACITY_EXCEEDED"},
		{fmt.Errorf("%w: bad quantity", service.ErrBadRequest), http.StatusBadRequest, "BAD_REQUEST"},
		{fmt.Errorf("storage %w", service.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{service.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{service.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{service.ErrUniqueViolation, http.StatusConflict, "ALREADY_EXISTS"},
		{service.ErrConflict, http.StatusConflict, "CONFLICT"},
		{errors.New("dial tcp: refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeServiceError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "dial tcp")
		})
	}

	t.Run("conflict sets Retry-After", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return writeServiceError(c, service.ErrConflict) })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, retryAfterSeconds, resp.Header.Get(fiber.HeaderRetryAfter))
	})
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/known", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
}

func TestRequestOTP(t *testing.T) {
	authSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/otp", RequestOTP(authSvc))

	t.Run("sent", func(t *testing.T) {
		authSvc.On("RequestOTP", mock.Anything, "+100", "co-A").Return(nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/otp", otpRequest{Phone: "+100", CompanyID: "co-A"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		authSvc.AssertExpectations(t)
	})

	t.Run("missing phone", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/otp", otpRequest{CompanyID: "co-A"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		authSvc.On("RequestOTP", mock.Anything, "+200", "co-A").Return(fmt.Errorf("user %w", service.ErrNotFound)).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/otp", otpRequest{Phone: "+200", CompanyID: "co-A"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestVerifyOTP(t *testing.T) {
	authSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/token", VerifyOTP(authSvc))

	t.Run("issues token", func(t *testing.T) {
		tok := &service.Token{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 600}
		authSvc.On("VerifyOTP", mock.Anything, "+100", "123456").Return(tok, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/token", tokenRequest{Phone: "+100", Code: "123456"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got service.Token
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, *tok, got)
	})

	t.Run("wrong code", func(t *testing.T) {
		authSvc.On("VerifyOTP", mock.Anything, "+100", "000000").Return(nil, service.ErrUnauthorized).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/token", tokenRequest{Phone: "+100", Code: "000000"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("blocked user", func(t *testing.T) {
		authSvc.On("VerifyOTP", mock.Anything, "+300", "111111").Return(nil, service.ErrForbidden).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/token", tokenRequest{Phone: "+300", Code: "111111"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestCreateStorage(t *testing.T) {
	storages := new(serviceMocks.MockStorageService)
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Post("/storages", CreateStorage(storages, access))

	req := createStorageRequest{WarehouseID: "wh-1", Coordinates: []float64{1, 2}, ShelfParameters: []float64{1, 1, 1}, ShelfSpace: 10}

	t.Run("created", func(t *testing.T) {
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil).Once()
		view := &service.StorageView{Storage: model.Storage{ID: "st-1", WarehouseID: "wh-1"}}
		storages.On("CreateStorage", mock.Anything, service.CreateStorageInput{
			CompanyID:       "co-A",
			WarehouseID:     "wh-1",
			Coordinates:     req.Coordinates,
			ShelfParameters: req.ShelfParameters,
			ShelfSpace:      10,
		}).Return(view, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages", req))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		storages.AssertExpectations(t)
	})

	t.Run("denied", func(t *testing.T) {
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(false, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages", req))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Error.Code)
	})

	t.Run("missing warehouse", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages", createStorageRequest{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAddProductToShelf(t *testing.T) {
	view := &service.StorageView{Storage: model.Storage{ID: "st-1", CompanyID: "co-A", WarehouseID: "wh-1"}}
	in := service.PlaceProductInput{StorageID: "st-1", CompanyID: "co-A", ProductID: "p-1", Quantity: 3}

	setup := func() (*fiber.App, *serviceMocks.MockStorageService, *serviceMocks.MockAccessService) {
		storages := new(serviceMocks.MockStorageService)
		access := new(serviceMocks.MockAccessService)
		app := newApp()
		app.Post("/storages/:id/products", AddProductToShelf(storages, access))
		storages.On("GetStorage", mock.Anything, "st-1", "co-A").Return(view, nil).Maybe()
		return app, storages, access
	}

	t.Run("placed", func(t *testing.T) {
		app, storages, access := setup()
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil).Once()
		storages.On("AddProductToShelf", mock.Anything, in).Return(&service.Placement{ShelfID: "sh-1", Volume: 6, FreeSpaceLeft: 4}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages/st-1/products", placeProductRequest{ProductID: "p-1", Quantity: 3}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got service.Placement
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "sh-1", got.ShelfID)
		assert.Equal(t, 4.0, got.FreeSpaceLeft)
	})

	t.Run("no space", func(t *testing.T) {
		app, storages, access := setup()
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil).Once()
		storages.On("AddProductToShelf", mock.Anything, in).Return(nil, service.ErrCapacityExceeded).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages/st-1/products", placeProductRequest{ProductID: "p-1", Quantity: 3}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("conflict", func(t *testing.T) {
		app, storages, access := setup()
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil).Once()
		storages.On("AddProductToShelf", mock.Anything, in).Return(nil, service.ErrConflict).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages/st-1/products", placeProductRequest{ProductID: "p-1", Quantity: 3}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, retryAfterSeconds, resp.Header.Get(fiber.HeaderRetryAfter))
	})

	t.Run("storage of another company", func(t *testing.T) {
		storages := new(serviceMocks.MockStorageService)
		access := new(serviceMocks.MockAccessService)
		app := newApp()
		app.Post("/storages/:id/products", AddProductToShelf(storages, access))
		storages.On("GetStorage", mock.Anything, "st-9", "co-A").Return(nil, fmt.Errorf("storage %w", service.ErrNotFound)).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages/st-9/products", placeProductRequest{ProductID: "p-1", Quantity: 1}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		access.AssertNotCalled(t, "CheckAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("access check fails", func(t *testing.T) {
		app, _, access := setup()
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(false, errors.New("db down")).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages/st-1/products", placeProductRequest{ProductID: "p-1", Quantity: 3}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestDuplicateStorage(t *testing.T) {
	storages := new(serviceMocks.MockStorageService)
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Post("/storages/:id/duplicate", DuplicateStorage(storages, access))

	view := &service.StorageView{Storage: model.Storage{ID: "st-1", CompanyID: "co-A", WarehouseID: "wh-1"}}
	storages.On("GetStorage", mock.Anything, "st-1", "co-A").Return(view, nil)
	access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil)

	t.Run("same warehouse without body", func(t *testing.T) {
		dup := &service.StorageView{Storage: model.Storage{ID: "st-2", WarehouseID: "wh-1"}}
		storages.On("DuplicateStorage", mock.Anything, "st-1", "co-A", "").Return(dup, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/storages/st-1/duplicate", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("target warehouse denied", func(t *testing.T) {
		access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-2").Return(false, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/storages/st-1/duplicate", duplicateStorageRequest{WarehouseID: "wh-2"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		storages.AssertNotCalled(t, "DuplicateStorage", mock.Anything, "st-1", "co-A", "wh-2")
	})
}

func TestStorageCRUD(t *testing.T) {
	storages := new(serviceMocks.MockStorageService)
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Get("/storages/:id", GetStorage(storages, access))
	app.Patch("/storages/:id", UpdateStorage(storages, access))
	app.Delete("/storages/:id", DeleteStorage(storages, access))

	view := &service.StorageView{
		Storage: model.Storage{ID: "st-1", CompanyID: "co-A", WarehouseID: "wh-1"},
		Shelves: []model.Shelf{{ID: "sh-1", StorageID: "st-1"}},
	}
	storages.On("GetStorage", mock.Anything, "st-1", "co-A").Return(view, nil)
	access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/storages/st-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got service.StorageView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got.Shelves, 1)

	moved := &model.Storage{ID: "st-1", Coordinates: []float64{5, 6}}
	storages.On("UpdateStorage", mock.Anything, "st-1", "co-A", []float64{5, 6}).Return(moved, nil).Once()
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/storages/st-1", updateStorageRequest{Coordinates: []float64{5, 6}}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	storages.On("DeleteStorage", mock.Anything, "st-1", "co-A").Return(nil).Once()
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/storages/st-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	storages.AssertExpectations(t)
}

func TestGetStorageLayout(t *testing.T) {
	storages := new(serviceMocks.MockStorageService)
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Get("/warehouses/:id/layout", GetStorageLayout(storages, access))

	access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil).Once()
	storages.On("GetStorageLayout", mock.Anything, "wh-1", "co-A").Return(&service.Layout{WarehouseID: "wh-1", CompanyID: "co-A"}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/warehouses/wh-1/layout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-x").Return(false, fmt.Errorf("company %w", service.ErrNotFound)).Once()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/warehouses/wh-x/layout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCrowdedShelves(t *testing.T) {
	storages := new(serviceMocks.MockStorageService)
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Get("/shelves/crowded", CrowdedShelves(storages, access))

	t.Run("owner", func(t *testing.T) {
		access.On("CheckAccessLevel", mock.Anything, "u-1", "co-A", "", model.AccessOwner).Return(true, nil).Once()
		seq := slices.Values([]service.CrowdedShelf{{Shelf: model.Shelf{ID: "sh-1"}, FillPercent: 0.95}})
		storages.On("CheckCrowdedShelves", mock.Anything, "co-A", 0.8).Return(seq, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shelves/crowded?threshold=0.8", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got []service.CrowdedShelf
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "sh-1", got[0].Shelf.ID)
	})

	t.Run("empty result is an array", func(t *testing.T) {
		access.On("CheckAccessLevel", mock.Anything, "u-1", "co-A", "", model.AccessOwner).Return(true, nil).Once()
		storages.On("CheckCrowdedShelves", mock.Anything, "co-A", 0.0).Return(slices.Values([]service.CrowdedShelf(nil)), nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shelves/crowded", nil))
		require.NoError(t, err)
		var raw []json.RawMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		assert.NotNil(t, raw)
		assert.Empty(t, raw)
	})

	t.Run("not owner", func(t *testing.T) {
		access.On("CheckAccessLevel", mock.Anything, "u-1", "co-A", "", model.AccessOwner).Return(false, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shelves/crowded", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shelves/crowded?threshold=lots", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_THRESHOLD", decodeError(t, resp).Error.Code)
	})
}

func TestReports(t *testing.T) {
	reports := new(serviceMocks.MockReportService)
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Post("/warehouses/:id/reports/actions", LogAction(reports, access))
	app.Get("/warehouses/:id/reports/:date", GetDailyReport(reports, access))
	app.Post("/warehouses/:id/reports/:date/export", ExportDailyReport(reports, access))
	access.On("CheckAccess", mock.Anything, "u-1", "co-A", "wh-1").Return(true, nil)

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("log action", func(t *testing.T) {
		reports.On("LogAction", mock.Anything, "p-1", "wh-1", "co-A", model.ActionIssued, 2).Return(nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/warehouses/wh-1/reports/actions", map[string]any{"product_id": "p-1", "action": model.ActionIssued, "quantity": 2}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("log action without quantity", func(t *testing.T) {
		reports.On("LogAction", mock.Anything, "p-1", "wh-1", "co-A", model.ActionPlaced, 1).Return(nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/warehouses/wh-1/reports/actions", map[string]any{"product_id": "p-1", "action": model.ActionPlaced}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("log action zero quantity", func(t *testing.T) {
		reports.On("LogAction", mock.Anything, "p-1", "wh-1", "co-A", model.ActionPlaced, 0).Return(service.ErrBadRequest).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/warehouses/wh-1/reports/actions", map[string]any{"product_id": "p-1", "action": model.ActionPlaced, "quantity": 0}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get report", func(t *testing.T) {
		rep := &model.Report{ID: "r-1", WarehouseID: "wh-1", Date: day, Actions: []model.ActionEntry{{ProductID: "p-1", Action: model.ActionPlaced, Quantity: 1}}}
		reports.On("GetDailyReport", mock.Anything, "wh-1", "co-A", day).Return(rep, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/warehouses/wh-1/reports/2024-03-05", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got.Actions, 1)
	})

	t.Run("bad date", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/warehouses/wh-1/reports/05-03-2024", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
	})

	t.Run("export", func(t *testing.T) {
		exp := &service.ReportExport{Key: "reports/wh-1/2024-03-05.json", URL: "http://minio/x"}
		reports.On("ExportDailyReport", mock.Anything, "wh-1", "co-A", day).Return(exp, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/warehouses/wh-1/reports/2024-03-05/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	reports.AssertExpectations(t)
}

func TestProducts(t *testing.T) {
	products := new(serviceMocks.MockProductService)
	app := newApp()
	app.Post("/products", CreateProduct(products))
	app.Get("/products/:id", GetProduct(products))

	t.Run("create", func(t *testing.T) {
		products.On("CreateProduct", mock.Anything, mock.MatchedBy(func(in service.CreateProductInput) bool {
			return in.CompanyID == "co-A" && in.Name == "Box"
		})).Return(&model.Product{ID: "p-1", CompanyID: "co-A", Name: "Box"}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/products", createProductRequest{Name: "Box", ItemType: model.ItemTypeNotBoxed}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate article", func(t *testing.T) {
		products.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, service.ErrUniqueViolation).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/products", createProductRequest{Name: "Box"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("other company is hidden", func(t *testing.T) {
		products.On("GetProduct", mock.Anything, "p-9").Return(&model.Product{ID: "p-9", CompanyID: "co-B"}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products/p-9", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestInvalidateAccess(t *testing.T) {
	access := new(serviceMocks.MockAccessService)
	app := newApp()
	app.Delete("/access/:user_id", InvalidateAccess(access))

	t.Run("one warehouse", func(t *testing.T) {
		access.On("CheckAccessLevel", mock.Anything, "u-1", "co-A", "", model.AccessOwner).Return(true, nil).Once()
		access.On("InvalidateAccess", mock.Anything, "u-2", "co-A", "wh-1").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/access/u-2?warehouse_id=wh-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("whole user", func(t *testing.T) {
		access.On("CheckAccessLevel", mock.Anything, "u-1", "co-A", "", model.AccessOwner).Return(true, nil).Once()
		access.On("InvalidateUser", mock.Anything, "u-2").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/access/u-2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not owner", func(t *testing.T) {
		access.On("CheckAccessLevel", mock.Anything, "u-1", "co-A", "", model.AccessOwner).Return(false, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/access/u-2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	access.AssertExpectations(t)
}

func TestRegisterRoutes_RequiresToken(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	authSvc := new(serviceMocks.MockAuthService)
	authSvc.On("ParseToken", "bad").Return(nil, service.ErrUnauthorized)

	app := fiber.New()
	RegisterRoutes(app, db, Services{
		Auth:     authSvc,
		Access:   new(serviceMocks.MockAccessService),
		Storages: new(serviceMocks.MockStorageService),
		Reports:  new(serviceMocks.MockReportService),
		Products: new(serviceMocks.MockProductService),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/storages/st-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/storages/st-1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer bad")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
}
