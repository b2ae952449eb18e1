package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"stockroom/internal/model"
	"stockroom/internal/service"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) LogAction(ctx context.Context, productID, warehouseID, companyID string, action model.ReportAction, quantity int) error {
	args := m.Called(ctx, productID, warehouseID, companyID, action, quantity)
	return args.Error(0)
}

func (m *MockReportService) GetDailyReport(ctx context.Context, warehouseID, companyID string, date time.Time) (*model.Report, error) {
	args := m.Called(ctx, warehouseID, companyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) ExportDailyReport(ctx context.Context, warehouseID, companyID string, date time.Time) (*service.ReportExport, error) {
	args := m.Called(ctx, warehouseID, companyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportExport), args.Error(1)
}
