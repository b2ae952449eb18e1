package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockroom/internal/model"
	"stockroom/internal/objectstore"
	storeMocks "stockroom/internal/objectstore/mocks"
	repoMocks "stockroom/internal/repository/mocks"
)

// memReports keeps reports keyed by warehouse and day, appending in call order.
type memReports struct {
	mu      sync.Mutex
	reports map[string]*model.Report
}

func newMemReports() *memReports {
	return &memReports{reports: map[string]*model.Report{}}
}

func (m *memReports) key(warehouseID string, date time.Time) string {
	return warehouseID + "/" + date.Format(reportDateLayout)
}

func (m *memReports) AppendAction(_ context.Context, r *model.Report, entry model.ActionEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(r.WarehouseID, r.Date)
	existing, ok := m.reports[k]
	if !ok {
		cp := *r
		cp.Actions = nil
		existing = &cp
		m.reports[k] = existing
	}
	existing.Actions = append(existing.Actions, entry)
	return nil
}

func (m *memReports) FindByWarehouseAndDate(_ context.Context, warehouseID string, date time.Time) (*model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[m.key(warehouseID, date)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *r
	cp.Actions = append([]model.ActionEntry(nil), r.Actions...)
	return &cp, nil
}

func TestReportService_LogAction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)
	repo := newMemReports()
	svc := NewReportService(repo, nil, fixedClock{now}, time.UTC, nil)

	require.NoError(t, svc.LogAction(ctx, "p-1", "wh-1", "co-A", model.ActionPlaced, 3))
	require.NoError(t, svc.LogAction(ctx, "p-2", "wh-1", "co-A", model.ActionIssued, 1))
	require.NoError(t, svc.LogAction(ctx, "p-1", "wh-2", "co-A", model.ActionPlaced, 1))

	rep, err := svc.GetDailyReport(ctx, "wh-1", "co-A", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rep.Date)
	assert.Equal(t, []model.ActionEntry{
		{ProductID: "p-1", Action: model.ActionPlaced, Quantity: 3},
		{ProductID: "p-2", Action: model.ActionIssued, Quantity: 1},
	}, rep.Actions)
	assert.Len(t, repo.reports, 2)

	_, err = svc.GetDailyReport(ctx, "wh-1", "co-A", now.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_GetDailyReport_OtherCompany(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	svc := NewReportService(newMemReports(), nil, fixedClock{now}, time.UTC, nil)
	require.NoError(t, svc.LogAction(ctx, "p-1", "wh-B", "co-B", model.ActionPlaced, 1))

	_, err := svc.GetDailyReport(ctx, "wh-B", "co-A", now)
	assert.ErrorIs(t, err, ErrNotFound)

	rep, err := svc.GetDailyReport(ctx, "wh-B", "co-B", now)
	require.NoError(t, err)
	assert.Len(t, rep.Actions, 1)

	_, err = svc.GetDailyReport(ctx, "wh-B", "", now)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestReportService_LogAction_TimeZone(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("UTC+3", 3*60*60)
	repo := new(repoMocks.MockReportRepository)
	repo.On("AppendAction", ctx, mock.MatchedBy(func(r *model.Report) bool {
		return r.Date.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)) && r.WarehouseID == "wh-1" && r.ID != ""
	}), model.ActionEntry{ProductID: "p-1", Action: model.ActionRemoved, Quantity: 1}).Return(nil)

	svc := NewReportService(repo, nil, fixedClock{time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)}, loc, nil)

	require.NoError(t, svc.LogAction(ctx, "p-1", "wh-1", "co-A", model.ActionRemoved, 1))
	repo.AssertExpectations(t)
}

func TestReportService_LogAction_Validation(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockReportRepository)
	svc := NewReportService(repo, nil, nil, nil, nil)

	assert.ErrorIs(t, svc.LogAction(ctx, "p-1", "wh-1", "co-A", model.ActionPlaced, 0), ErrBadRequest)
	assert.ErrorIs(t, svc.LogAction(ctx, "p-1", "wh-1", "co-A", model.ReportAction("sold"), 1), ErrBadRequest)
	assert.ErrorIs(t, svc.LogAction(ctx, "", "wh-1", "co-A", model.ActionPlaced, 1), ErrBadRequest)
	repo.AssertNotCalled(t, "AppendAction", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_LogAction_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := newMemReports()
	svc := NewReportService(repo, nil, fixedClock{time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}, nil, nil)

	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.LogAction(ctx, "p-1", "wh-1", "co-A", model.ActionPlaced, 1))
		}()
	}
	wg.Wait()

	rep, err := svc.GetDailyReport(ctx, "wh-1", "co-A", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, rep.Actions, 25)
}

func TestReportService_ExportDailyReport(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := day.Add(12 * time.Hour)

	newSvc := func(t *testing.T) (ReportService, *storeMocks.MockStore) {
		repo := newMemReports()
		require.NoError(t, repo.AppendAction(ctx, &model.Report{ID: "r-1", WarehouseID: "wh-1", CompanyID: "co-A", Date: day},
			model.ActionEntry{ProductID: "p-1", Action: model.ActionPlaced, Quantity: 2}))
		store := new(storeMocks.MockStore)
		return NewReportService(repo, store, fixedClock{now}, time.UTC, nil), store
	}

	t.Run("uploads and presigns", func(t *testing.T) {
		svc, store := newSvc(t)
		store.On("Put", ctx, "reports/wh-1/2024-03-01.json", mock.MatchedBy(func(r io.Reader) bool { return r != nil }),
			mock.MatchedBy(func(o objectstore.PutOptions) bool {
				return o.ContentType == "application/json" && o.Size > 0 && o.Metadata["report-id"] == "r-1"
			})).Return(objectstore.ObjectInfo{Key: "reports/wh-1/2024-03-01.json"}, nil)
		store.On("PresignGet", ctx, "reports/wh-1/2024-03-01.json", 15*time.Minute).Return("https://minio/reports/wh-1", nil)

		exp, err := svc.ExportDailyReport(ctx, "wh-1", "co-A", day)

		require.NoError(t, err)
		assert.Equal(t, &ReportExport{
			Key:       "reports/wh-1/2024-03-01.json",
			URL:       "https://minio/reports/wh-1",
			ExpiresAt: now.Add(15 * time.Minute),
		}, exp)
		store.AssertExpectations(t)
	})

	t.Run("missing report", func(t *testing.T) {
		svc, store := newSvc(t)
		_, err := svc.ExportDailyReport(ctx, "wh-9", "co-A", day)
		assert.ErrorIs(t, err, ErrNotFound)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other company", func(t *testing.T) {
		svc, store := newSvc(t)
		_, err := svc.ExportDailyReport(ctx, "wh-1", "co-B", day)
		assert.ErrorIs(t, err, ErrNotFound)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload failure", func(t *testing.T) {
		svc, store := newSvc(t)
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(objectstore.ObjectInfo{}, errors.New("bucket gone"))

		_, err := svc.ExportDailyReport(ctx, "wh-1", "co-A", day)
		assert.EqualError(t, err, "upload report: bucket gone")
	})

	t.Run("no object storage", func(t *testing.T) {
		svc := NewReportService(newMemReports(), nil, nil, nil, nil)
		_, err := svc.ExportDailyReport(ctx, "wh-1", "co-A", day)
		assert.Error(t, err)
	})
}
