package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockroom/internal/model"
	"stockroom/internal/objectstore"
	"stockroom/internal/repository"
)

const (
	reportDateLayout  = "2006-01-02"
	reportExportTTL   = 15 * time.Minute
	reportContentType = "application/json"
)

// ReportExport points at an uploaded daily report.
type ReportExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Journal records inventory actions. StorageService logs placements through it.
type Journal interface {
	LogAction(ctx context.Context, productID, warehouseID, companyID string, action model.ReportAction, quantity int) error
}

// ReportService maintains the append-only daily action journal.
type ReportService interface {
	Journal

	// GetDailyReport returns the journal of one warehouse for the calendar day
	// of date. A report filed under another company is ErrNotFound.
	GetDailyReport(ctx context.Context, warehouseID, companyID string, date time.Time) (*model.Report, error)

	// ExportDailyReport uploads the report as JSON and returns a short-lived download link.
	ExportDailyReport(ctx context.Context, warehouseID, companyID string, date time.Time) (*ReportExport, error)
}

type reportService struct {
	repo   repository.ReportRepository
	store  objectstore.Store
	clock  Clock
	loc    *time.Location
	logger *zap.Logger
}

// NewReportService constructs a ReportService. "Today" is evaluated in loc.
// store may be nil, in which case exports fail.
func NewReportService(repo repository.ReportRepository, store objectstore.Store, clock Clock, loc *time.Location, logger *zap.Logger) ReportService {
	if clock == nil {
		clock = SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportService{repo: repo, store: store, clock: clock, loc: loc, logger: logger}
}

func (s *reportService) LogAction(ctx context.Context, productID, warehouseID, companyID string, action model.ReportAction, quantity int) error {
	if productID == "" || warehouseID == "" {
		return badRequest("product and warehouse are required")
	}
	if !action.Valid() {
		return badRequest("unknown action %q", action)
	}
	if quantity <= 0 {
		return badRequest("quantity must be positive")
	}

	rep := &model.Report{
		ID:          uuid.NewString(),
		WarehouseID: warehouseID,
		CompanyID:   companyID,
		Date:        model.ReportDate(s.clock.Now(), s.loc),
	}
	entry := model.ActionEntry{ProductID: productID, Action: action, Quantity: quantity}
	if err := s.repo.AppendAction(ctx, rep, entry); err != nil {
		return fmt.Errorf("append report action: %w", translate(err, "report"))
	}
	return nil
}

func (s *reportService) GetDailyReport(ctx context.Context, warehouseID, companyID string, date time.Time) (*model.Report, error) {
	if warehouseID == "" || companyID == "" {
		return nil, badRequest("warehouse and company are required")
	}
	rep, err := s.repo.FindByWarehouseAndDate(ctx, warehouseID, model.ReportDate(date, date.Location()))
	if err != nil {
		return nil, translate(err, "report")
	}
	if rep.CompanyID != companyID {
		return nil, fmt.Errorf("report %w", ErrNotFound)
	}
	return rep, nil
}

func (s *reportService) ExportDailyReport(ctx context.Context, warehouseID, companyID string, date time.Time) (*ReportExport, error) {
	if s.store == nil {
		return nil, errors.New("object storage is not configured")
	}
	rep, err := s.GetDailyReport(ctx, warehouseID, companyID, date)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	key := fmt.Sprintf("reports/%s/%s.json", rep.WarehouseID, rep.Date.Format(reportDateLayout))
	if _, err := s.store.Put(ctx, key, bytes.NewReader(body), objectstore.PutOptions{
		Size:        int64(len(body)),
		ContentType: reportContentType,
		Metadata:    map[string]string{"report-id": rep.ID},
	}); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, reportExportTTL)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}
	s.logger.Info("report exported",
		zap.String("warehouse_id", rep.WarehouseID),
		zap.String("key", key),
		zap.Int("actions", len(rep.Actions)),
	)
	return &ReportExport{Key: key, URL: url, ExpiresAt: s.clock.Now().Add(reportExportTTL)}, nil
}
