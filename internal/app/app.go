// Package app assembles the service graph shared by the API server and the
// operator CLI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"stockroom/internal/cache"
	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/notify"
	"stockroom/internal/objectstore"
	"stockroom/internal/repository/postgres"
	"stockroom/internal/service"
)

// App holds long-lived connections and the services built on them.
type App struct {
	DB       *sql.DB
	Auth     service.AuthService
	Access   service.AccessService
	Storages service.StorageService
	Reports  service.ReportService
	Products service.ProductService

	closers []func() error
}

// New connects every backend named in cfg and wires the services. reg
// receives the domain metrics; pass nil to skip them.
func New(ctx context.Context, cfg *config.AppConfig, reg prometheus.Registerer, logger *zap.Logger) (*App, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	db, err := database.NewPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a := &App{DB: db, closers: []func() error{db.Close}}

	kv, err := a.openCache(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	var store objectstore.Store
	if cfg.MinIO.Endpoint != "" {
		store, err = objectstore.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("init object storage: %w", err)
		}
	} else {
		logger.Warn("object storage not configured, report export disabled")
	}

	var sender notify.Sender = notify.NewLogSender(logger)
	if cfg.Notify.SNSTopicARN != "" {
		sender, err = notify.NewSNS(ctx, cfg.Notify, logger)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("init notifications: %w", err)
		}
	}

	var metrics *service.Metrics
	if reg != nil {
		if metrics, err = service.NewMetrics(reg); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	clock := service.SystemClock()
	users := postgres.NewUserPostgres(db)
	products := postgres.NewProductPostgres(db)

	a.Reports = service.NewReportService(postgres.NewReportPostgres(db), store, clock, cfg.Location(), logger)
	a.Access = service.NewAccessService(users, kv, seconds(cfg.TTL.AccessDecisionSec), metrics, logger)
	a.Products = service.NewProductService(products)
	a.Storages = service.NewStorageService(service.StorageDeps{
		Storages:   postgres.NewStoragePostgres(db),
		Warehouses: postgres.NewWarehousePostgres(db),
		Products:   products,
		Cache:      kv,
		Journal:    a.Reports,
		Metrics:    metrics,
		Logger:     logger,
		Clock:      clock,
		LayoutTTL:  seconds(cfg.TTL.LayoutSec),
	})
	a.Auth = service.NewAuthService(users, kv, sender, clock, service.AuthOptions{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  seconds(cfg.Auth.JWTExpiresSec),
		OTPTTL:    seconds(cfg.Auth.OTPTTLSec),
		OTPLength: cfg.Auth.OTPLength,
	}, logger)
	return a, nil
}

func (a *App) openCache(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "memory":
		maxTTL := max(seconds(cfg.TTL.AccessDecisionSec), seconds(cfg.TTL.LayoutSec), seconds(cfg.Auth.OTPTTLSec))
		logger.Info("using in-process cache", zap.Int("size", cfg.Cache.MemorySize))
		return cache.NewMemory(cfg.Cache.MemorySize, maxTTL), nil
	case "redis", "":
		kv, closeFn, err := cache.NewRedis(ctx, cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
		a.closers = append(a.closers, closeFn)
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
