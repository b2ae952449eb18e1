package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_companies",
		SQL: `CREATE TABLE IF NOT EXISTS companies (
  id       UUID PRIMARY KEY,
  owner_id UUID NOT NULL,
  name     TEXT NOT NULL UNIQUE
);`,
	},
	{
		Name: "create_table_warehouses",
		SQL: `CREATE TABLE IF NOT EXISTS warehouses (
  id         UUID PRIMARY KEY,
  company_id UUID NOT NULL REFERENCES companies (id),
  location   TEXT NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id                    UUID        PRIMARY KEY,
  name                  TEXT        NOT NULL,
  phone                 TEXT        NOT NULL UNIQUE,
  company_id            UUID        NOT NULL REFERENCES companies (id),
  jwt_deactivated_until TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_access_levels",
		SQL: `CREATE TABLE IF NOT EXISTS access_levels (
  user_id      UUID NOT NULL REFERENCES users (id),
  warehouse_id UUID NOT NULL REFERENCES warehouses (id),
  access_level TEXT NOT NULL CHECK (access_level IN ('owner', 'admin', 'employee', 'regional_manager', 'CEO')),
  PRIMARY KEY (user_id, warehouse_id)
);`,
	},
	{
		Name: "create_table_products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
  id                UUID           PRIMARY KEY,
  company_id        UUID           NOT NULL REFERENCES companies (id),
  name              TEXT           NOT NULL,
  cost              NUMERIC(14, 2) NOT NULL CHECK (cost > 0),
  article           TEXT           NOT NULL UNIQUE,
  barcode           TEXT           NOT NULL UNIQUE,
  item_type         TEXT           NOT NULL CHECK (item_type IN ('boxed', 'not_boxed')),
  dekart_parameters JSONB,
  CHECK ((item_type = 'boxed') = (dekart_parameters IS NOT NULL))
);`,
	},
	{
		Name: "create_table_storages",
		SQL: `CREATE TABLE IF NOT EXISTS storages (
  id           UUID        PRIMARY KEY,
  company_id   UUID        NOT NULL REFERENCES companies (id),
  warehouse_id UUID        NOT NULL REFERENCES warehouses (id),
  coordinates  JSONB       NOT NULL,
  shelf_ids    JSONB       NOT NULL DEFAULT '[]',
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		// No ON DELETE CASCADE: shelves are removed explicitly before their storage.
		Name: "create_table_shelves",
		SQL: `CREATE TABLE IF NOT EXISTS shelves (
  id             UUID             PRIMARY KEY,
  storage_id     UUID             NOT NULL REFERENCES storages (id),
  parameters     JSONB            NOT NULL,
  space          DOUBLE PRECISION NOT NULL CHECK (space > 0),
  occupied_space DOUBLE PRECISION NOT NULL DEFAULT 0,
  product_ids    JSONB            NOT NULL DEFAULT '[]',
  updated_at     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  CHECK (occupied_space >= 0 AND occupied_space <= space)
);`,
	},
	{
		Name: "create_table_reports",
		SQL: `CREATE TABLE IF NOT EXISTS reports (
  id           UUID  PRIMARY KEY,
  warehouse_id UUID  NOT NULL REFERENCES warehouses (id),
  company_id   UUID  NOT NULL REFERENCES companies (id),
  report_date  DATE  NOT NULL,
  actions      JSONB NOT NULL DEFAULT '[]',
  UNIQUE (warehouse_id, report_date)
);`,
	},
	{
		Name: "create_index_storages_warehouse",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_storages_warehouse ON storages (warehouse_id, company_id);`,
	},
	{
		Name: "create_index_shelves_storage",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_shelves_storage ON shelves (storage_id);`,
	},
}

// EnsureMigrated checks if the 'storages' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.storages') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
