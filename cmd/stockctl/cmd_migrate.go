package main

import (
	"context"

	"github.com/spf13/cobra"

	"stockroom/internal/database"
	"stockroom/internal/database/migration"
)

// migrateCmd creates the schema when the database is empty.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema if it does not exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e := newEnv()
		defer func() { _ = e.logger.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		db, err := database.NewPostgres(ctx, e.cfg.Database, e.logger)
		if err != nil {
			return err
		}
		defer db.Close()
		return migration.EnsureMigrated(ctx, db, e.logger, e.cfg.Database.Host)
	},
}
