package main

import (
	root "bus2ride"
	"bus2ride/internal/config"
	"bus2ride/pkg/logger"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the site schema (poll votes, reviews, leads) and
// River's queue tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			res, err := strg.Migrate(ctx, root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			if res.RiverFrom < res.RiverTo {
				logger.Info(ctx, "migrated river queue tables", zap.Int("from", res.RiverFrom), zap.Int("to", res.RiverTo))
			}
			logger.Info(ctx, "database is up to date")
		},
	}
}
