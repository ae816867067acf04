package main

import (
	"context"
	"log/slog"

	"storefront/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				db     *gorm.DB
				logger *slog.Logger
			)

			return runWithDB(cmd.Context(), nil, func(ctx context.Context) error {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				logger.Info("Schema migrated")

				return nil
			}, &db, &logger)
		},
	}
}
