package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/helpdesk-backend/internal/app"
	"github.com/heartmarshall/helpdesk-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "helpdesk",
		Short:        "Support ticket tracker API",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newHashPasswordCmd(),
	)
	return root
}

// loadConfig reads and validates configuration and sets up the default
// logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// withMigrator runs fn with a migrator for the configured database.
func withMigrator(ctx context.Context, fn func(ctx context.Context, m *postgres.Migrator) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	return fn(ctx, postgres.NewMigrator(cfg.Database.DSN, logger))
}
