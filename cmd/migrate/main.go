// Command migrate creates or updates the bookmarks schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"bookmarks/config"
	"bookmarks/internal/domain/lifecycle"
	logs "bookmarks/internal/infra/log"
	"bookmarks/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	// The schema is migrated below, not from the connection start hook.
	cfg.Database.AutoMigrate = false

	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(logs.New, postgres.New),
		fx.Populate(&db, &logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("Database schema migrated")

	return nil
}
