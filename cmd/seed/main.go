package main

import (
	"context"
	"log/slog"
	"os"

	"transfers/config"
	"transfers/internal/core"
	"transfers/internal/database"
	"transfers/internal/monetary"
	"transfers/internal/seed"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))

	if err = run(ctx, cfg, logger); err != nil {
		logger.ErrorContext(ctx, "Failed to seed database", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Database seeded")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "Configuring dependencies")

	dbClient, err := database.NewClient(cfg.Database)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	if err = dbClient.Migrate(ctx); err != nil {
		return err
	}

	file, err := os.Open(cfg.SeedFile)
	if err != nil {
		return err
	}
	defer file.Close()

	accounts, err := seed.Decode(file)
	if err != nil {
		return err
	}

	service := core.NewService(
		database.NewAccountStore(dbClient.DB(), dbClient.Dialect()),
		database.NewTransferStore(dbClient.DB(), dbClient.Dialect()),
		database.NewTransactor(dbClient.DB()),
		monetary.NewService(),
		logger,
		cfg.Core,
	)

	logger.InfoContext(ctx, "Seeding database", "file", cfg.SeedFile, "accounts", len(accounts))
	return service.SeedAccounts(ctx, accounts)
}
