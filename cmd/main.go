package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"transfers/config"
	"transfers/internal/cache"
	"transfers/internal/core"
	"transfers/internal/database"
	"transfers/internal/http"
	"transfers/internal/monetary"
)

func main() {
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application")

	dbClient, err := database.NewClient(cfg.Database)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create db client", "error", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if cfg.Database.Migrate {
		if err = dbClient.Migrate(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	store, closeStore, err := newCacheStore(ctx, cfg.Cache)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create cache store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	service := core.NewService(
		database.NewAccountStore(dbClient.DB(), dbClient.Dialect()),
		database.NewTransferStore(dbClient.DB(), dbClient.Dialect()),
		database.NewTransactor(dbClient.DB()),
		monetary.NewService(),
		logger,
		cfg.Core,
	)

	cacher := cache.NewCacher(store, cfg.Cache, logger)
	searchAccounts := cache.Wrap(cacher, "accounts.search", service.SearchAccounts)

	handler := http.NewHandler(service, service, http.AccountSearcherFunc(searchAccounts), logger)
	httpServer := http.NewServer(handler, logger, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to start http server", "error", err)
		os.Exit(1)
	}

	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err = httpServer.Stop(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	logger.InfoContext(ctx, "Application shutdown complete")
}

func newCacheStore(ctx context.Context, config cache.Config) (cache.Store, func(), error) {
	if config.RedisURL == "" {
		return cache.NewMemoryStore(), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, config)
	if err != nil {
		return nil, nil, err
	}

	return cache.NewRedisStore(client), func() { client.Close() }, nil
}
