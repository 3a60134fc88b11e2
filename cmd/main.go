package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "adrecon/internal/adapter/http"
	"adrecon/internal/adapter/platform"
	"adrecon/internal/adapter/postgres"
	"adrecon/internal/adapter/usecase"
	"adrecon/internal/auth"
	"adrecon/internal/config"
	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/db"
	"adrecon/internal/scheduler"
)

// main is the entry point of the reconciliation service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, repositories, fetchers and the batch service, then starts
// the scheduler and the HTTP server. On receiving a termination signal it
// gracefully shuts down the server and waits for an in-flight batch.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	loc, err := time.LoadLocation(cfg.Batch.Timezone)
	if err != nil {
		logger.Error("invalid batch timezone", slog.String("timezone", cfg.Batch.Timezone), slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	accounts := postgres.NewAccountRepository(pool)
	overrides := postgres.NewOverrideRepository(pool)
	reviews := postgres.NewReviewRepository(pool)
	creds := postgres.NewCredentialRepository(pool)
	logs := postgres.NewBatchRepository(pool)

	tokens := auth.NewGoogleTokenManager(creds, logger)
	fetchers := map[domain.Platform]port.ActivityFetcher{
		domain.PlatformMeta:   platform.NewMetaClient(cfg.Meta.BaseURL, cfg.Meta.PageSize, cfg.Meta.MaxPages, logger),
		domain.PlatformGoogle: platform.NewGoogleAdsClient(cfg.GoogleAds.BaseURL, tokens, logger),
	}

	rec := usecase.NewReconciler(fetchers, overrides, reviews, accounts, loc, logger)
	batch := usecase.NewBatchService(ctx, accounts, logs, creds, rec, cfg.Batch.UnitTimeout, logger)

	go scheduler.New(batch, cfg.Batch.Interval, logger).Run(ctx)

	handler := httpadapter.NewHandler(batch, reviews, logs, loc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	// Let a detached batch finish its terminal audit-log write.
	batch.Wait()
}
