package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	"budget-planner/internal/adapter/alert"
	httpadapter "budget-planner/internal/adapter/http"
	"budget-planner/internal/adapter/postgres"
	"budget-planner/internal/adapter/usecase"
	"budget-planner/internal/config"
	"budget-planner/internal/core/port"
	"budget-planner/internal/db"
	"budget-planner/internal/scheduler"
)

// main is the entry point of the budget-planner service. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the database pool and repositories, starts the periodic
// job scheduler and the HTTP server. On receiving a termination signal
// it gracefully shuts down the server and the scheduler.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	var sink port.AlertSink
	if cfg.Alerts.WebhookURL != "" {
		sink = alert.NewWebhookSink(cfg.Alerts.WebhookURL, cfg.Alerts.WebhookSecret)
	} else {
		sink = alert.NewLogSink(logger)
	}

	repo := postgres.NewBudgetRepository(pool)
	ledger := postgres.NewLedgerRepository(pool)
	clock := port.UTCClock{}
	svc := usecase.NewBudgetUseCase(repo, ledger, sink, clock, usecase.Config{
		AlertThresholdPercent: cfg.Jobs.AlertThresholdPercent,
		Workers:               cfg.Jobs.Workers,
	})

	sched := scheduler.New(svc, clock, logger, scheduler.Config{
		ReconcileInterval:     cfg.Jobs.ReconcileInterval,
		AlertInterval:         cfg.Jobs.AlertInterval,
		BoundaryCheckInterval: cfg.Jobs.BoundaryCheckInterval,
	})
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Run(ctx)
	}()

	handler := httpadapter.NewHandler(svc, logger)
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	cancel()
	<-schedDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
