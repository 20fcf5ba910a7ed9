// Package main is the entry point for the receivables API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerline/receivables/config"
	"github.com/ledgerline/receivables/internal/infra/cache"
	"github.com/ledgerline/receivables/internal/infra/db"
	"github.com/ledgerline/receivables/internal/infra/dependency"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/controller"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting receivables API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthChecks := map[string]controller.HealthCheck{
		"database": database.HealthCheck,
	}

	// Redis only backs the job locks; without it the API still serves manual triggers.
	var redisClient *redis.Client
	if client, err := cache.NewRedisClient(&cfg.Redis); err != nil {
		slog.Warn("Redis connection failed, periodic jobs disabled", "error", err)
	} else {
		redisClient = client
		defer client.Close()
		healthChecks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}

	var injector *dependency.Injector
	if redisClient != nil {
		injector, err = dependency.NewInjector(cfg, database.DB(), redisClient, healthChecks)
	} else {
		injector, err = dependency.NewInjector(cfg, database.DB(), nil, healthChecks)
	}
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Background workers share one context cancelled on shutdown
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	if cfg.Email.WorkerEnabled {
		workers.Add(1)
		go func() {
			defer workers.Done()
			injector.EmailWorker.Start(workerCtx)
		}()
	}

	if cfg.Jobs.Enabled && injector.JobRunner != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			injector.JobRunner.Start(workerCtx)
		}()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	stopWorkers()
	workers.Wait()

	slog.Info("Server exited properly")
}
