package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"weather-entities/internal/api"
	"weather-entities/internal/config"
	"weather-entities/internal/database"
	"weather-entities/internal/repository"
	"weather-entities/internal/service"
	"weather-entities/internal/stats"
	"weather-entities/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	repo, closeStore, err := buildRepository(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer closeStore()
	logger.Info("Connected to store", zap.String("type", string(cfg.Store.Type)))

	httpClient := &http.Client{Timeout: cfg.Weather.Timeout}
	fetcher := weather.NewClient(httpClient, cfg.Weather.BaseURL, cfg.Weather.APIKey)

	svc := service.NewService(repo, fetcher)
	statsCollector := stats.NewCollector(repo, cfg.Store.Type)
	router := api.NewRouter(svc, logger, cfg.Server.StaticDir, statsCollector)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildRepository connects the configured store backend and returns the
// repository plus a cleanup for the underlying connection.
func buildRepository(ctx context.Context, cfg *config.Config) (repository.EntityRepository, func(), error) {
	if cfg.Store.IsMemory() {
		db, err := database.ConnectSQLite(ctx, cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return repository.NewSQLiteRepository(db), func() { db.Close() }, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(connectCtx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	coll := client.Database(cfg.Store.Database).Collection(cfg.Store.Collection)
	repo, err := repository.NewMongoRepository(connectCtx, coll)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	disconnect := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}
	return repo, disconnect, nil
}

func runMigrations(db *sqlx.DB) error {
	// Use the driver instance directly to avoid DSN parsing issues with
	// in-memory SQLite.
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations/sqlite", "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
