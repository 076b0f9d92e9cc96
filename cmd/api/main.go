package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trackfit-companion/config"
	_ "trackfit-companion/docs" // Swagger docs
	"trackfit-companion/internal/httpserver"
	"trackfit-companion/internal/middleware"
	"trackfit-companion/internal/model"
	"trackfit-companion/pkg/kvstore"
	"trackfit-companion/pkg/kvstore/cached"
	"trackfit-companion/pkg/kvstore/memory"
	"trackfit-companion/pkg/kvstore/sqlite"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

// @title       TrackFit Companion API
// @description Local companion for the TrackFit dashboard: phased checklist, session, routines and stats.
// @version     1
// @host        localhost:8090
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TrackFit companion...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Storage
	storage, closeStorage, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer closeStorage()

	// 4. TrackFit backend client
	backend := trackfit.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
		},
		Storage: storage,
		Backend: backend,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openStorage builds the configured key-value storage, wrapped in the read cache when enabled.
func openStorage(ctx context.Context, cfg config.StorageConfig, logger log.Logger) (kvstore.Storage, func(), error) {
	var (
		store   kvstore.Storage
		closeFn = func() {}
	)

	switch cfg.Driver {
	case model.StorageMemory:
		logger.Warn(ctx, "Using in-memory storage: the checklist is lost on restart")
		store = memory.New()
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof(ctx, "SQLite storage at %s", cfg.SQLitePath)
		store = db
		closeFn = func() {
			if err := db.Close(); err != nil {
				logger.Warnf(ctx, "Failed to close storage: %v", err)
			}
		}
	}

	if cfg.CacheSize > 0 {
		logger.Infof(ctx, "Storage cache enabled: size=%d ttl=%s", cfg.CacheSize, cfg.CacheTTL)
		store = cached.New(store, cfg.CacheSize, cfg.CacheTTL)
	}

	return store, closeFn, nil
}
