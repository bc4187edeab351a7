package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/middleware"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/server"
	"weathering-atlas/internal/shared/config"
	"weathering-atlas/internal/shared/database"
	"weathering-atlas/internal/shared/logger"
	"weathering-atlas/internal/shared/redis"
	"weathering-atlas/internal/starsystem"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Configuration error", "error", err)
		os.Exit(1)
	}
	logger.Init()

	cfg := config.GlobalConfig
	log := slog.With("component", "server")

	var db *database.DB
	var err error
	if cfg.Database.Enabled {
		db, err = database.Connect()
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close database", "error", err)
			}
		}()

		if err := db.RunMigrations(); err != nil {
			log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	cat, err := loadCatalog(cfg.Scan.CatalogPath, db)
	if err != nil {
		log.Error("Failed to load catalog", "path", cfg.Scan.CatalogPath, "error", err)
		os.Exit(1)
	}
	store := catalog.NewStore(cat)
	galaxies, systems, planets := store.Counts()
	log.Info("Catalog loaded",
		"path", cfg.Scan.CatalogPath,
		"galaxies", galaxies,
		"systems", systems,
		"planets", planets,
	)

	cache, err := redis.Connect()
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			log.Error("Failed to close Redis connection", "error", err)
		}
	}()

	mux := server.NewRoutes(store, db, cache, log).Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
	})
	handler := middleware.NewCORS().Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}
	log.Info("Server stopped")
}

// loadCatalog reads the catalog file; when the file is absent and a
// database holds a persisted scan, the catalog is rebuilt from it
// instead.
func loadCatalog(path string, db *database.DB) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err == nil {
		return cat, nil
	}
	if db == nil || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	slog.Info("Catalog file missing, rebuilding from database", "path", path)
	return catalogFromDatabase(context.Background(), db)
}

func catalogFromDatabase(ctx context.Context, db *database.DB) (*catalog.Catalog, error) {
	log := slog.With("component", "server", "operation", "load_from_db")

	galaxyRepo := galaxy.NewRepository(db, log)
	systemRepo := starsystem.NewRepository(db, log)
	planetRepo := planet.NewRepository(db, log)

	cat := &catalog.Catalog{}

	var err error
	cat.Galaxies, err = galaxyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range cat.Galaxies {
		systems, err := systemRepo.GetByGalaxy(ctx, g.GX, g.GY)
		if err != nil {
			return nil, err
		}
		cat.Systems = append(cat.Systems, systems...)
	}
	for _, s := range cat.Systems {
		planets, err := planetRepo.GetBySystem(ctx, s.GX, s.GY, s.SX, s.SY)
		if err != nil {
			return nil, err
		}
		cat.Planets = append(cat.Planets, planets...)
	}

	return cat, nil
}
