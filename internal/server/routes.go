package server

import (
	"log/slog"
	"net/http"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/middleware"
	serverHandlers "weathering-atlas/internal/server/handlers"
	"weathering-atlas/internal/shared/config"
	"weathering-atlas/internal/shared/database"
	"weathering-atlas/internal/shared/redis"
)

type Routes struct {
	store  *catalog.Store
	db     *database.DB
	cache  *redis.Client
	logger *slog.Logger
}

func NewRoutes(store *catalog.Store, db *database.DB, cache *redis.Client, logger *slog.Logger) *Routes {
	return &Routes{
		store:  store,
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	responseCache := serverHandlers.NewResponseCache(r.cache, config.GlobalConfig.Redis.CacheTTL)

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	statusHandler := serverHandlers.NewStatusHandler(r.store)
	galaxiesHandler := serverHandlers.NewGalaxiesHandler(r.store, responseCache)
	systemsHandler := serverHandlers.NewSystemsHandler(r.store, responseCache)
	planetsHandler := serverHandlers.NewPlanetsHandler(r.store, responseCache)
	rescanHandler := serverHandlers.NewRescanHandler(r.store, r.db)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.Handle("GET /api/status", statusHandler)
	mux.Handle("GET /api/galaxies", galaxiesHandler)
	mux.Handle("GET /api/galaxies/{gx}/{gy}/systems", systemsHandler)
	mux.Handle("GET /api/galaxies/{gx}/{gy}/systems/{sx}/{sy}/planets", planetsHandler)

	// Admin-only endpoints (authenticated + admin claim)
	adminEndpoints := []string{}
	if config.GlobalConfig.Auth.JWTSecret != "" {
		mux.Handle("/api/rescan", middleware.RequireAdmin(rescanHandler))
		adminEndpoints = append(adminEndpoints, "/api/rescan")
	} else {
		logger.Warn("JWT_SECRET not configured, rescan endpoint disabled")
	}

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{
			"/api/server/health",
			"/api/status",
			"/api/galaxies",
			"/api/galaxies/{gx}/{gy}/systems",
			"/api/galaxies/{gx}/{gy}/systems/{sx}/{sy}/planets",
		},
		"admin_endpoints", adminEndpoints,
	)

	return mux
}
