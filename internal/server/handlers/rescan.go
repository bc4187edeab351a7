package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/scan"
	"weathering-atlas/internal/shared/config"
	"weathering-atlas/internal/shared/database"
	"weathering-atlas/internal/shared/errors"
	"weathering-atlas/internal/shared/response"
	"weathering-atlas/internal/starsystem"
)

type RescanResponse struct {
	Galaxies   int    `json:"galaxies"`
	Systems    int    `json:"systems"`
	Planets    int    `json:"planets"`
	Generation uint64 `json:"generation"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

// RescanHandler regenerates the catalog, swaps it into the store,
// rewrites the catalog file, and persists to the database when one is
// configured. The generator is deterministic, so a rescan only matters
// after the binary itself changed; the endpoint exists for operational
// recovery, not for routine use.
type RescanHandler struct {
	store *catalog.Store
	db    *database.DB
}

func NewRescanHandler(store *catalog.Store, db *database.DB) *RescanHandler {
	return &RescanHandler{store: store, db: db}
}

func (h *RescanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "rescan")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	cfg := config.GlobalConfig.Scan
	logger.Info("Rescan started", "workers", cfg.Workers)
	start := time.Now()

	cat, err := scan.New(scan.Config{Workers: cfg.Workers}, nil).Run(r.Context())
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("scan failed", err))
		return
	}

	h.store.Replace(cat)

	if err := catalog.WriteFile(cfg.CatalogPath, cat); err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to write catalog file", err))
		return
	}

	if h.db != nil {
		// Persist with a background context: the store and file are
		// already updated, so an aborted request must not leave the
		// database half-written.
		if err := persistCatalog(context.WithoutCancel(r.Context()), h.db, cat); err != nil {
			response.Error(w, r, logger, errors.WrapInternal("failed to persist catalog", err))
			return
		}
	}

	elapsed := time.Since(start)
	galaxies, systems, planets := cat.Counts()
	logger.Info("Rescan completed",
		"galaxies", galaxies,
		"systems", systems,
		"planets", planets,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	response.Success(w, http.StatusOK, RescanResponse{
		Galaxies:   galaxies,
		Systems:    systems,
		Planets:    planets,
		Generation: h.store.Generation(),
		ElapsedMS:  elapsed.Milliseconds(),
	})
}

// persistCatalog replaces all stored catalog rows in one transaction.
func persistCatalog(ctx context.Context, db *database.DB, cat *catalog.Catalog) error {
	logger := slog.With("component", "rescan", "operation", "persist")

	tx, err := db.BeginTxContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err.Error() != "sql: transaction has already been committed or rolled back" {
			logger.Error("Failed to rollback transaction", "error", err)
		}
	}()

	if err := galaxy.NewRepository(db, logger).ReplaceAll(ctx, cat.Galaxies, tx); err != nil {
		return err
	}
	if err := starsystem.NewRepository(db, logger).ReplaceAll(ctx, cat.Systems, tx); err != nil {
		return err
	}
	if err := planet.NewRepository(db, logger).ReplaceAll(ctx, cat.Planets, tx); err != nil {
		return err
	}

	return tx.Commit()
}
