package starsystem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"weathering-atlas/internal/shared/database"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing star system repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// ReplaceAll swaps the stored system set for the given one.
func (r *Repository) ReplaceAll(ctx context.Context, systems []System, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "starsystem_repository",
		"operation", "replace_all",
		"count", len(systems),
	)
	logger.Debug("Replacing star system rows")

	if _, err := exec.ExecContext(ctx, `DELETE FROM star_systems`); err != nil {
		logger.Error("Failed to clear star systems", "error", err)
		return fmt.Errorf("failed to clear star systems: %w", err)
	}

	if len(systems) == 0 {
		return nil
	}

	payload, err := json.Marshal(systems)
	if err != nil {
		logger.Error("Failed to marshal star systems to JSON", "error", err)
		return fmt.Errorf("failed to marshal star systems: %w", err)
	}

	query := `
		INSERT INTO star_systems (gx, gy, sx, sy, star_type)
		SELECT
			(data->>'gx')::integer,
			(data->>'gy')::integer,
			(data->>'sx')::integer,
			(data->>'sy')::integer,
			(data->>'star_type')::integer
		FROM json_array_elements($1::json) AS data`

	if _, err := exec.ExecContext(ctx, query, string(payload)); err != nil {
		logger.Error("Failed to batch insert star systems", "error", err)
		return fmt.Errorf("failed to batch insert star systems: %w", err)
	}

	logger.Info("Star system rows replaced", "count", len(systems))
	return nil
}

// GetByGalaxy returns the stored systems of one galaxy ordered by
// (sx, sy).
func (r *Repository) GetByGalaxy(ctx context.Context, gx, gy int) ([]System, error) {
	logger := r.logger.With(
		"component", "starsystem_repository",
		"operation", "get_by_galaxy",
		"gx", gx,
		"gy", gy,
	)
	logger.Debug("Getting star systems by galaxy")

	query := `
		SELECT gx, gy, sx, sy, star_type
		FROM star_systems
		WHERE gx = $1 AND gy = $2
		ORDER BY sx, sy
	`

	rows, err := r.db.QueryContext(ctx, query, gx, gy)
	if err != nil {
		logger.Error("Failed to query star systems", "error", err)
		return nil, fmt.Errorf("failed to query star systems: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var systems []System
	for rows.Next() {
		var s System
		if err := rows.Scan(&s.GX, &s.GY, &s.SX, &s.SY, &s.Type); err != nil {
			logger.Error("Failed to scan star system row", "error", err)
			return nil, fmt.Errorf("failed to scan star system: %w", err)
		}
		systems = append(systems, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating star systems: %w", err)
	}

	logger.Debug("Star systems retrieved", "count", len(systems))
	return systems, nil
}
