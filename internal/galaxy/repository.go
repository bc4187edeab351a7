package galaxy

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
	logger.Debug("Initializing galaxy repository")

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

// ReplaceAll swaps the stored galaxy set for the given one. A rescan
// always produces the complete set, so prior rows are discarded first.
func (r *Repository) ReplaceAll(ctx context.Context, galaxies []Galaxy, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "galaxy_repository",
		"operation", "replace_all",
		"count", len(galaxies),
	)
	logger.Debug("Replacing galaxy rows")

	if _, err := exec.ExecContext(ctx, `DELETE FROM galaxies`); err != nil {
		logger.Error("Failed to clear galaxies", "error", err)
		return fmt.Errorf("failed to clear galaxies: %w", err)
	}

	if len(galaxies) == 0 {
		return nil
	}

	payload, err := json.Marshal(galaxies)
	if err != nil {
		logger.Error("Failed to marshal galaxies to JSON", "error", err)
		return fmt.Errorf("failed to marshal galaxies: %w", err)
	}

	query := `
		INSERT INTO galaxies (gx, gy)
		SELECT
			(data->>'gx')::integer,
			(data->>'gy')::integer
		FROM json_array_elements($1::json) AS data`

	if _, err := exec.ExecContext(ctx, query, string(payload)); err != nil {
		logger.Error("Failed to batch insert galaxies", "error", err)
		return fmt.Errorf("failed to batch insert galaxies: %w", err)
	}

	logger.Info("Galaxy rows replaced", "count", len(galaxies))
	return nil
}

// GetAll returns every stored galaxy ordered by (gx, gy).
func (r *Repository) GetAll(ctx context.Context) ([]Galaxy, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_all")
	logger.Debug("Getting all galaxies")

	query := `
		SELECT gx, gy
		FROM galaxies
		ORDER BY gx, gy
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to query galaxies", "error", err)
		return nil, fmt.Errorf("failed to query galaxies: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var galaxies []Galaxy
	for rows.Next() {
		var g Galaxy
		if err := rows.Scan(&g.GX, &g.GY); err != nil {
			logger.Error("Failed to scan galaxy row", "error", err)
			return nil, fmt.Errorf("failed to scan galaxy: %w", err)
		}
		galaxies = append(galaxies, g)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating galaxies: %w", err)
	}

	logger.Debug("Galaxies retrieved", "count", len(galaxies))
	return galaxies, nil
}
