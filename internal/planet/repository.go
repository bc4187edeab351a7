package planet

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
	logger.Debug("Initializing planet repository")

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

// insertBatchSize keeps individual JSON payloads well under Postgres
// parameter limits; a full universe holds some eighty thousand planets.
const insertBatchSize = 10000

// ReplaceAll swaps the stored planet set for the given one, inserting in
// JSON batches.
func (r *Repository) ReplaceAll(ctx context.Context, planets []Planet, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "planet_repository",
		"operation", "replace_all",
		"count", len(planets),
	)
	logger.Debug("Replacing planet rows")

	if _, err := exec.ExecContext(ctx, `DELETE FROM planets`); err != nil {
		logger.Error("Failed to clear planets", "error", err)
		return fmt.Errorf("failed to clear planets: %w", err)
	}

	query := `
		INSERT INTO planets (
			gx, gy, sx, sy, px, py,
			star_type, planet_type,
			seconds_for_a_day, days_for_a_month, days_for_a_year, month_for_a_year,
			planet_size, mineral_density
		)
		SELECT
			(data->>'gx')::integer,
			(data->>'gy')::integer,
			(data->>'sx')::integer,
			(data->>'sy')::integer,
			(data->>'px')::integer,
			(data->>'py')::integer,
			(data->>'star_type')::integer,
			(data->>'planet_type')::integer,
			(data->>'seconds_for_a_day')::integer,
			(data->>'days_for_a_month')::integer,
			(data->>'days_for_a_year')::integer,
			(data->>'month_for_a_year')::integer,
			(data->>'planet_size')::integer,
			(data->>'mineral_density')::integer
		FROM json_array_elements($1::json) AS data`

	for start := 0; start < len(planets); start += insertBatchSize {
		end := min(start+insertBatchSize, len(planets))

		payload, err := json.Marshal(planets[start:end])
		if err != nil {
			logger.Error("Failed to marshal planets to JSON", "error", err)
			return fmt.Errorf("failed to marshal planets: %w", err)
		}

		if _, err := exec.ExecContext(ctx, query, string(payload)); err != nil {
			logger.Error("Failed to batch insert planets", "error", err, "batch_start", start)
			return fmt.Errorf("failed to batch insert planets: %w", err)
		}
	}

	logger.Info("Planet rows replaced", "count", len(planets))
	return nil
}

// GetBySystem returns the stored planets of one system ordered by
// (px, py).
func (r *Repository) GetBySystem(ctx context.Context, gx, gy, sx, sy int) ([]Planet, error) {
	logger := r.logger.With(
		"component", "planet_repository",
		"operation", "get_by_system",
		"gx", gx, "gy", gy, "sx", sx, "sy", sy,
	)
	logger.Debug("Getting planets by system")

	query := `
		SELECT gx, gy, sx, sy, px, py,
			star_type, planet_type,
			seconds_for_a_day, days_for_a_month, days_for_a_year, month_for_a_year,
			planet_size, mineral_density
		FROM planets
		WHERE gx = $1 AND gy = $2 AND sx = $3 AND sy = $4
		ORDER BY px, py
	`

	rows, err := r.db.QueryContext(ctx, query, gx, gy, sx, sy)
	if err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, fmt.Errorf("failed to query planets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var planets []Planet
	for rows.Next() {
		var p Planet
		err := rows.Scan(
			&p.GX, &p.GY, &p.SX, &p.SY, &p.PX, &p.PY,
			&p.StarType, &p.Type,
			&p.SecondsForADay, &p.DaysForAMonth, &p.DaysForAYear, &p.MonthForAYear,
			&p.Size, &p.MineralDensity,
		)
		if err != nil {
			logger.Error("Failed to scan planet row", "error", err)
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		planets = append(planets, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating planets: %w", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}
