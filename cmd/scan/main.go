package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/scan"
	"weathering-atlas/internal/shared/config"
	"weathering-atlas/internal/shared/database"
	"weathering-atlas/internal/shared/logger"
	"weathering-atlas/internal/starsystem"
)

func main() {
	os.Exit(run())
}

func run() int {
	outputPath, workers, ok := parseArgs(os.Args)
	if !ok {
		usage()
		return 2
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}
	logger.Init()

	log := slog.With("component", "scan_cli")
	log.Info("Scan starting", "output", outputPath, "workers", workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The progress protocol owns stdout; everything else logs to stderr.
	reporter := scan.NewProtocolReporter(os.Stdout)
	progress := func(rowsDone, totalRows, galaxies, systems, planets int) {
		reporter.Progress(rowsDone, totalRows, galaxies, systems, planets)
	}

	start := time.Now()
	cat, err := scan.New(scan.Config{Workers: workers}, progress).Run(ctx)
	if err != nil {
		log.Error("Scan aborted", "error", err)
		return 1
	}

	if err := catalog.WriteFile(outputPath, cat); err != nil {
		log.Error("Failed to write catalog file", "path", outputPath, "error", err)
		return 1
	}

	if config.GlobalConfig.Database.Enabled {
		if err := persist(ctx, cat); err != nil {
			log.Error("Failed to persist catalog", "error", err)
			return 1
		}
	}

	elapsed := time.Since(start)
	galaxies, systems, planets := cat.Counts()
	reporter.Done(galaxies, systems, planets, elapsed)

	log.Info("Scan completed",
		"galaxies", galaxies,
		"systems", systems,
		"planets", planets,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return 0
}

// persist replaces all stored catalog rows in one transaction.
func persist(ctx context.Context, cat *catalog.Catalog) error {
	log := slog.With("component", "scan_cli", "operation", "persist")

	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	tx, err := db.BeginTxContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err.Error() != "sql: transaction has already been committed or rolled back" {
			log.Error("Failed to rollback transaction", "error", err)
		}
	}()

	if err := galaxy.NewRepository(db, log).ReplaceAll(ctx, cat.Galaxies, tx); err != nil {
		return err
	}
	if err := starsystem.NewRepository(db, log).ReplaceAll(ctx, cat.Systems, tx); err != nil {
		return err
	}
	if err := planet.NewRepository(db, log).ReplaceAll(ctx, cat.Planets, tx); err != nil {
		return err
	}

	return tx.Commit()
}

// parseArgs reads the two positional arguments. Extra trailing
// arguments are ignored; a missing or non-numeric worker count is a
// usage error, and counts below one are clamped.
func parseArgs(args []string) (outputPath string, workers int, ok bool) {
	if len(args) < 3 {
		return "", 0, false
	}
	workers, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid worker count %q\n", args[2])
		return "", 0, false
	}
	if workers < 1 {
		workers = 1
	}
	return args[1], workers, true
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <output_file> <worker_count>\n", os.Args[0])
}
