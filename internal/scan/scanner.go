// Package scan enumerates the whole universe in parallel: every galaxy
// row is a unit of work, claimed through a shared atomic cursor so that
// uneven row density balances across workers automatically.
package scan

import (
	"context"
	"sync"
	"sync/atomic"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/starsystem"
)

// Progress is reported after every progressEvery-th completed row and on
// the final row.
const progressEvery = 5

// ProgressFunc receives scan progress. The entity counts are the
// reporting worker's cumulative local counters, not global totals;
// consumers must treat them as approximate.
type ProgressFunc func(rowsDone, totalRows, galaxies, systems, planets int)

// Config carries the tunables of a scan. Grid bounds are algorithm
// constants and deliberately not configurable.
type Config struct {
	// Workers is the number of parallel workers, clamped to >= 1.
	Workers int
}

// Scanner drives the existence predicates and generators across the
// bounded coordinate space.
type Scanner struct {
	cfg      Config
	progress ProgressFunc
}

func New(cfg Config, progress ProgressFunc) *Scanner {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Scanner{cfg: cfg, progress: progress}
}

// Run scans every coordinate and returns the merged, ordered catalog.
// The catalog content is a pure function of the coordinate space: any
// worker count yields the same entity sets, with galaxies and systems
// sorted and planet order left unspecified.
//
// Cancelling ctx makes workers stop claiming new rows; the partial
// catalog gathered so far is returned together with ctx's error.
func (s *Scanner) Run(ctx context.Context) (*catalog.Catalog, error) {
	cat := &catalog.Catalog{}

	var nextRow atomic.Int64
	var rowsDone atomic.Int64
	var mergeMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx, &nextRow, &rowsDone, &mergeMu, cat)
		}()
	}
	wg.Wait()

	cat.Sort()
	return cat, ctx.Err()
}

func (s *Scanner) worker(ctx context.Context, nextRow, rowsDone *atomic.Int64, mergeMu *sync.Mutex, cat *catalog.Catalog) {
	// Cumulative local counters feed the progress reports even though
	// buffers are merged and reset per row.
	var totalGalaxies, totalSystems, totalPlanets int

	for {
		if ctx.Err() != nil {
			return
		}
		gy := int(nextRow.Add(1)) - 1
		if gy >= galaxy.UniverseSize {
			return
		}

		rowGalaxies, rowSystems, rowPlanets := scanRow(gy)
		totalGalaxies += len(rowGalaxies)
		totalSystems += len(rowSystems)
		totalPlanets += len(rowPlanets)

		// One merge per completed row, not per entity.
		mergeMu.Lock()
		cat.Galaxies = append(cat.Galaxies, rowGalaxies...)
		cat.Systems = append(cat.Systems, rowSystems...)
		cat.Planets = append(cat.Planets, rowPlanets...)
		mergeMu.Unlock()

		done := int(rowsDone.Add(1))
		if s.progress != nil && (done%progressEvery == 0 || done == galaxy.UniverseSize) {
			s.progress(done, galaxy.UniverseSize, totalGalaxies, totalSystems, totalPlanets)
		}
	}
}

// scanRow materializes every entity in one galaxy row.
func scanRow(gy int) ([]galaxy.Galaxy, []starsystem.System, []planet.Planet) {
	var galaxies []galaxy.Galaxy
	var systems []starsystem.System
	var planets []planet.Planet

	for gx := 0; gx < galaxy.UniverseSize; gx++ {
		if !galaxy.Exists(gx, gy) {
			continue
		}
		g := galaxy.Galaxy{GX: gx, GY: gy}
		galaxies = append(galaxies, g)

		offset := g.Offset()
		for sy := 0; sy < starsystem.GridSize; sy++ {
			for sx := 0; sx < starsystem.GridSize; sx++ {
				if !starsystem.ExistsAt(offset, sx, sy) {
					continue
				}
				sys := starsystem.New(gx, gy, sx, sy)
				systems = append(systems, sys)

				gen := planet.NewGenerator(sys)
				for py := 0; py < starsystem.TileGridSize; py++ {
					for px := 0; px < starsystem.TileGridSize; px++ {
						if p, ok := gen.At(px, py); ok {
							planets = append(planets, p)
						}
					}
				}
			}
		}
	}
	return galaxies, systems, planets
}
