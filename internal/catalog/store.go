package catalog

import (
	"sync"
	"time"

	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/starsystem"
)

// Store is the in-memory catalog served by the API. It indexes systems
// by galaxy and planets by system, and supports atomic replacement when
// a rescan completes. The generation counter changes on every
// replacement so response caches can key on it.
type Store struct {
	mu              sync.RWMutex
	cat             *Catalog
	galaxySet       map[[2]int]struct{}
	systemsByGalaxy map[[2]int][]starsystem.System
	planetsBySystem map[[4]int][]planet.Planet
	generation      uint64
	loadedAt        time.Time
}

func NewStore(cat *Catalog) *Store {
	s := &Store{}
	s.Replace(cat)
	return s
}

// Replace swaps in a freshly scanned catalog.
func (s *Store) Replace(cat *Catalog) {
	galaxies := make(map[[2]int]struct{}, len(cat.Galaxies))
	for _, g := range cat.Galaxies {
		galaxies[[2]int{g.GX, g.GY}] = struct{}{}
	}
	systems := make(map[[2]int][]starsystem.System, len(cat.Galaxies))
	for _, sys := range cat.Systems {
		k := [2]int{sys.GX, sys.GY}
		systems[k] = append(systems[k], sys)
	}
	planets := make(map[[4]int][]planet.Planet, len(cat.Systems))
	for _, p := range cat.Planets {
		k := [4]int{p.GX, p.GY, p.SX, p.SY}
		planets[k] = append(planets[k], p)
	}

	s.mu.Lock()
	s.cat = cat
	s.galaxySet = galaxies
	s.systemsByGalaxy = systems
	s.planetsBySystem = planets
	s.generation++
	s.loadedAt = time.Now()
	s.mu.Unlock()
}

// Galaxies returns all galaxies in output order.
func (s *Store) Galaxies() []galaxy.Galaxy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat.Galaxies
}

// SystemsIn returns the systems of one galaxy.
func (s *Store) SystemsIn(gx, gy int) []starsystem.System {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.systemsByGalaxy[[2]int{gx, gy}]
}

// PlanetsIn returns the planets of one system.
func (s *Store) PlanetsIn(gx, gy, sx, sy int) []planet.Planet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planetsBySystem[[4]int{gx, gy, sx, sy}]
}

// HasGalaxy reports whether the catalog contains galaxy (gx, gy).
func (s *Store) HasGalaxy(gx, gy int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.galaxySet[[2]int{gx, gy}]
	return ok
}

// Counts returns entity totals.
func (s *Store) Counts() (galaxies, systems, planets int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat.Counts()
}

// Generation returns the replacement counter.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// LoadedAt returns when the current catalog was installed.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
