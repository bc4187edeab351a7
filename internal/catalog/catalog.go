// Package catalog holds the materialized result of a universe scan and
// its durable text form. The on-disk format is the one the browser UI
// and the reference loader agree on; serialization must round-trip
// byte-identically.
package catalog

import (
	"sort"

	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/starsystem"
)

// Catalog is the complete set of entities discovered by one scan.
type Catalog struct {
	Galaxies []galaxy.Galaxy
	Systems  []starsystem.System
	Planets  []planet.Planet
}

// Sort applies the output ordering: galaxies by (gx, gy), systems by
// (gx, gy, sx, sy). Planet order is deliberately left as produced --
// concurrent row completion makes it non-deterministic, and only the
// set of planets is part of the contract.
func (c *Catalog) Sort() {
	sort.Slice(c.Galaxies, func(i, j int) bool {
		a, b := c.Galaxies[i], c.Galaxies[j]
		if a.GX != b.GX {
			return a.GX < b.GX
		}
		return a.GY < b.GY
	})
	sort.Slice(c.Systems, func(i, j int) bool {
		a, b := c.Systems[i], c.Systems[j]
		if a.GX != b.GX {
			return a.GX < b.GX
		}
		if a.GY != b.GY {
			return a.GY < b.GY
		}
		if a.SX != b.SX {
			return a.SX < b.SX
		}
		return a.SY < b.SY
	})
}

// Counts returns the number of galaxies, systems, and planets.
func (c *Catalog) Counts() (galaxies, systems, planets int) {
	return len(c.Galaxies), len(c.Systems), len(c.Planets)
}
