// Package worldkey builds the canonical map-key strings the Weathering
// generator hashes at every level. The exact characters are load-bearing:
// keys are fed to mathx.HashString, so even the punctuation participates
// in every downstream decision.
package worldkey

import "strconv"

// Map type names, as hashed by the original generator.
const (
	MapOfUniverse   = "MapOfUniverse"
	MapOfGalaxy     = "MapOfGalaxy"
	MapOfStarSystem = "MapOfStarSystem"
	MapOfPlanet     = "MapOfPlanet"
)

// UniverseRoot is the fixed key of the outermost map. It carries no
// coordinates: there is exactly one universe.
const UniverseRoot = "Weathering." + MapOfUniverse + "#"

// Galaxy returns the key for galaxy (gx, gy).
func Galaxy(gx, gy int) string {
	return build(MapOfGalaxy, gx, gy)
}

// StarSystem returns the key for system (sx, sy) inside galaxy (gx, gy).
func StarSystem(gx, gy, sx, sy int) string {
	return build(MapOfStarSystem, gx, gy, sx, sy)
}

// Planet returns the key for tile (px, py) inside a system.
func Planet(gx, gy, sx, sy, px, py int) string {
	return build(MapOfPlanet, gx, gy, sx, sy, px, py)
}

// PlanetSelfIndex returns the bare "#=gx,gy=sx,sy=px,py" suffix without
// the "Weathering.MapOfPlanet" prefix. The generator hashes this separate
// string for planet size and mineral density; collapsing it into the full
// planet key would change both attributes everywhere.
func PlanetSelfIndex(gx, gy, sx, sy, px, py int) string {
	return appendPairs(make([]byte, 0, 24), gx, gy, sx, sy, px, py)
}

func build(mapType string, coords ...int) string {
	b := make([]byte, 0, len("Weathering.")+len(mapType)+24)
	b = append(b, "Weathering."...)
	b = append(b, mapType...)
	return appendPairs(b, coords...)
}

func appendPairs(b []byte, coords ...int) string {
	b = append(b, '#')
	for i := 0; i < len(coords); i += 2 {
		b = append(b, '=')
		b = strconv.AppendInt(b, int64(coords[i]), 10)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(coords[i+1]), 10)
	}
	return string(b)
}
