package starsystem

import (
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/mathx"
)

// One tile in 200 of a galaxy's system grid hosts a star system.
const density = 200

// ExistsAt reports whether a system exists at (sx, sy) given the parent
// galaxy's offset. Callers scanning a whole galaxy should derive the
// offset once instead of re-hashing the galaxy key per tile.
func ExistsAt(galaxyOffset int32, sx, sy int) bool {
	return mathx.HashTile(sx, sy, GridSize, GridSize, galaxyOffset)%density == 0
}

// Exists reports whether a system exists at (sx, sy) in galaxy (gx, gy).
func Exists(gx, gy, sx, sy int) bool {
	return ExistsAt(galaxy.Galaxy{GX: gx, GY: gy}.Offset(), sx, sy)
}

// New derives the system at the given coordinates, including its star
// type (key hash mod 5).
func New(gx, gy, sx, sy int) System {
	s := System{GX: gx, GY: gy, SX: sx, SY: sy}
	s.Type = StarType(mathx.HashString(s.Key()) % numStarTypes)
	return s
}

// StarTiles returns the system's star tile positions: always a primary,
// and a secondary when present.
//
// The primary index is |signed key hash| reduced mod 1024 before mapping
// onto the 32x32 grid. The secondary candidate is |signed mix(key hash)|,
// compared against the primary index while still UNREDUCED, and mapped
// onto the grid without reduction, so its Y is almost always far outside
// [0,32). The original generator does exactly this; reducing the
// candidate first would change which tiles lose their planets, so the
// asymmetry is preserved.
func (s System) StarTiles() (primary Tile, secondary Tile, hasSecondary bool) {
	h := mathx.HashString(s.Key())
	starPos := mathx.Abs32(mathx.ToSigned32(h)) % (TileGridSize * TileGridSize)
	primary = Tile{X: starPos % TileGridSize, Y: starPos / TileGridSize}

	secondPos := mathx.Abs32(mathx.ToSigned32(mathx.Mix(h)))
	if secondPos == starPos {
		return primary, Tile{}, false
	}
	secondary = Tile{X: secondPos % TileGridSize, Y: secondPos / TileGridSize}
	return primary, secondary, true
}
