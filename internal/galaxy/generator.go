package galaxy

import (
	"weathering-atlas/internal/mathx"
	"weathering-atlas/internal/worldkey"
)

// One tile in 50 of the universe grid hosts a galaxy.
const density = 50

// universeOffset couples every galaxy tile hash to the universe root key.
var universeOffset = mathx.ToSigned32(mathx.HashString(worldkey.UniverseRoot))

// Exists reports whether a galaxy exists at (gx, gy).
func Exists(gx, gy int) bool {
	return mathx.HashTile(gx, gy, UniverseSize, UniverseSize, universeOffset)%density == 0
}
