package galaxy

import (
	"weathering-atlas/internal/mathx"
	"weathering-atlas/internal/worldkey"
)

// UniverseSize is the side length of the universe grid: galaxies live at
// (gx, gy) with both coordinates in [0, UniverseSize). An algorithm
// constant, not configuration.
const UniverseSize = 100

// Galaxy is a galaxy discovered at a universe coordinate. It has no
// identity beyond the coordinate; every attribute of its contents is a
// pure function of the coordinate path.
type Galaxy struct {
	GX int `json:"gx"`
	GY int `json:"gy"`
}

// Key returns the canonical map key for this galaxy.
func (g Galaxy) Key() string {
	return worldkey.Galaxy(g.GX, g.GY)
}

// Offset returns the signed reinterpretation of the galaxy's key hash,
// used as the tile-hash offset for the system grid inside it.
func (g Galaxy) Offset() int32 {
	return mathx.ToSigned32(mathx.HashString(g.Key()))
}
