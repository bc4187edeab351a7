package starsystem

import (
	"weathering-atlas/internal/mathx"
	"weathering-atlas/internal/worldkey"
)

// GridSize is the side length of a galaxy's system grid; TileGridSize is
// the side length of a system's tile grid. Algorithm constants.
const (
	GridSize     = 100
	TileGridSize = 32
)

// StarType is the closed set of star categories. Wire and storage use
// the reference integer codes 0-4.
type StarType int

const (
	StarBlue StarType = iota
	StarWhite
	StarYellow
	StarOrange
	StarRed

	numStarTypes = 5
)

var starTypeNames = [numStarTypes]string{"blue", "white", "yellow", "orange", "red"}

func (t StarType) Valid() bool {
	return t >= 0 && t < numStarTypes
}

func (t StarType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return starTypeNames[t]
}

// Tile is one coordinate cell inside a system grid. The secondary star
// tile can carry a Y far outside the grid (see StarTiles).
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// System is a star system discovered inside a galaxy.
type System struct {
	GX   int      `json:"gx"`
	GY   int      `json:"gy"`
	SX   int      `json:"sx"`
	SY   int      `json:"sy"`
	Type StarType `json:"star_type"`
}

// Key returns the canonical map key for this system.
func (s System) Key() string {
	return worldkey.StarSystem(s.GX, s.GY, s.SX, s.SY)
}

// Offset returns the signed reinterpretation of the system's key hash,
// used as the tile-hash offset for planet generation inside it.
func (s System) Offset() int32 {
	return mathx.ToSigned32(mathx.HashString(s.Key()))
}
