package planet

import (
	"weathering-atlas/internal/mathx"
	"weathering-atlas/internal/starsystem"
	"weathering-atlas/internal/worldkey"
)

// Generator derives the planets of one star system. It caches the
// system's key-hash offset and star tiles so a full 32x32 sweep hashes
// the system key once, not per tile.
type Generator struct {
	sys          starsystem.System
	offset       int32
	primary      starsystem.Tile
	secondary    starsystem.Tile
	hasSecondary bool
}

func NewGenerator(sys starsystem.System) *Generator {
	g := &Generator{
		sys:    sys,
		offset: sys.Offset(),
	}
	g.primary, g.secondary, g.hasSecondary = sys.StarTiles()
	return g
}

// At derives the planet at tile (px, py), if one exists. Star tiles
// never hold a planet; everything else is decided by the hash chain.
func (g *Generator) At(px, py int) (Planet, bool) {
	tile := starsystem.Tile{X: px, Y: py}
	if tile == g.primary || (g.hasSecondary && tile == g.secondary) {
		return Planet{}, false
	}

	tileHash := mathx.HashTile(px, py, starsystem.TileGridSize, starsystem.TileGridSize, g.offset)
	typ, ok := runChain(mathx.Mix(tileHash))
	if !ok {
		return Planet{}, false
	}

	// Day length comes from a second mix of the tile hash, month length
	// from the full planet key, size and minerals from the bare
	// self-index key. Three distinct hash sources; none may be merged.
	again := mathx.Mix(mathx.Mix(tileHash))
	slowed := 1 + absInt(mathx.TruncMod(int(mathx.ToSigned32(again)), 7))

	planetHash := mathx.HashString(worldkey.Planet(g.sys.GX, g.sys.GY, g.sys.SX, g.sys.SY, px, py))
	selfHash := mathx.HashString(worldkey.PlanetSelfIndex(g.sys.GX, g.sys.GY, g.sys.SX, g.sys.SY, px, py))

	daysForAMonth := 2 + int(planetHash%15)

	return Planet{
		GX:             g.sys.GX,
		GY:             g.sys.GY,
		SX:             g.sys.SX,
		SY:             g.sys.SY,
		PX:             px,
		PY:             py,
		StarType:       g.sys.Type,
		Type:           typ,
		SecondsForADay: mathx.TruncDiv(60*8, 1+slowed),
		DaysForAMonth:  daysForAMonth,
		DaysForAYear:   MonthsForAYear * daysForAMonth,
		MonthForAYear:  MonthsForAYear,
		Size:           50 + int(selfHash%100),
		MineralDensity: 3 + int(mathx.Mix(mathx.Wrap32(int64(selfHash)+2641779086))%27),
	}, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
