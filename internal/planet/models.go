package planet

import "weathering-atlas/internal/starsystem"

// PlanetType is the closed set of planet categories. Wire and storage
// use the reference integer codes, which do not follow rarity order.
type PlanetType int

const (
	Barren           PlanetType = 0
	Arid             PlanetType = 1
	Ocean            PlanetType = 2
	Molten           PlanetType = 3
	Frozen           PlanetType = 4
	Continental      PlanetType = 5
	Gaia             PlanetType = 6
	SuperDimensional PlanetType = 7

	numPlanetTypes = 8
)

var planetTypeNames = [numPlanetTypes]string{
	"PlanetBarren",
	"PlanetArid",
	"PlanetOcean",
	"PlanetMolten",
	"PlanetFrozen",
	"PlanetContinental",
	"PlanetGaia",
	"PlanetSuperDimensional",
}

func (t PlanetType) Valid() bool {
	return t >= 0 && t < numPlanetTypes
}

// String returns the reference identifier for the type (these names are
// also the texture base names in the browser UI).
func (t PlanetType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return planetTypeNames[t]
}

// Terrestrial reports whether the type belongs to the six ordinary
// categories, excluding Gaia and SuperDimensional.
func (t PlanetType) Terrestrial() bool {
	return t.Valid() && t != Gaia && t != SuperDimensional
}

// MonthsForAYear is fixed for every planet.
const MonthsForAYear = 12

// Planet is a fully derived planet. Every field is a pure function of
// the coordinate path plus the enclosing star type.
type Planet struct {
	GX             int                 `json:"gx"`
	GY             int                 `json:"gy"`
	SX             int                 `json:"sx"`
	SY             int                 `json:"sy"`
	PX             int                 `json:"px"`
	PY             int                 `json:"py"`
	StarType       starsystem.StarType `json:"star_type"`
	Type           PlanetType          `json:"planet_type"`
	SecondsForADay int                 `json:"seconds_for_a_day"`
	DaysForAMonth  int                 `json:"days_for_a_month"`
	DaysForAYear   int                 `json:"days_for_a_year"`
	MonthForAYear  int                 `json:"month_for_a_year"`
	Size           int                 `json:"planet_size"`
	MineralDensity int                 `json:"mineral_density"`
}
