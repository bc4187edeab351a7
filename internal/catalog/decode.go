package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/starsystem"
)

// Parse reads a catalog from its text form. Re-serializing the result
// reproduces the input byte for byte.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	section := ""
	lineNo := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<20)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}

		switch line {
		case sectionGalaxies, sectionSystems, sectionPlanets:
			section = line
			continue
		}

		fields, err := splitFields(line)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", lineNo, err)
		}

		switch section {
		case sectionGalaxies:
			if len(fields) != 2 {
				return nil, fmt.Errorf("catalog line %d: galaxy record has %d fields, want 2", lineNo, len(fields))
			}
			c.Galaxies = append(c.Galaxies, galaxy.Galaxy{GX: fields[0], GY: fields[1]})
		case sectionSystems:
			if len(fields) != 5 {
				return nil, fmt.Errorf("catalog line %d: system record has %d fields, want 5", lineNo, len(fields))
			}
			c.Systems = append(c.Systems, starsystem.System{
				GX: fields[0], GY: fields[1], SX: fields[2], SY: fields[3],
				Type: starsystem.StarType(fields[4]),
			})
		case sectionPlanets:
			if len(fields) != 14 {
				return nil, fmt.Errorf("catalog line %d: planet record has %d fields, want 14", lineNo, len(fields))
			}
			c.Planets = append(c.Planets, planet.Planet{
				GX: fields[0], GY: fields[1], SX: fields[2], SY: fields[3],
				PX: fields[4], PY: fields[5],
				StarType:       starsystem.StarType(fields[6]),
				Type:           planet.PlanetType(fields[7]),
				SecondsForADay: fields[8],
				DaysForAMonth:  fields[9],
				DaysForAYear:   fields[10],
				MonthForAYear:  fields[11],
				Size:           fields[12],
				MineralDensity: fields[13],
			})
		default:
			return nil, fmt.Errorf("catalog line %d: record outside any section", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return c, nil
}

// Load parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func splitFields(line string) ([]int, error) {
	parts := strings.Split(line, ",")
	fields := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad field %q: %w", p, err)
		}
		fields[i] = v
	}
	return fields, nil
}
