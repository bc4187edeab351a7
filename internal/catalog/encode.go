package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Section headers of the catalog file.
const (
	sectionGalaxies = "[GAL]"
	sectionSystems  = "[SYS]"
	sectionPlanets  = "[PLN]"
)

// Write serializes the catalog in the line-oriented text format:
// a [GAL] section of "gx,gy" lines, a [SYS] section of
// "gx,gy,sx,sy,star_type" lines, and a [PLN] section with the full
// fourteen-field planet records.
func Write(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriterSize(w, 1<<16)

	line := make([]byte, 0, 96)

	bw.WriteString(sectionGalaxies)
	bw.WriteByte('\n')
	for _, g := range c.Galaxies {
		line = appendFields(line[:0], g.GX, g.GY)
		bw.Write(line)
	}

	bw.WriteString(sectionSystems)
	bw.WriteByte('\n')
	for _, s := range c.Systems {
		line = appendFields(line[:0], s.GX, s.GY, s.SX, s.SY, int(s.Type))
		bw.Write(line)
	}

	bw.WriteString(sectionPlanets)
	bw.WriteByte('\n')
	for _, p := range c.Planets {
		line = appendFields(line[:0],
			p.GX, p.GY, p.SX, p.SY, p.PX, p.PY,
			int(p.StarType), int(p.Type),
			p.SecondsForADay, p.DaysForAMonth, p.DaysForAYear, p.MonthForAYear,
			p.Size, p.MineralDensity,
		)
		bw.Write(line)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// WriteFile serializes the catalog to path, truncating any prior file.
func WriteFile(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close catalog file: %w", err)
	}
	return nil
}

func appendFields(b []byte, fields ...int) []byte {
	for i, f := range fields {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(f), 10)
	}
	return append(b, '\n')
}
