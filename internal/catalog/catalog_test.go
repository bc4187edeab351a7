package catalog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/starsystem"
)

func sampleCatalog() *Catalog {
	return &Catalog{
		Galaxies: []galaxy.Galaxy{{GX: 1, GY: 4}, {GX: 52, GY: 0}},
		Systems: []starsystem.System{
			{GX: 1, GY: 4, SX: 14, SY: 93, Type: starsystem.StarBlue},
			{GX: 52, GY: 0, SX: 36, SY: 0, Type: starsystem.StarOrange},
		},
		Planets: []planet.Planet{
			{
				GX: 1, GY: 4, SX: 14, SY: 93, PX: 24, PY: 31,
				StarType: starsystem.StarBlue, Type: planet.Continental,
				SecondsForADay: 160, DaysForAMonth: 5, DaysForAYear: 60,
				MonthForAYear: 12, Size: 142, MineralDensity: 5,
			},
		},
	}
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleCatalog()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "[GAL]\n" +
		"1,4\n" +
		"52,0\n" +
		"[SYS]\n" +
		"1,4,14,93,0\n" +
		"52,0,36,0,3\n" +
		"[PLN]\n" +
		"1,4,14,93,24,31,0,5,160,5,60,12,142,5\n"
	if buf.String() != want {
		t.Fatalf("serialized form:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRoundTripByteIdentical(t *testing.T) {
	var first bytes.Buffer
	if err := Write(&first, sampleCatalog()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	parsed, err := Parse(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var second bytes.Buffer
	if err := Write(&second, parsed); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("re-serialization not byte-identical:\n%q\nvs\n%q", first.String(), second.String())
	}
}

func TestParseRecoversEntities(t *testing.T) {
	var buf bytes.Buffer
	src := sampleCatalog()
	if err := Write(&buf, src); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, src) {
		t.Fatalf("parsed catalog differs:\n got %+v\nwant %+v", parsed, src)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"record before section", "1,4\n"},
		{"short galaxy record", "[GAL]\n1\n"},
		{"non-numeric field", "[SYS]\n1,4,x,93,0\n"},
		{"short planet record", "[PLN]\n1,4,14,93,24,31\n"},
	}
	for _, c := range cases {
		if _, err := Parse(strings.NewReader(c.input)); err == nil {
			t.Fatalf("%s: expected parse error", c.name)
		}
	}
}

func TestSortOrdersGalaxiesAndSystems(t *testing.T) {
	c := &Catalog{
		Galaxies: []galaxy.Galaxy{{GX: 52, GY: 0}, {GX: 1, GY: 4}, {GX: 1, GY: 2}},
		Systems: []starsystem.System{
			{GX: 1, GY: 4, SX: 14, SY: 93},
			{GX: 1, GY: 4, SX: 14, SY: 2},
			{GX: 1, GY: 2, SX: 99, SY: 99},
		},
	}
	c.Sort()
	if c.Galaxies[0] != (galaxy.Galaxy{GX: 1, GY: 2}) || c.Galaxies[2] != (galaxy.Galaxy{GX: 52, GY: 0}) {
		t.Fatalf("galaxies not ordered by (gx,gy): %+v", c.Galaxies)
	}
	if c.Systems[0].GY != 2 || c.Systems[1].SY != 2 {
		t.Fatalf("systems not ordered by (gx,gy,sx,sy): %+v", c.Systems)
	}
}

func TestStoreIndexesAndGeneration(t *testing.T) {
	store := NewStore(sampleCatalog())

	if !store.HasGalaxy(1, 4) || store.HasGalaxy(0, 0) {
		t.Fatalf("galaxy membership index wrong")
	}
	if got := store.SystemsIn(1, 4); len(got) != 1 || got[0].SX != 14 {
		t.Fatalf("systems index wrong: %+v", got)
	}
	if got := store.PlanetsIn(1, 4, 14, 93); len(got) != 1 || got[0].PX != 24 {
		t.Fatalf("planets index wrong: %+v", got)
	}
	g, s, p := store.Counts()
	if g != 2 || s != 2 || p != 1 {
		t.Fatalf("counts = (%d,%d,%d), want (2,2,1)", g, s, p)
	}

	gen := store.Generation()
	store.Replace(&Catalog{})
	if store.Generation() != gen+1 {
		t.Fatalf("generation did not advance on replace")
	}
	if g, s, p := store.Counts(); g != 0 || s != 0 || p != 0 {
		t.Fatalf("replace did not swap catalog")
	}
}
