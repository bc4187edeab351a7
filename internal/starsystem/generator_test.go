package starsystem

import "testing"

// Reference fixtures minted once from the original generator.

func TestExistsReferenceCoordinates(t *testing.T) {
	if !Exists(1, 4, 14, 93) {
		t.Fatalf("system (1,4)/(14,93) must exist")
	}
	if !Exists(52, 0, 36, 0) {
		t.Fatalf("system (52,0)/(36,0) must exist")
	}
}

func TestExistsAtMatchesExists(t *testing.T) {
	// The cached-offset fast path must agree with the plain predicate.
	for sy := 0; sy < GridSize; sy += 7 {
		for sx := 0; sx < GridSize; sx += 7 {
			if Exists(1, 4, sx, sy) != ExistsAt(1604136505, sx, sy) {
				t.Fatalf("ExistsAt diverged from Exists at (%d,%d)", sx, sy)
			}
		}
	}
}

func TestNewDerivesStarType(t *testing.T) {
	s := New(1, 4, 14, 93)
	if s.Type != StarBlue {
		t.Fatalf("system (1,4)/(14,93) star type = %d, want 0", s.Type)
	}
	if !s.Type.Valid() {
		t.Fatalf("derived star type out of range")
	}
	if s2 := New(52, 0, 36, 0); s2.Type != StarOrange {
		t.Fatalf("system (52,0)/(36,0) star type = %d, want 3", s2.Type)
	}
}

func TestStarTilesReferenceValues(t *testing.T) {
	s := New(1, 4, 14, 93)
	primary, secondary, hasSecondary := s.StarTiles()
	if primary != (Tile{X: 17, Y: 14}) {
		t.Fatalf("primary star tile %+v, want (17,14)", primary)
	}
	if !hasSecondary {
		t.Fatalf("system (1,4)/(14,93) must have a secondary star")
	}
	// The unreduced secondary candidate lands far outside the grid; the
	// observed pair is pinned verbatim.
	if secondary != (Tile{X: 16, Y: 14235690}) {
		t.Fatalf("secondary star tile %+v, want (16,14235690)", secondary)
	}
}

func TestStarTypeStrings(t *testing.T) {
	want := map[StarType]string{
		StarBlue:   "blue",
		StarWhite:  "white",
		StarYellow: "yellow",
		StarOrange: "orange",
		StarRed:    "red",
	}
	for typ, name := range want {
		if typ.String() != name {
			t.Fatalf("StarType(%d).String() = %q, want %q", typ, typ.String(), name)
		}
	}
	if StarType(5).Valid() || StarType(-1).Valid() {
		t.Fatalf("out-of-range star types must be invalid")
	}
}
