package mathx

import "testing"

// Expected values in this file were fixed once from a reference run of
// the original generator and must never be recomputed another way.

func TestMixReferenceValues(t *testing.T) {
	cases := []struct {
		in, want uint32
	}{
		{0, 3232319850},
		{1, 663891101},
		{61, 0}, // 61^61 zeroes the accumulator in step one
		{0x80000000, 2903943700},
		{0xFFFFFFFF, 1895078355},
	}
	for _, c := range cases {
		if got := Mix(c.in); got != c.want {
			t.Fatalf("Mix(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHashStringReferenceValues(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 7},
		{"a", 1451223060},
		{"Weathering.MapOfUniverse#", 999406192},
		{"Weathering.MapOfGalaxy#=1,4", 1604136505},
		{"Weathering.MapOfStarSystem#=1,4=14,93", 3205616175},
	}
	for _, c := range cases {
		if got := HashString(c.in); got != c.want {
			t.Fatalf("HashString(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHashTileOffsetCouplesSiblings(t *testing.T) {
	a := HashTile(3, 7, 100, 100, 12345)
	b := HashTile(3, 7, 100, 100, 12346)
	if a == b {
		t.Fatalf("different offsets produced identical tile hashes (%d)", a)
	}
	if a != HashTile(3, 7, 100, 100, 12345) {
		t.Fatalf("HashTile not deterministic")
	}
}

func TestHashTileNegativeOffset(t *testing.T) {
	// offset*width underflows 32 bits for negative offsets; the wrap must
	// behave as two's complement, not saturate or widen.
	got := HashTile(0, 0, 32, 32, -1)
	want := Mix(Wrap32(int64(-1)*32 + 32))
	if got != want {
		t.Fatalf("HashTile(0,0,32,32,-1) = %d, want %d", got, want)
	}
}
