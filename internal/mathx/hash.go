package mathx

// The multiply constant and step order below are copied from the
// Weathering generator. Changing any step desyncs every existence test
// and attribute downstream, so this file is frozen: fix bugs elsewhere.

// Mix avalanches a 32-bit input into a well-distributed 32-bit output
// (finalizer-style: xor/shift/multiply, each step wrapping at 32 bits).
func Mix(a uint32) uint32 {
	a = (a ^ 61) ^ (a >> 16)
	a = a + (a << 3)
	a = a ^ (a >> 4)
	a = a * 0x27D4EB2D
	a = a ^ (a >> 15)
	return a
}

// HashString folds each byte of s into an accumulator seeded with 7,
// re-mixing after every byte. Map keys are ASCII, so bytes and character
// codes coincide.
func HashString(s string) uint32 {
	result := uint32(7)
	for i := 0; i < len(s); i++ {
		result = Mix(result + uint32(s[i]))
	}
	return result
}

// HashTile hashes a tile coordinate inside a width x height grid. The
// offset comes from the parent level's key hash, coupling every sibling
// tile to its parent. The operand arrangement (offset*width + height +
// i + j*width) is not a plain row-major index; it is preserved verbatim.
func HashTile(i, j, width, height int, offset int32) uint32 {
	raw := Wrap32(int64(offset)*int64(width) + int64(height) + int64(i) + int64(j)*int64(width))
	return Mix(raw)
}
