// Package mathx replicates the numeric behavior of the Weathering map
// generator: fixed-width 32-bit unsigned arithmetic, two's-complement
// signed reinterpretation, and division that truncates toward zero.
// Every derived value in the catalog flows through these functions, so
// they must stay stable across versions (no use of rand, no platform
// dependent widths).
package mathx

const mask32 = 0xFFFFFFFF

// Wrap32 reduces an integer to its low 32 bits, unsigned.
func Wrap32(v int64) uint32 {
	return uint32(v & mask32)
}

// ToSigned32 reinterprets a 32-bit unsigned value as two's-complement
// signed: values >= 2^31 become negative by subtracting 2^32.
func ToSigned32(u uint32) int32 {
	return int32(u)
}

// TruncDiv divides truncating toward zero. Go's integer division already
// truncates (unlike languages whose division floors), but the generator's
// contract names this operation explicitly, so callers go through here.
func TruncDiv(a, b int) int {
	return a / b
}

// TruncMod returns a - TruncDiv(a, b)*b. For negative operands this
// differs from floor-based modulo: TruncMod(-8, 7) is -1, not 6.
func TruncMod(a, b int) int {
	return a - TruncDiv(a, b)*b
}

// Abs32 returns the magnitude of a signed 32-bit value as an int.
// Widening first keeps Abs32(math.MinInt32) exact (2147483648), matching
// the reference runtime's arbitrary-width abs.
func Abs32(v int32) int {
	w := int64(v)
	if w < 0 {
		w = -w
	}
	return int(w)
}
