package bjpeg

import "math/bits"

// Category returns the JPEG magnitude category S for a signed coefficient:
// the number of bits needed to represent |v|, or 0 for v == 0.
func Category(v int32) int {
	if v == 0 {
		return 0
	}
	av := v
	if av < 0 {
		av = -av
	}
	return bits.Len32(uint32(av))
}

// EncodeMagnitude maps a signed value to its S-bit magnitude group, per the
// JPEG bijection: positive values take their low S bits directly, negative
// values take the low S bits of (v - 1) (equivalently ~|v| in S bits).
func EncodeMagnitude(v int32, category int) uint32 {
	if category == 0 {
		return 0
	}
	mask := uint32(1)<<uint(category) - 1
	if v > 0 {
		return uint32(v) & mask
	}
	return uint32(v-1) & mask
}

// DecodeMagnitude is the inverse of EncodeMagnitude: given an S-bit group,
// recovers the signed value. A set MSB means the value is the group read as
// unsigned; a clear MSB means the value is negative, equal to the group minus
// (2^S - 1).
func DecodeMagnitude(value uint32, category int) int32 {
	if category == 0 {
		return 0
	}
	msb := (value >> uint(category-1)) & 1
	if msb == 1 {
		return int32(value)
	}
	return int32(value) - int32(uint32(1)<<uint(category)-1)
}
