package fixed

import "math"

// ShiftLeft returns x * 2^n and whether the result fits in int64.
// n must be >= 0.
func ShiftLeft(x int64, n int) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	if x == 0 {
		return 0, true
	}
	if n >= 63 {
		return 0, false
	}
	limit := int64(math.MaxInt64) >> n
	if x > limit || x < -limit {
		return 0, false
	}
	return x << n, true
}

// Headroom returns the number of bits needed to hold any value of magnitude
// up to mag, not counting the sign bit.
func Headroom(mag int64) int {
	bits := 0
	for mag > 0 {
		bits++
		mag >>= 1
	}
	return bits
}
