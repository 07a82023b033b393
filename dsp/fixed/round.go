package fixed

import (
	"fmt"
	"strings"
)

// RoundMode selects how a rational value is quantized to an integer.
type RoundMode int

const (
	// Truncate floors toward negative infinity.
	Truncate RoundMode = iota

	// RoundHalfEven rounds to nearest with ties to even.
	RoundHalfEven

	// RoundHalfAwayFromZero rounds to nearest with ties away from zero.
	RoundHalfAwayFromZero
)

var roundModeNames = [...]string{
	Truncate:              "truncate",
	RoundHalfEven:         "round-half-even",
	RoundHalfAwayFromZero: "round-half-away",
}

// Valid reports whether m is a known rounding mode.
func (m RoundMode) Valid() bool {
	return m >= Truncate && m <= RoundHalfAwayFromZero
}

// String returns the canonical name of m.
func (m RoundMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("RoundMode(%d)", int(m))
	}
	return roundModeNames[m]
}

// ParseRoundMode parses a rounding mode name. Besides the canonical names it
// accepts "floor" for Truncate and "even" for RoundHalfEven.
func ParseRoundMode(s string) (RoundMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate", "trunc", "floor":
		return Truncate, nil
	case "round-half-even", "even", "half-even":
		return RoundHalfEven, nil
	case "round-half-away", "half-away", "away":
		return RoundHalfAwayFromZero, nil
	default:
		return 0, fmt.Errorf("fixed: unknown rounding mode %q", s)
	}
}

// FloorDiv returns floor(num/den) and the remainder r with 0 <= r < den.
// den must be > 0.
func FloorDiv(num, den int64) (q, r int64) {
	q, r = num/den, num%den
	if r < 0 {
		q--
		r += den
	}
	return q, r
}

// QuantizeRatio quantizes the exact rational num/den to an integer.
// den must be > 0; it panics otherwise.
func QuantizeRatio(num, den int64, mode RoundMode) int64 {
	if den <= 0 {
		panic(fmt.Sprintf("fixed: non-positive denominator %d", den))
	}

	q, r := FloorDiv(num, den)
	if r == 0 || mode == Truncate {
		return q
	}

	// Compare the fractional part r/den against one half without forming 2*r.
	upper := den - r
	switch {
	case r < upper:
		return q
	case r > upper:
		return q + 1
	}

	switch mode {
	case RoundHalfEven:
		if q&1 != 0 {
			return q + 1
		}
		return q
	case RoundHalfAwayFromZero:
		// The tie lies strictly between q and q+1.
		if q >= 0 {
			return q + 1
		}
		return q
	default:
		panic(fmt.Sprintf("fixed: invalid rounding mode %d", int(mode)))
	}
}
