package fixed

import (
	"errors"
	"fmt"
)

// ErrOverflow reports a quantized result that does not fit in int64.
var ErrOverflow = errors.New("fixed: result overflows int64")

// QuantizeScaled quantizes the exact value num * 2^shift / den.
// shift must be >= 0 and den must be > 0.
//
// The product num * 2^shift is never formed when it would overflow; the
// fractional bits of num/den are produced by long division instead, so the
// result is exact whenever it fits in int64.
func QuantizeScaled(num, den int64, shift int, mode RoundMode) (int64, error) {
	if den <= 0 {
		return 0, fmt.Errorf("fixed: non-positive denominator %d", den)
	}
	if shift < 0 {
		return 0, fmt.Errorf("fixed: negative shift %d", shift)
	}
	if !mode.Valid() {
		return 0, fmt.Errorf("fixed: invalid rounding mode %d", int(mode))
	}

	if scaled, ok := ShiftLeft(num, shift); ok {
		return QuantizeRatio(scaled, den, mode), nil
	}

	whole, r := FloorDiv(num, den)
	q, ok := ShiftLeft(whole, shift)
	if !ok {
		return 0, ErrOverflow
	}

	// r < den, so 2*r only overflows for den > 2^62.
	if den > 1<<62 {
		return 0, ErrOverflow
	}
	var frac int64
	for range shift {
		r <<= 1
		frac <<= 1
		if r >= den {
			frac |= 1
			r -= den
		}
	}
	// q has its low shift bits clear, so or-ing in frac cannot carry.
	q |= frac

	if r == 0 || mode == Truncate {
		return q, nil
	}

	var up bool
	upper := den - r
	switch {
	case r < upper:
		up = false
	case r > upper:
		up = true
	case mode == RoundHalfEven:
		up = q&1 != 0
	default:
		up = q >= 0
	}
	if up {
		if q == 1<<63-1 {
			return 0, ErrOverflow
		}
		q++
	}
	return q, nil
}
