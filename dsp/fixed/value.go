package fixed

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a fixed-point number Raw / 2^FracBits. FracBits may be negative,
// in which case Raw counts units of 2^-FracBits.
type Value struct {
	Raw      int64
	FracBits int
}

// Float64 returns the value as a float. It is exact while Raw fits in the
// float64 mantissa.
func (v Value) Float64() float64 {
	return math.Ldexp(float64(v.Raw), -v.FracBits)
}

// String formats the value as its shortest decimal representation.
func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
}

// Rescale requantizes v to fracBits fractional bits.
func (v Value) Rescale(fracBits int, mode RoundMode) (Value, error) {
	if !mode.Valid() {
		return Value{}, fmt.Errorf("fixed: invalid rounding mode %d", int(mode))
	}

	shift := fracBits - v.FracBits
	if shift >= 0 {
		raw, ok := ShiftLeft(v.Raw, shift)
		if !ok {
			return Value{}, fmt.Errorf("fixed: rescale of %v to %d fractional bits overflows", v, fracBits)
		}
		return Value{Raw: raw, FracBits: fracBits}, nil
	}

	den, ok := ShiftLeft(1, -shift)
	if !ok {
		return Value{}, fmt.Errorf("fixed: rescale of %v to %d fractional bits drops more than 62 bits", v, fracBits)
	}
	return Value{Raw: QuantizeRatio(v.Raw, den, mode), FracBits: fracBits}, nil
}
