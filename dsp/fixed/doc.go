// Package fixed provides exact fixed-point quantization helpers.
//
// Every operation works on integers only. A rational value num/den is
// quantized to an integer by one of the [RoundMode] variants without ever
// passing through floating point, so the result is bit-exact with a hardware
// rounding unit regardless of magnitude.
//
// # Rounding modes
//
//   - [Truncate]: floor toward negative infinity, the behaviour of dropping
//     the low bits of a two's complement number.
//   - [RoundHalfEven]: nearest integer, ties to the even neighbour.
//   - [RoundHalfAwayFromZero]: nearest integer, ties away from zero.
//
// A quantized result together with its number of fractional bits is a
// [Value].
package fixed
