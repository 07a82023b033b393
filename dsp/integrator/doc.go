// Package integrator models a hardware moving-window integrator.
//
// Two models are provided:
//
//   - [FloatIntegrate]: a floating-point sliding mean computed as a full
//     convolution with a uniform kernel. It is a quick sanity check and is
//     not bit-matched to hardware.
//   - [FixedPointIntegrate] and [FixedPoint]: the golden model. A shift
//     register of the last N samples feeds an integer accumulator, and every
//     output is the exact rational acc/N*2^extraBits quantized by the
//     configured [fixed.RoundMode]. Outputs match a fixed-point FPGA
//     implementation bit for bit, so simulator results can be compared with
//     zero tolerance.
//
// # Streaming model
//
// For every input sample, in arrival order:
//
//  1. the sample enters the window and the oldest sample (initially zero)
//     leaves it;
//  2. acc += sample - evicted;
//  3. the exact value acc/N * 2^extraBits is formed as a ratio of integers;
//  4. it is quantized to an integer q (floor, or nearest per rounding mode);
//  5. the output is q with extraBits fractional bits.
//
// Scaling is applied before quantization. Doing it the other way around
// changes the least significant bits.
//
// # Harness parameters
//
// [Params] accepts the generic set a hardware test bench exposes
// (input/output widths, window length, signedness, rounding, protection
// bits) and derives the model configuration from it. [Params.Golden]
// returns the integers the hardware emits.
package integrator
