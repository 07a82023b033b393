package integrator

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-movint/dsp/core"
	"github.com/cwbudde/algo-movint/dsp/delay"
	"github.com/cwbudde/algo-movint/dsp/fixed"
)

// FixedPoint is the streaming golden model of the hardware integrator.
//
// The zero value is not usable; construct with [NewFixedPoint]. A FixedPoint
// is not safe for concurrent use: its output depends on every sample that
// came before, in order.
type FixedPoint struct {
	window      *delay.Line[int64]
	acc         int64
	integration int

	roundMode fixed.RoundMode
	extraBits int
	format    *core.SampleFormat

	// scaled value = acc << numShift / den
	numShift int
	den      int64
}

// NewFixedPoint returns an integrator averaging over integration samples.
// The window starts filled with zeros.
func NewFixedPoint(integration int, opts ...Option) (*FixedPoint, error) {
	if integration <= 0 {
		return nil, core.InvalidParameterf("integrator: integration must be >= 1: %d", integration)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	numShift, den, err := scaling(integration, cfg.extraBits)
	if err != nil {
		return nil, err
	}

	if cfg.format != nil {
		// The accumulator never exceeds integration full-scale samples.
		if int64(integration) > math.MaxInt64/cfg.format.MaxMagnitude() {
			return nil, core.InvalidParameterf("integrator: accumulator for %d %s samples exceeds 64 bits", integration, cfg.format)
		}
	}

	window, err := delay.New[int64](integration)
	if err != nil {
		return nil, fmt.Errorf("integrator: %w", err)
	}

	return &FixedPoint{
		window:      window,
		integration: integration,
		roundMode:   cfg.roundMode,
		extraBits:   cfg.extraBits,
		format:      cfg.format,
		numShift:    numShift,
		den:         den,
	}, nil
}

// Process feeds one sample and returns the quantized moving mean.
//
// If the sample is outside the configured sample format, or the result
// cannot be represented, an error is returned and the state is unchanged.
func (f *FixedPoint) Process(sample int64) (fixed.Value, error) {
	if f.format != nil {
		if err := f.format.Check(sample); err != nil {
			return fixed.Value{}, fmt.Errorf("integrator: %w", err)
		}
	}

	evicted := f.window.Read(f.integration)
	acc, ok := slide(f.acc, sample, evicted)
	if !ok {
		return fixed.Value{}, core.OutOfRangef("integrator: window sum %d + %d - %d exceeds 64 bits", f.acc, sample, evicted)
	}

	q, err := fixed.QuantizeScaled(acc, f.den, f.numShift, f.roundMode)
	if err != nil {
		if errors.Is(err, fixed.ErrOverflow) {
			return fixed.Value{}, core.OutOfRangef("integrator: scaled mean of %d/%d exceeds 64 bits", acc, f.integration)
		}
		return fixed.Value{}, fmt.Errorf("integrator: %w", err)
	}

	f.window.Shift(sample)
	f.acc = acc

	return fixed.Value{Raw: q, FracBits: f.extraBits}, nil
}

// ProcessBlock feeds samples in order and writes one output per sample to
// dst, reusing its capacity. On error it returns nil; samples before the
// failing one have been consumed.
func (f *FixedPoint) ProcessBlock(dst []fixed.Value, samples []int64) ([]fixed.Value, error) {
	dst = core.EnsureLen(dst, len(samples))
	for i, s := range samples {
		v, err := f.Process(s)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		dst[i] = v
	}
	return dst, nil
}

// Accumulator returns the running sum of the window.
func (f *FixedPoint) Accumulator() int64 { return f.acc }

// Window returns the window contents oldest-first.
func (f *FixedPoint) Window() []int64 { return f.window.Snapshot() }

// Integration returns the window length.
func (f *FixedPoint) Integration() int { return f.integration }

// ExtraBits returns the number of fractional output bits.
func (f *FixedPoint) ExtraBits() int { return f.extraBits }

// RoundMode returns the quantization mode.
func (f *FixedPoint) RoundMode() fixed.RoundMode { return f.roundMode }

// Reset returns the integrator to its initial zero-filled state.
func (f *FixedPoint) Reset() {
	f.window.Reset()
	f.acc = 0
}

// FixedPointIntegrate runs a fresh [FixedPoint] over samples and returns one
// output per sample. Extra options are applied after mode and extraBits.
// On error no output is returned.
func FixedPointIntegrate[S constraints.Integer](samples []S, integration int, mode fixed.RoundMode, extraBits int, opts ...Option) ([]fixed.Value, error) {
	base := []Option{WithRoundMode(mode), WithExtraBits(extraBits)}
	f, err := NewFixedPoint(integration, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	out := make([]fixed.Value, len(samples))
	for i, s := range samples {
		v := int64(s)
		if s > 0 && v < 0 {
			return nil, core.OutOfRangef("integrator: sample %d: %d exceeds int64", i, uint64(s))
		}

		out[i], err = f.Process(v)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return out, nil
}

// Raw extracts the hardware-format integers from values.
func Raw(values []fixed.Value) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = v.Raw
	}
	return out
}

// Float64s converts values to floats.
func Float64s(values []fixed.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Float64()
	}
	return out
}

// scaling splits 2^extraBits/integration into a numerator shift and a
// denominator.
func scaling(integration, extraBits int) (int, int64, error) {
	numShift, denShift := extraBits, 0
	if extraBits < 0 {
		numShift, denShift = 0, -extraBits
	}

	den, ok := fixed.ShiftLeft(int64(integration), denShift)
	if !ok || den > 1<<62 {
		return 0, 0, core.InvalidParameterf("integrator: integration %d with %d extra bits exceeds 62 bits", integration, extraBits)
	}
	return numShift, den, nil
}

// wideSum is a two's-complement 128-bit running sum of int64 terms.
type wideSum struct{ hi, lo uint64 }

func (w *wideSum) add(v int64) {
	var carry uint64
	w.lo, carry = bits.Add64(w.lo, uint64(v), 0)
	w.hi, _ = bits.Add64(w.hi, uint64(v>>63), carry)
}

func (w *wideSum) sub(v int64) {
	var borrow uint64
	w.lo, borrow = bits.Sub64(w.lo, uint64(v), 0)
	w.hi, _ = bits.Sub64(w.hi, uint64(v>>63), borrow)
}

// int64 returns the sum and whether it fits in int64.
func (w wideSum) int64() (int64, bool) {
	if w.hi != uint64(int64(w.lo)>>63) {
		return 0, false
	}
	return int64(w.lo), true
}

// slide returns acc + in - out and whether it fits in int64. Only the new
// window sum is checked; the intermediate acc + in may exceed 64 bits.
func slide(acc, in, out int64) (int64, bool) {
	var w wideSum
	w.add(acc)
	w.add(in)
	w.sub(out)
	return w.int64()
}
