package integrator

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/cwbudde/algo-movint/dsp/core"
	"github.com/cwbudde/algo-movint/dsp/fixed"
)

// MaxOutputWidth is the widest output port Params accepts.
const MaxOutputWidth = 48

// Params is the generic set of a hardware integrator test bench.
type Params struct {
	DataInWidth    int
	DataOutWidth   int
	Samples        int
	InputSigned    bool
	RoundEven      bool
	ProtectionBits int
}

// DefaultParams returns the reference test-bench configuration:
// 16-bit unsigned input, 24-bit output, 32-sample window, truncation.
func DefaultParams() Params {
	return Params{
		DataInWidth:  16,
		DataOutWidth: 24,
		Samples:      32,
	}
}

// Validate reports every inconsistent field.
func (p Params) Validate() error {
	var err error
	if p.DataInWidth < 1 || p.DataInWidth > core.MaxSampleWidth {
		err = multierr.Append(err, core.InvalidParameterf("data_in_width must be in [1, %d]: %d", core.MaxSampleWidth, p.DataInWidth))
	}
	if p.DataOutWidth < 1 || p.DataOutWidth > MaxOutputWidth {
		err = multierr.Append(err, core.InvalidParameterf("data_out_width must be in [1, %d]: %d", MaxOutputWidth, p.DataOutWidth))
	}
	if p.DataOutWidth < p.DataInWidth {
		err = multierr.Append(err, core.InvalidParameterf("data_out_width %d is narrower than data_in_width %d", p.DataOutWidth, p.DataInWidth))
	}
	if p.Samples < 1 {
		err = multierr.Append(err, core.InvalidParameterf("samples must be >= 1: %d", p.Samples))
	}
	if p.ProtectionBits < 0 {
		err = multierr.Append(err, core.InvalidParameterf("protection_bits must be >= 0: %d", p.ProtectionBits))
	}
	return err
}

// SampleFormat returns the input port format.
func (p Params) SampleFormat() core.SampleFormat {
	return core.SampleFormat{Width: p.DataInWidth, Signed: p.InputSigned}
}

// OutputFormat returns the output port format.
func (p Params) OutputFormat() core.SampleFormat {
	return core.SampleFormat{Width: p.DataOutWidth, Signed: p.InputSigned}
}

// ExtraBits returns the fractional bits of the output: the width gained from
// input to output, less the protection bits.
func (p Params) ExtraBits() int {
	return p.DataOutWidth - p.DataInWidth - p.ProtectionBits
}

// RoundMode maps the round_even generic to a rounding mode.
func (p Params) RoundMode() fixed.RoundMode {
	if p.RoundEven {
		return fixed.RoundHalfEven
	}
	return fixed.Truncate
}

// AccumulatorBits returns the register width the accumulator needs for a
// full window of full-scale samples, sign bit included.
func (p Params) AccumulatorBits() int {
	mag := p.SampleFormat().MaxMagnitude()
	bits := fixed.Headroom(int64(p.Samples) * mag)
	if p.InputSigned {
		bits++
	}
	return bits
}

// NewFixedPoint returns a range-checked streaming model for p.
func (p Params) NewFixedPoint() (*FixedPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return NewFixedPoint(p.Samples,
		WithRoundMode(p.RoundMode()),
		WithExtraBits(p.ExtraBits()),
		WithSampleFormat(p.SampleFormat()),
	)
}

// Golden returns the integers the hardware emits for samples.
func (p Params) Golden(samples []int64) ([]int64, error) {
	values, err := p.GoldenValues(samples)
	if err != nil {
		return nil, err
	}
	return Raw(values), nil
}

// GoldenValues is [Params.Golden] with the fractional bit count kept, for
// callers that also compare the outputs against the float reference.
func (p Params) GoldenValues(samples []int64) ([]fixed.Value, error) {
	f, err := p.NewFixedPoint()
	if err != nil {
		return nil, err
	}

	values, err := f.ProcessBlock(nil, samples)
	if err != nil {
		return nil, err
	}

	outFmt := p.OutputFormat()
	for i, v := range values {
		if !outFmt.Contains(v.Raw) {
			return nil, core.OutOfRangef("integrator: output %d at sample %d does not fit %s", v.Raw, i, outFmt)
		}
	}
	return values, nil
}

// String summarizes the parameters in generic notation.
func (p Params) String() string {
	return fmt.Sprintf("in=%s out=%s samples=%d round=%s extra_bits=%d",
		p.SampleFormat(), p.OutputFormat(), p.Samples, p.RoundMode(), p.ExtraBits())
}
