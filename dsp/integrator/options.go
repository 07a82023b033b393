package integrator

import (
	"fmt"

	"github.com/cwbudde/algo-movint/dsp/core"
	"github.com/cwbudde/algo-movint/dsp/fixed"
)

// maxExtraBits bounds |extraBits| so that 2^|extraBits| fits in int64.
const maxExtraBits = 62

type config struct {
	roundMode fixed.RoundMode
	extraBits int
	format    *core.SampleFormat
}

func defaultConfig() config {
	return config{roundMode: fixed.Truncate}
}

// Option configures a [FixedPoint] integrator.
type Option func(*config) error

// WithRoundMode sets the quantization mode (default [fixed.Truncate]).
func WithRoundMode(mode fixed.RoundMode) Option {
	return func(cfg *config) error {
		if !mode.Valid() {
			return core.InvalidParameterf("integrator: invalid rounding mode %d", int(mode))
		}

		cfg.roundMode = mode

		return nil
	}
}

// WithExtraBits sets the number of fractional bits kept before quantization.
// Negative values drop integer bits instead.
func WithExtraBits(bits int) Option {
	return func(cfg *config) error {
		if bits < -maxExtraBits || bits > maxExtraBits {
			return core.InvalidParameterf("integrator: extra bits must be in [%d, %d]: %d", -maxExtraBits, maxExtraBits, bits)
		}

		cfg.extraBits = bits

		return nil
	}
}

// WithSampleFormat enables range checking of every input sample against
// format. It also lets the constructor prove that the accumulator and the
// scaled numerator cannot overflow.
func WithSampleFormat(format core.SampleFormat) Option {
	return func(cfg *config) error {
		if err := format.Validate(); err != nil {
			return fmt.Errorf("integrator: %w", err)
		}

		cfg.format = &format

		return nil
	}
}
