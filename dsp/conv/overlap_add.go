package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-movint/dsp/core"
)

// minBlock is the smallest input block handed to the FFT.
const minBlock = 256

// overlapAdd convolves with a fixed kernel through the FFT. The signal is
// cut into blocks; each block is transformed, multiplied by the kernel
// spectrum and transformed back, and the block results are summed at their
// offsets.
type overlapAdd struct {
	spectrum []complex128
	taps     int
	block    int
	plan     *algofft.Plan[complex128]
	scratch  []complex128
}

// newOverlapAdd transforms kernel once. A block of 0 picks the kernel
// length rounded up to a power of two, but at least minBlock.
func newOverlapAdd(kernel []float64, block int) (*overlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if block <= 0 {
		block = max(nextPowerOf2(len(kernel)), minBlock)
	}

	size := nextPowerOf2(block + len(kernel) - 1)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: FFT plan of size %d: %w", size, err)
	}

	spectrum := make([]complex128, size)
	for i, v := range kernel {
		spectrum[i] = complex(v, 0)
	}
	if err := plan.Forward(spectrum, spectrum); err != nil {
		return nil, fmt.Errorf("conv: kernel FFT: %w", err)
	}

	return &overlapAdd{
		spectrum: spectrum,
		taps:     len(kernel),
		block:    block,
		plan:     plan,
		scratch:  make([]complex128, size),
	}, nil
}

// process returns the first outLen samples of the linear convolution of
// signal with the kernel.
func (o *overlapAdd) process(signal []float64, outLen int) ([]float64, error) {
	out := make([]float64, outLen)

	for start := 0; start < len(signal) && start < outLen; start += o.block {
		end := min(start+o.block, len(signal))

		core.Zero(o.scratch)
		for i, v := range signal[start:end] {
			o.scratch[i] = complex(v, 0)
		}

		if err := o.plan.Forward(o.scratch, o.scratch); err != nil {
			return nil, fmt.Errorf("conv: block FFT: %w", err)
		}
		for i, k := range o.spectrum {
			o.scratch[i] *= k
		}
		if err := o.plan.InverseInPlace(o.scratch); err != nil {
			return nil, fmt.Errorf("conv: block inverse FFT: %w", err)
		}

		// A block of b samples spreads over b+taps-1 outputs.
		span := min(end-start+o.taps-1, outLen-start)
		for i := range span {
			out[start+i] += real(o.scratch[i])
		}
	}
	return out, nil
}
