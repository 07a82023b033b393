package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-movint/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Mode selects how much of the linear convolution is returned.
type Mode int

const (
	// ModeFull returns all len(signal)+len(kernel)-1 outputs.
	ModeFull Mode = iota

	// ModeCausal returns the leading len(signal) outputs, the alignment of a
	// streaming causal filter whose kernel is the impulse response.
	ModeCausal
)

func (m Mode) outputLen(signal, taps int) (int, error) {
	switch m {
	case ModeFull:
		return signal + taps - 1, nil
	case ModeCausal:
		return signal, nil
	default:
		return 0, core.InvalidParameterf("conv: unknown mode %d", int(m))
	}
}

// directThreshold is the longest kernel convolved in the time domain.
const directThreshold = 64

// direct computes the first outLen samples of the linear convolution of
// signal and kernel in the time domain. Each input sample scales the kernel
// into scratch, which is then added at the sample's offset.
func direct(signal, kernel []float64, outLen int) []float64 {
	out := make([]float64, outLen)
	scratch := make([]float64, len(kernel))

	for i, x := range signal {
		taps := min(len(kernel), outLen-i)
		if taps <= 0 {
			break
		}
		vecmath.ScaleBlock(scratch[:taps], kernel[:taps], x)
		vecmath.AddBlockInPlace(out[i:i+taps], scratch[:taps])
	}
	return out
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
