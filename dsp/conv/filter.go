package conv

// Filter convolves signals with a fixed kernel. Kernels up to 64 taps are
// applied in the time domain; longer ones through FFT overlap-add, with the
// kernel spectrum computed once in [NewFilter].
//
// A Filter reuses internal buffers and is not safe for concurrent use.
type Filter struct {
	kernel []float64
	oa     *overlapAdd
}

// NewFilter returns a Filter for kernel. The kernel is copied.
func NewFilter(kernel []float64) (*Filter, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	f := &Filter{kernel: append([]float64(nil), kernel...)}
	if len(kernel) > directThreshold {
		oa, err := newOverlapAdd(f.kernel, 0)
		if err != nil {
			return nil, err
		}
		f.oa = oa
	}
	return f, nil
}

// Apply convolves signal with the kernel and returns the outputs selected
// by mode.
func (f *Filter) Apply(signal []float64, mode Mode) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	outLen, err := mode.outputLen(len(signal), len(f.kernel))
	if err != nil {
		return nil, err
	}

	if f.oa == nil {
		return direct(signal, f.kernel, outLen), nil
	}
	return f.oa.process(signal, outLen)
}
