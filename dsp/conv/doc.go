// Package conv applies a fixed FIR kernel to float signals by linear
// convolution.
//
// A [Filter] is built once per kernel and applied to any number of
// signals:
//
//	f, err := conv.NewFilter(kernel)
//	full, err := f.Apply(signal, conv.ModeFull)
//	streamed, err := f.Apply(signal, conv.ModeCausal)
//
// Kernels of up to 64 taps are summed directly in the time domain. Longer
// kernels use FFT overlap-add; the kernel spectrum and the FFT plan are
// prepared in [NewFilter] and shared by every Apply call.
//
// [ModeCausal] keeps the first len(signal) outputs, which is what a
// streaming filter emits while the input arrives.
package conv
