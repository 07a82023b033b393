package integrator

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-movint/dsp/conv"
	"github.com/cwbudde/algo-movint/dsp/core"
)

// UniformKernel returns n taps of weight 1/n.
func UniformKernel(n int) ([]float64, error) {
	if n <= 0 {
		return nil, core.InvalidParameterf("integrator: integration must be >= 1: %d", n)
	}

	kernel := make([]float64, n)
	for i := range kernel {
		kernel[i] = 1
	}
	vecmath.ScaleBlockInPlace(kernel, 1/float64(n))

	return kernel, nil
}

// FloatReference is the floating-point moving mean over a fixed window. The
// uniform kernel and its FFT plan are prepared once, so one FloatReference
// serves any number of input vectors. It is not safe for concurrent use.
type FloatReference struct {
	filter *conv.Filter
}

// NewFloatReference returns the float model for an integration-sample
// window.
func NewFloatReference(integration int) (*FloatReference, error) {
	kernel, err := UniformKernel(integration)
	if err != nil {
		return nil, err
	}
	filter, err := conv.NewFilter(kernel)
	if err != nil {
		return nil, fmt.Errorf("integrator: %w", err)
	}
	return &FloatReference{filter: filter}, nil
}

// Integrate returns the moving mean of samples. The untrimmed result has
// len(samples)+integration-1 values. With trim set only the first
// len(samples) are kept, which is the alignment of the streaming model.
// Empty input yields empty output.
func (r *FloatReference) Integrate(samples []float64, trim bool) ([]float64, error) {
	if len(samples) == 0 {
		return []float64{}, nil
	}

	mode := conv.ModeFull
	if trim {
		mode = conv.ModeCausal
	}

	out, err := r.filter.Apply(samples, mode)
	if err != nil {
		return nil, fmt.Errorf("integrator: %w", err)
	}
	return out, nil
}

// FloatIntegrate is the one-shot form of [FloatReference.Integrate].
func FloatIntegrate(samples []float64, integration int, trim bool) ([]float64, error) {
	r, err := NewFloatReference(integration)
	if err != nil {
		return nil, err
	}
	return r.Integrate(samples, trim)
}

// FloatIntegrateOf converts samples to float64 and calls [FloatIntegrate].
func FloatIntegrateOf[S constraints.Integer | constraints.Float](samples []S, integration int, trim bool) ([]float64, error) {
	return FloatIntegrate(core.ToFloat64(samples), integration, trim)
}
