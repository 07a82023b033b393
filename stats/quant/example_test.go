package quant_test

import (
	"fmt"

	"github.com/cwbudde/algo-movint/dsp/fixed"
	"github.com/cwbudde/algo-movint/dsp/integrator"
	"github.com/cwbudde/algo-movint/stats/quant"
)

func ExampleCompare() {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ref, _ := integrator.FloatIntegrate(samples, 4, true)
	got, _ := integrator.FixedPointIntegrate([]int64{1, 2, 3, 4, 5, 6, 7, 8}, 4, fixed.Truncate, 0)

	s, _ := quant.Compare(got, ref)
	fmt.Printf("mean=%.4f min=%.2f exact=%d\n", s.Mean, s.Min, s.Exact)

	// Output:
	// mean=-0.5000 min=-0.75 exact=0
}
