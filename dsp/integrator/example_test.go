package integrator_test

import (
	"fmt"

	"github.com/cwbudde/algo-movint/dsp/fixed"
	"github.com/cwbudde/algo-movint/dsp/integrator"
)

func ExampleFixedPointIntegrate() {
	samples := []int64{1, 2, 3, 4, 5, 6, 7, 8}

	truncated, _ := integrator.FixedPointIntegrate(samples, 4, fixed.Truncate, 0)
	fmt.Println(integrator.Raw(truncated))

	fine, _ := integrator.FixedPointIntegrate(samples, 4, fixed.Truncate, 3)
	fmt.Println(fine)
	fmt.Println(integrator.Raw(fine))

	// Output:
	// [0 0 1 2 3 4 5 6]
	// [0.25 0.75 1.5 2.5 3.5 4.5 5.5 6.5]
	// [2 6 12 20 28 36 44 52]
}

func ExampleFloatIntegrate() {
	out, _ := integrator.FloatIntegrate([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 4, true)
	fmt.Println(out)

	// Output:
	// [0.25 0.75 1.5 2.5 3.5 4.5 5.5 6.5]
}

func ExampleFixedPoint() {
	f, err := integrator.NewFixedPoint(2, integrator.WithRoundMode(fixed.RoundHalfEven))
	if err != nil {
		panic(err)
	}

	var raws []int64
	for _, s := range []int64{1, 2, 3, 4} {
		v, _ := f.Process(s)
		raws = append(raws, v.Raw)
	}
	fmt.Println(raws)
	fmt.Println(f.Window(), f.Accumulator())

	// Output:
	// [0 2 2 4]
	// [3 4] 7
}

func ExampleParams_Golden() {
	p := integrator.DefaultParams()
	fmt.Println(p)

	out, _ := p.Golden([]int64{32, 32, 32})
	fmt.Println(out)

	// Output:
	// in=u16 out=u24 samples=32 round=truncate extra_bits=8
	// [256 512 768]
}
