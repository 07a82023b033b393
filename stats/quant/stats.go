// Package quant measures the quantization error of the fixed-point
// integrator against a floating-point reference.
package quant

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-movint/dsp/fixed"
)

// ErrLengthMismatch is returned when the compared sequences differ in length.
var ErrLengthMismatch = errors.New("quant: length mismatch")

// Stats holds error statistics in units of the output LSB.
type Stats struct {
	Length   int
	Mean     float64 // bias
	RMS      float64
	StdDev   float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Peak     float64 // max(|max|, |min|)
	Exact    int     // samples without error
	Variance float64
}

// Calculate computes all statistics of errs in a single pass, using
// Welford's online algorithm for the variance.
func Calculate(errs []float64) Stats {
	n := len(errs)
	if n == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		sumSq  float64
		maxVal = errs[0]
		maxPos int
		minVal = errs[0]
		minPos int
		exact  int
	)

	for i, x := range errs {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
		if x == 0 {
			exact++
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Length:   n,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / nf),
		StdDev:   math.Sqrt(variance),
		Max:      maxVal,
		MaxPos:   maxPos,
		Min:      minVal,
		MinPos:   minPos,
		Peak:     math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Exact:    exact,
		Variance: variance,
	}
}

// Errors returns got - ref for every sample, scaled to the LSB of each
// fixed-point value.
func Errors(got []fixed.Value, ref []float64) ([]float64, error) {
	if len(got) != len(ref) {
		return nil, fmt.Errorf("%w: %d values, %d references", ErrLengthMismatch, len(got), len(ref))
	}

	out := make([]float64, len(got))
	for i, v := range got {
		lsb := math.Ldexp(1, -v.FracBits)
		out[i] = (v.Float64() - ref[i]) / lsb
	}
	return out, nil
}

// Compare returns the statistics of got - ref in LSB.
func Compare(got []fixed.Value, ref []float64) (Stats, error) {
	errs, err := Errors(got, ref)
	if err != nil {
		return Stats{}, err
	}
	return Calculate(errs), nil
}
