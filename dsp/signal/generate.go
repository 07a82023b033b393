package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-movint/dsp/core"
)

// Generator creates deterministic integer stimulus in a sample format.
type Generator struct {
	format core.SampleFormat
	seed   uint64
	rng    *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator) error

// WithSeed sets the seed of the random stimulus (default 1).
func WithSeed(seed uint64) Option {
	return func(g *Generator) error {
		g.seed = seed
		return nil
	}
}

// NewGenerator creates a generator for samples of format.
func NewGenerator(format core.SampleFormat, opts ...Option) (*Generator, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}

	g := &Generator{format: format, seed: 1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.SetSeed(g.seed)

	return g, nil
}

// Format returns the sample format of generated stimulus.
func (g *Generator) Format() core.SampleFormat {
	return g.format
}

// Seed returns the current seed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// SetSeed restarts the random sequence from seed.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
	g.rng = rand.New(rand.NewPCG(seed, 0))
}

// Uniform draws samples uniformly from the full range of the format,
// both ends included.
func (g *Generator) Uniform(samples int) ([]int64, error) {
	if err := checkLength("uniform", samples); err != nil {
		return nil, err
	}

	lo := g.format.Min()
	span := g.format.Max() - lo + 1
	out := make([]int64, samples)
	for i := range out {
		out[i] = lo + g.rng.Int64N(span)
	}
	return out, nil
}

// Ramp counts up from the format minimum by one per sample and wraps to the
// minimum after the maximum.
func (g *Generator) Ramp(samples int) ([]int64, error) {
	if err := checkLength("ramp", samples); err != nil {
		return nil, err
	}

	lo := g.format.Min()
	span := g.format.Max() - lo + 1
	out := make([]int64, samples)
	for i := range out {
		out[i] = lo + int64(i)%span
	}
	return out, nil
}

// Constant repeats v.
func (g *Generator) Constant(v int64, samples int) ([]int64, error) {
	if err := checkLength("constant", samples); err != nil {
		return nil, err
	}
	if err := g.format.Check(v); err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}

	out := make([]int64, samples)
	for i := range out {
		out[i] = v
	}
	return out, nil
}

// Step holds low for the first at samples and high afterwards.
func (g *Generator) Step(at int, low, high int64, samples int) ([]int64, error) {
	if err := checkLength("step", samples); err != nil {
		return nil, err
	}
	if at < 0 {
		return nil, core.InvalidParameterf("signal: step position must be >= 0: %d", at)
	}
	for _, v := range []int64{low, high} {
		if err := g.format.Check(v); err != nil {
			return nil, fmt.Errorf("signal: %w", err)
		}
	}

	out := make([]int64, samples)
	for i := range out {
		if i < at {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out, nil
}

// Sine generates a sine of the given period in samples, symmetric around
// the middle code of the format (0 for signed formats). amplitude in [0, 1]
// scales the largest symmetric swing; values are rounded to the nearest
// integer.
func (g *Generator) Sine(period, amplitude float64, samples int) ([]int64, error) {
	if err := checkLength("sine", samples); err != nil {
		return nil, err
	}
	if period <= 0 {
		return nil, core.InvalidParameterf("signal: sine period must be > 0: %f", period)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, core.InvalidParameterf("signal: sine amplitude must be in [0, 1]: %f", amplitude)
	}

	lo, hi := g.format.Min(), g.format.Max()
	center := lo + (hi-lo+1)/2
	half := float64(min(center-lo, hi-center)) * amplitude
	step := 2 * math.Pi / period

	out := make([]int64, samples)
	for i := range out {
		v := math.Round(float64(center) + half*math.Sin(step*float64(i)))
		out[i] = min(max(int64(v), lo), hi)
	}
	return out, nil
}

func checkLength(kind string, samples int) error {
	if samples <= 0 {
		return core.InvalidParameterf("signal: %s samples must be > 0: %d", kind, samples)
	}
	return nil
}
