package signal

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-movint/dsp/core"
)

// Kind selects a stimulus shape.
type Kind int

const (
	// Uniform is random full-range noise.
	Uniform Kind = iota
	// Ramp is a wrapping counter.
	Ramp
	// Constant is the format maximum, held.
	Constant
	// Step jumps from the format minimum to the maximum halfway through.
	Step
	// Sine is a full-scale sine with a 64-sample period.
	Sine
)

var kindNames = [...]string{"uniform", "ramp", "constant", "step", "sine"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s (case-insensitive).
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, core.InvalidParameterf("signal: unknown stimulus kind %q", s)
}

// DefaultSinePeriod is the period in samples used by Generate for Sine.
const DefaultSinePeriod = 64

// Generate produces samples of the given kind with default shape
// parameters.
func (g *Generator) Generate(kind Kind, samples int) ([]int64, error) {
	switch kind {
	case Uniform:
		return g.Uniform(samples)
	case Ramp:
		return g.Ramp(samples)
	case Constant:
		return g.Constant(g.format.Max(), samples)
	case Step:
		return g.Step(samples/2, g.format.Min(), g.format.Max(), samples)
	case Sine:
		return g.Sine(DefaultSinePeriod, 1, samples)
	default:
		return nil, core.InvalidParameterf("signal: unknown stimulus kind %d", int(kind))
	}
}
