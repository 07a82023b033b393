package integrator

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/cwbudde/algo-movint/dsp/core"
	"github.com/cwbudde/algo-movint/dsp/fixed"
)

// Recompute is the direct-summation counterpart of [FixedPointIntegrate].
// It keeps the last integration samples in a deque and sums them anew for
// every output instead of maintaining a running accumulator, which costs
// O(integration) per sample. Results are identical to the streaming model.
func Recompute(samples []int64, integration int, mode fixed.RoundMode, extraBits int) ([]fixed.Value, error) {
	cfg := defaultConfig()
	for _, opt := range []Option{WithRoundMode(mode), WithExtraBits(extraBits)} {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if integration <= 0 {
		return nil, core.InvalidParameterf("integrator: integration must be >= 1: %d", integration)
	}

	numShift, den, err := scaling(integration, extraBits)
	if err != nil {
		return nil, err
	}

	var window deque.Deque[int64]
	for range integration {
		window.PushBack(0)
	}

	out := make([]fixed.Value, len(samples))
	for i, s := range samples {
		window.PopFront()
		window.PushBack(s)

		var w wideSum
		for j := 0; j < window.Len(); j++ {
			w.add(window.At(j))
		}
		sum, ok := w.int64()
		if !ok {
			return nil, core.OutOfRangef("integrator: window sum at sample %d exceeds 64 bits", i)
		}

		q, err := fixed.QuantizeScaled(sum, den, numShift, mode)
		if err != nil {
			return nil, fmt.Errorf("integrator: sample %d: %w", i, err)
		}
		out[i] = fixed.Value{Raw: q, FracBits: extraBits}
	}
	return out, nil
}
