package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-movint/dsp/core"
)

// DeterministicInts draws length samples uniformly from the full range of
// format with a fixed seed.
func DeterministicInts(seed int64, format core.SampleFormat, length int) []int64 {
	out := make([]int64, length)
	rng := rand.New(rand.NewSource(seed))
	span := format.Max() - format.Min() + 1
	for i := range out {
		out[i] = format.Min() + rng.Int63n(span)
	}
	return out
}

// Ramp returns 1, 2, ..., length.
func Ramp(length int) []int64 {
	out := make([]int64, length)
	for i := range out {
		out[i] = int64(i + 1)
	}
	return out
}

// RequireInt64sEqual fails t at the first differing index.
func RequireInt64sEqual(t *testing.T, got, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
