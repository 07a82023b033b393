package testutil

import (
	"math"

	"github.com/stretchr/testify/require"
)

// T is the part of *testing.T the assertions here need.
type T interface {
	require.TestingT
	Helper()
}

// RequireSliceNearlyEqual fails t unless got and want have the same length,
// every value of got is finite, and each pair differs by at most eps.
func RequireSliceNearlyEqual(t T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.Falsef(t, math.IsNaN(got[i]) || math.IsInf(got[i], 0), "index %d: non-finite value %v", i, got[i])
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}
