package fixed

import (
	"errors"
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

// quantizeBig is an arbitrary-precision oracle for QuantizeScaled.
func quantizeBig(num, den int64, shift int, mode RoundMode) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(num), uint(shift))
	d := big.NewInt(den)

	q, r := new(big.Int), new(big.Int)
	q.DivMod(n, d, r) // Euclidean: r >= 0, so q is the floor for d > 0
	if r.Sign() == 0 || mode == Truncate {
		return q
	}

	twice := new(big.Int).Lsh(r, 1)
	switch c := twice.Cmp(d); {
	case c > 0:
		q.Add(q, big.NewInt(1))
	case c == 0:
		if mode == RoundHalfEven && q.Bit(0) == 1 ||
			mode == RoundHalfAwayFromZero && q.Sign() >= 0 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

func TestQuantizeScaledMatchesBigOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	modes := []RoundMode{Truncate, RoundHalfEven, RoundHalfAwayFromZero}

	for i := 0; i < 20000; i++ {
		num := rng.Int64N(1<<50) - 1<<49
		den := rng.Int64N(1<<20) + 1
		shift := rng.IntN(30)
		mode := modes[i%len(modes)]

		want := quantizeBig(num, den, shift, mode)
		got, err := QuantizeScaled(num, den, shift, mode)
		if !want.IsInt64() {
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("QuantizeScaled(%d, %d, %d, %v): expected overflow, got %d, %v", num, den, shift, mode, got, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("QuantizeScaled(%d, %d, %d, %v): %v", num, den, shift, mode, err)
		}
		if got != want.Int64() {
			t.Fatalf("QuantizeScaled(%d, %d, %d, %v) = %d, want %s", num, den, shift, mode, got, want)
		}
	}
}

func TestQuantizeScaledLongDivisionPath(t *testing.T) {
	// num << shift overflows int64 while the quotient does not.
	tests := []struct {
		num, den int64
		shift    int
		mode     RoundMode
	}{
		{3e17, 1000, 6, Truncate},
		{-3e17 - 7, 1000, 6, Truncate},
		{1<<61 + 5, 96, 4, RoundHalfEven},
		{-(1<<61 + 5), 96, 4, RoundHalfAwayFromZero},
		{1<<60 + 1, 3, 3, RoundHalfEven},
		// ties at the final bit: (2k+1)/2 * 2^shift
		{1<<60 + 1, 1 << 5, 4, RoundHalfEven},
		{1<<60 + 3, 1 << 5, 4, RoundHalfEven},
		{-(1<<60 + 1), 1 << 5, 4, RoundHalfAwayFromZero},
	}

	for _, tt := range tests {
		if _, ok := ShiftLeft(tt.num, tt.shift); ok {
			t.Fatalf("case %+v does not exercise the long-division path", tt)
		}
		want := quantizeBig(tt.num, tt.den, tt.shift, tt.mode)
		got, err := QuantizeScaled(tt.num, tt.den, tt.shift, tt.mode)
		if err != nil {
			t.Fatalf("%+v: %v", tt, err)
		}
		if got != want.Int64() {
			t.Fatalf("%+v: got %d, want %s", tt, got, want)
		}
	}
}

func TestQuantizeScaledOverflow(t *testing.T) {
	if _, err := QuantizeScaled(math.MaxInt64, 1, 1, Truncate); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestQuantizeScaledArguments(t *testing.T) {
	if _, err := QuantizeScaled(1, 0, 0, Truncate); err == nil {
		t.Fatal("expected error for zero denominator")
	}
	if _, err := QuantizeScaled(1, 1, -1, Truncate); err == nil {
		t.Fatal("expected error for negative shift")
	}
	if _, err := QuantizeScaled(1, 1, 0, RoundMode(5)); err == nil {
		t.Fatal("expected error for invalid mode")
	}
}
