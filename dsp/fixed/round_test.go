package fixed

import (
	"math"
	"testing"
)

func TestQuantizeRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		mode     RoundMode
		want     int64
	}{
		{"exact", 8, 4, Truncate, 2},
		{"floor positive", 10, 4, Truncate, 2},
		{"floor negative", -10, 4, Truncate, -3},
		{"floor negative small", -1, 4, Truncate, -1},
		{"even tie down", 10, 4, RoundHalfEven, 2},
		{"even tie up", 14, 4, RoundHalfEven, 4},
		{"even negative tie", -10, 4, RoundHalfEven, -2},
		{"even negative tie up", -14, 4, RoundHalfEven, -4},
		{"even half of one", 1, 2, RoundHalfEven, 0},
		{"even below half", 11, 8, RoundHalfEven, 1},
		{"even above half", 13, 8, RoundHalfEven, 2},
		{"away tie positive", 10, 4, RoundHalfAwayFromZero, 3},
		{"away tie negative", -10, 4, RoundHalfAwayFromZero, -3},
		{"away half of one", 1, 2, RoundHalfAwayFromZero, 1},
		{"away negative half", -1, 2, RoundHalfAwayFromZero, -1},
		{"away below half negative", -5, 8, RoundHalfAwayFromZero, -1},
		{"away above half negative", -3, 8, RoundHalfAwayFromZero, 0},
		{"large denominator", math.MaxInt64 / 2, math.MaxInt64, RoundHalfEven, 0},
		{"large numerator", math.MaxInt64, 1 << 62, Truncate, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeRatio(tt.num, tt.den, tt.mode); got != tt.want {
				t.Fatalf("QuantizeRatio(%d, %d, %v) = %d, want %d", tt.num, tt.den, tt.mode, got, tt.want)
			}
		})
	}
}

func TestQuantizeRatioMatchesFloatRounding(t *testing.T) {
	// Small operands are exact in float64, so the math package is an oracle.
	oracles := map[RoundMode]func(float64) float64{
		Truncate:              math.Floor,
		RoundHalfEven:         math.RoundToEven,
		RoundHalfAwayFromZero: math.Round,
	}

	for mode, oracle := range oracles {
		for den := int64(1); den <= 16; den++ {
			for num := int64(-200); num <= 200; num++ {
				want := int64(oracle(float64(num) / float64(den)))
				if got := QuantizeRatio(num, den, mode); got != want {
					t.Fatalf("%v: QuantizeRatio(%d, %d) = %d, want %d", mode, num, den, got, want)
				}
			}
		}
	}
}

func TestQuantizeRatioTruncateNeverExceedsRound(t *testing.T) {
	for den := int64(1); den <= 9; den++ {
		for num := int64(-100); num <= 100; num++ {
			floor := QuantizeRatio(num, den, Truncate)
			for _, mode := range []RoundMode{RoundHalfEven, RoundHalfAwayFromZero} {
				if r := QuantizeRatio(num, den, mode); floor > r {
					t.Fatalf("floor %d > %v %d for %d/%d", floor, mode, r, num, den)
				}
			}
		}
	}
}

func TestQuantizeRatioPanicsOnBadDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero denominator")
		}
	}()
	QuantizeRatio(1, 0, Truncate)
}

func TestFloorDiv(t *testing.T) {
	q, r := FloorDiv(-7, 2)
	if q != -4 || r != 1 {
		t.Fatalf("FloorDiv(-7, 2) = (%d, %d), want (-4, 1)", q, r)
	}
	q, r = FloorDiv(7, 2)
	if q != 3 || r != 1 {
		t.Fatalf("FloorDiv(7, 2) = (%d, %d), want (3, 1)", q, r)
	}
}

func TestParseRoundMode(t *testing.T) {
	tests := []struct {
		in   string
		want RoundMode
	}{
		{"truncate", Truncate},
		{"FLOOR", Truncate},
		{" even ", RoundHalfEven},
		{"round-half-even", RoundHalfEven},
		{"round-half-away", RoundHalfAwayFromZero},
	}
	for _, tt := range tests {
		got, err := ParseRoundMode(tt.in)
		if err != nil {
			t.Fatalf("ParseRoundMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRoundMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, err := ParseRoundMode(got.String()); err != nil || back != got {
			t.Fatalf("String round trip for %v failed: %v, %v", got, back, err)
		}
	}

	if _, err := ParseRoundMode("nearest-ish"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRoundModeValid(t *testing.T) {
	if RoundMode(-1).Valid() || RoundMode(3).Valid() {
		t.Fatal("out-of-range modes must be invalid")
	}
	if got := RoundMode(7).String(); got != "RoundMode(7)" {
		t.Fatalf("String() = %q", got)
	}
}

func BenchmarkQuantizeRatio(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = QuantizeRatio(int64(i)-1<<20, 96, RoundHalfEven)
	}
}
