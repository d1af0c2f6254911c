package fix32_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fixed/fix32"
)

func TestMulBasic(t *testing.T) {
	cases := []struct {
		a, b int32
		n    uint
		want int32
	}{
		{3 << 16, 2 << 16, 16, 6 << 16},
		{1 << 16, 1 << 16, 16, 1 << 16},
		{-3 << 16, 2 << 16, 16, -6 << 16},
		{1, 1, 1, 1},     // 0.5 rounds away from zero
		{-1, 1, 1, -1},   // -0.5 rounds away from zero
		{0, 12345, 8, 0},
		{1 << 20, 1 << 20, 32, 1 << 8},
	}

	for _, tc := range cases {
		if got := fix32.Mul(tc.a, tc.b, tc.n); got != tc.want {
			t.Errorf("Mul(%d, %d, %d) = %d, want %d", tc.a, tc.b, tc.n, got, tc.want)
		}
	}
}

func TestMulRoundModes(t *testing.T) {
	// product 1, shifted by 1: the exact half exercises every tie rule
	if got := fix32.MulRound(1, 1, 1, fix32.RoundHalfUp); got != 1 {
		t.Errorf("MulRound(1,1,1,half-up) = %d, want 1", got)
	}

	if got := fix32.MulRound(1, 1, 1, fix32.RoundHalfDown); got != 0 {
		t.Errorf("MulRound(1,1,1,half-down) = %d, want 0", got)
	}

	if got := fix32.MulRound(-1, 1, 1, fix32.RoundHalfAwayFromZero); got != -1 {
		t.Errorf("MulRound(-1,1,1,half-away) = %d, want -1", got)
	}

	if got := fix32.MulRound(-1, 1, 1, fix32.RoundHalfTowardsZero); got != 0 {
		t.Errorf("MulRound(-1,1,1,half-towards) = %d, want 0", got)
	}
}

func TestMulMatchesScale(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 20000; i++ {
		a := int32(rng.Uint32())
		b := int32(rng.Uint32())
		n := uint(1 + rng.Intn(62))

		got := fix32.Mul(a, b, n)
		want := int32(fix32.Scale(int64(a)*int64(b), n, fix32.RoundHalfAwayFromZero))

		if got != want {
			t.Fatalf("Mul(%d, %d, %d) = %d, want %d", a, b, n, got, want)
		}
	}
}

func TestMulCheckedOverflowProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(22))

	overflows := 0

	for i := 0; i < 50000; i++ {
		a := int32(rng.Uint32())
		b := int32(rng.Uint32())
		n := uint(1 + rng.Intn(40))

		called := false
		var seen int64

		got := fix32.MulChecked(a, b, n, func(product int64) {
			called = true
			seen = product
		})

		rounded := fix32.Scale(int64(a)*int64(b), n, fix32.RoundHalfAwayFromZero)
		wantOverflow := rounded > math.MaxInt32 || rounded < math.MinInt32

		if called != wantOverflow {
			t.Fatalf("MulChecked(%d, %d, %d): handler called = %v, want %v (rounded %d)",
				a, b, n, called, wantOverflow, rounded)
		}

		if called {
			overflows++

			if seen != rounded {
				t.Fatalf("MulChecked(%d, %d, %d): handler got %d, want full product %d",
					a, b, n, seen, rounded)
			}
		}

		if got != int32(rounded) {
			t.Fatalf("MulChecked(%d, %d, %d) = %d, want truncated %d", a, b, n, got, int32(rounded))
		}
	}

	// the shift range is chosen so both outcomes occur
	if overflows == 0 || overflows == 50000 {
		t.Fatalf("degenerate overflow distribution: %d of 50000", overflows)
	}
}

func TestMulCheckedNilHandler(t *testing.T) {
	// nil handler degrades to plain truncation
	a, b := int32(math.MaxInt32), int32(math.MaxInt32)

	if got, want := fix32.MulChecked(a, b, 1, nil), fix32.Mul(a, b, 1); got != want {
		t.Errorf("MulChecked with nil handler = %d, want %d", got, want)
	}
}

func TestMulSat(t *testing.T) {
	if got := fix32.MulSat(math.MaxInt32, math.MaxInt32, 1); got != math.MaxInt32 {
		t.Errorf("MulSat(max, max, 1) = %d, want MaxInt32", got)
	}

	if got := fix32.MulSat(math.MaxInt32, -math.MaxInt32, 1); got != math.MinInt32 {
		t.Errorf("MulSat(max, -max, 1) = %d, want MinInt32", got)
	}

	if got := fix32.MulSat(3<<16, 2<<16, 16); got != 6<<16 {
		t.Errorf("MulSat in range = %d, want %d", got, 6<<16)
	}
}

func TestSaturate(t *testing.T) {
	cases := []struct {
		in   int64
		want int32
	}{
		{0, 0},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
		{math.MaxInt32 + 1, math.MaxInt32},
		{math.MinInt32 - 1, math.MinInt32},
		{math.MaxInt64, math.MaxInt32},
		{math.MinInt64, math.MinInt32},
	}

	for _, tc := range cases {
		if got := fix32.Saturate(tc.in); got != tc.want {
			t.Errorf("Saturate(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
