package msb

import (
	"math/rand"
	"testing"
)

// refEvenIndex is an independent reference: find the highest set bit by
// linear search, then round down to even.
func refEvenIndex(val uint32) int {
	highest := 0
	for i := 0; i < 32; i++ {
		if val&(1<<uint(i)) != 0 {
			highest = i
		}
	}

	return highest &^ 1
}

func TestEvenIndexSingleBits(t *testing.T) {
	for i := 0; i < 32; i++ {
		val := uint32(1) << uint(i)

		got := EvenIndex(val)
		want := i &^ 1

		if got != want {
			t.Errorf("EvenIndex(1<<%d) = %d, want %d", i, got, want)
		}
	}
}

func TestEvenIndexBoundaries(t *testing.T) {
	cases := []struct {
		val  uint32
		want int
	}{
		{1, 0},
		{2, 0},
		{3, 0},
		{4, 2},
		{5, 2},
		{15, 2},
		{16, 4},
		{0xFFFF, 14},
		{0x10000, 16},
		{0x7FFFFFFF, 30},
		{0x80000000, 30},
		{0xFFFFFFFF, 30},
	}

	for _, tc := range cases {
		if got := EvenIndex(tc.val); got != tc.want {
			t.Errorf("EvenIndex(%#x) = %d, want %d", tc.val, got, tc.want)
		}
	}
}

func TestEvenIndexRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 10000; i++ {
		val := rng.Uint32()
		if val == 0 {
			continue
		}

		got := EvenIndex(val)
		want := refEvenIndex(val)

		if got != want {
			t.Fatalf("EvenIndex(%#x) = %d, want %d", val, got, want)
		}
	}
}

func TestEvenIndexAlwaysEven(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	for i := 0; i < 10000; i++ {
		val := rng.Uint32()
		if val == 0 {
			continue
		}

		if idx := EvenIndex(val); idx&1 != 0 {
			t.Fatalf("EvenIndex(%#x) = %d is odd", val, idx)
		}
	}
}

func BenchmarkEvenIndex(b *testing.B) {
	b.ReportAllocs()

	var sink int
	for i := 0; i < b.N; i++ {
		sink = EvenIndex(uint32(i) | 1)
	}

	_ = sink
}
