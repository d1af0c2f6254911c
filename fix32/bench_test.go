package fix32_test

import (
	"testing"

	"github.com/cwbudde/algo-fixed/fix32"
)

func BenchmarkScale32(b *testing.B) {
	b.ReportAllocs()

	var sink int32
	for i := 0; i < b.N; i++ {
		sink = fix32.Scale(int32(i), 7, fix32.RoundHalfAwayFromZero)
	}

	_ = sink
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()

	var sink int32
	for i := 0; i < b.N; i++ {
		sink = fix32.Mul(int32(i)|1, 0x1234567, 16)
	}

	_ = sink
}

func BenchmarkMulChecked(b *testing.B) {
	b.ReportAllocs()

	handler := func(int64) {}

	var sink int32
	for i := 0; i < b.N; i++ {
		sink = fix32.MulChecked(int32(i)|1, 0x1234567, 16, handler)
	}

	_ = sink
}

func BenchmarkInvSqrt(b *testing.B) {
	b.ReportAllocs()

	var sink uint32
	for i := 0; i < b.N; i++ {
		sink, _ = fix32.InvSqrt(uint32(i)|1, 16)
	}

	_ = sink
}

func BenchmarkSqrt(b *testing.B) {
	b.ReportAllocs()

	var sink uint32
	for i := 0; i < b.N; i++ {
		sink, _ = fix32.Sqrt(uint32(i)|1, 16)
	}

	_ = sink
}

func BenchmarkAtan2(b *testing.B) {
	b.ReportAllocs()

	var sink int32
	for i := 0; i < b.N; i++ {
		sink = fix32.Atan2(int32(i)|1<<20, 3<<20, 20)
	}

	_ = sink
}
