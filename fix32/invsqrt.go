package fix32

import "github.com/cwbudde/algo-fixed/internal/msb"

// Polynomial constant fractions for the cubic interpolation of 1/sqrt(a)
// over [1,4], pre-scaled so additions happen before subtractions and only
// the high word of each 64-bit product is needed.
const (
	frac11_432  = 0x684BDA13 //  11 / 432 at scale 2^36
	frac19_72   = 0x871C71C7 //  19 / 72  at scale 2^33
	frac137_144 = 0x3CE38E39 // 137 / 144 at scale 2^30
	frac185_108 = 0x0DB425ED // 185 / 108 at scale 2^27
)

// InvSqrt approximates the inverse square root of the fixed-point value
// val / 2^scale. It returns the approximation together with the scale of
// the result, chosen to retain the most precision; the raw result never
// has bit 31 set, so it can be cast to signed without loss.
//
// The scale must be even on entry; an odd scale is normalised by rounding
// val to one fewer fractional bit, and the adjustment is reported through
// the returned scale. The result is undefined for val == 0.
//
// The approximation interpolates 1/sqrt over the mantissa interval [1,4]
// with the unique cubic matching value and first derivative at both ends,
// then refines with Newton's method. Matching the derivative keeps the
// approximation smooth across mantissa-interval boundaries, so Newton's
// update stays well-conditioned at interval edges. The relative error is
// below 0.01% with the default two iterations and below 1% with one.
func InvSqrt(val uint32, scale int) (uint32, int) {
	// Let val = a * 2^(2n) with 1 <= a < 4, so sqrt(val) = sqrt(a) * 2^n.

	// scale must be even; fold an odd input back to an even representation
	odd := scale & 1
	val = (val + uint32(odd)) >> uint(odd)
	scale += odd

	msbEven := msb.EvenIndex(val)

	// mantissa a in [1,4) stored at scale 2^30 for maximum precision
	a := val << uint(30-msbEven)

	// both msbEven and scale are even, so the arithmetic shift divides
	// exactly even when n is negative
	n := (msbEven - scale) >> 1

	// Interpolate 1/sqrt(a) over [1,4] with the cubic matching
	// f(1) = 1, f(4) = 0.5, f'(1) = -0.5, f'(4) = -0.0625:
	//   p(a) = -11/432 a^3 + 19/72 a^2 - 137/144 a + 185/108

	// a^2 at scale 2^27 and a^3 at scale 2^24: the wider ranges
	// (1 <= a^2 < 16, 1 <= a^3 < 64) still fit 32 bits and only the
	// rounded high word of each 64-bit product is needed
	aSqu := uint32((uint64(a)*uint64(a) + 1<<32) >> 33)
	aCub := uint32((uint64(a)*uint64(aSqu) + 1<<32) >> 33)

	// additions before subtractions, intermediate scale 2^27, to keep the
	// unsigned arithmetic from underflowing
	res := frac185_108 +
		uint32((uint64(frac19_72)*uint64(aSqu)+1<<32)>>33) -
		uint32((uint64(frac137_144)*uint64(a)+1<<32)>>33) -
		uint32((uint64(frac11_432)*uint64(aCub)+1<<32)>>33)

	// 0.5 < res <= 1; move up to scale 2^30 rather than 2^31 so the final
	// result keeps the sign bit clear
	res <<= 3

	const onePointFive = 3 << 24 // 1.5 at scale 2^25

	for i := 0; i < invSqrtNewtonIters; i++ {
		// 0.25 < res^2 <= 1, stored at scale 2^28
		resSqu := uint32((uint64(res)*uint64(res) + 1<<32) >> 33)

		// 0.125 <= a * res^2 / 2 < 2, stored at scale 2^25
		halfAResSqu := uint32((uint64(a)*uint64(resSqu) + 1<<32) >> 33)

		// for a > 2, res < 0.8 and res^2 < 0.75, so a * res^2 / 2 < 1.5
		// and the difference never goes negative; res stays at scale 2^30
		res = uint32((uint64(res)*uint64(onePointFive-halfAResSqu) + 1<<24) >> 25)
	}

	// 1/sqrt(val) = 1/sqrt(a) * 2^(-n) with the intermediate at scale
	// 2^30, so the result carries scale 2^(30 + n)
	return res, 30 + n
}
