package fix32

import "github.com/cwbudde/algo-fixed/internal/msb"

// Sqrt approximates the square root of the fixed-point value val / 2^scale
// through the identity sqrt(v) = v * (1/sqrt(v)). It returns the raw
// result and its scale, chosen so the mantissa lands near [2^29, 2^30)
// with the sign bit clear. Like InvSqrt it normalises an odd input scale
// and is undefined for val == 0.
func Sqrt(val uint32, scale int) (uint32, int) {
	odd := scale & 1
	val = (val + uint32(odd)) >> uint(odd)
	scale += odd

	inv, invScale := InvSqrt(val, scale)

	// val * inv carries scale 2^(scale + invScale) and is bounded by
	// 2^(msbEven + 32); shifting by msbEven + 1 normalises the result to
	// sqrt(a) * 2^29 regardless of the input magnitude
	shift := uint(msb.EvenIndex(val) + 1)
	prod := uint64(val)*uint64(inv) + 1<<(shift-1)

	return uint32(prod >> shift), scale + invScale - int(shift)
}
