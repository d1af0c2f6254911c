package fix32

import "math"

// signMask covers the top 33 bits of a 64-bit product. A rounded product
// fits 32 bits exactly when all of these bits agree with the sign.
const signMask = int64(-1) << 31

// Mul multiplies two fixed-point operands and scales the exact 64-bit
// product down by n bits, rounding half away from zero. Bits beyond the
// low 32 of the scaled product are silently discarded; use MulChecked to
// detect them. The shift amount n must satisfy 1 <= n <= 63.
func Mul(a, b int32, n uint) int32 {
	return int32(Scale(int64(a)*int64(b), n, RoundHalfAwayFromZero))
}

// MulRound is Mul with an explicit rounding mode. The mode is a
// configuration point fixed by the calling code, not a value to vary at
// runtime; pass a constant.
func MulRound(a, b int32, n uint, mode RoundMode) int32 {
	return int32(Scale(int64(a)*int64(b), n, mode))
}

// MulChecked is Mul with overflow detection. When the rounded but
// untruncated 64-bit product cannot be represented in 32 bits, onOverflow
// is invoked with that full-precision value before the truncated result is
// returned; the handler decides whether to saturate, signal an error or
// log. A nil handler reduces MulChecked to Mul.
func MulChecked(a, b int32, n uint, onOverflow func(product int64)) int32 {
	prod := Scale(int64(a)*int64(b), n, RoundHalfAwayFromZero)

	if prod&signMask != (prod>>32)&signMask {
		if onOverflow != nil {
			onOverflow(prod)
		}
	}

	return int32(prod)
}

// MulSat is Mul with saturation: a scaled product outside the signed
// 32-bit range clamps to MaxInt32 or MinInt32 instead of truncating.
func MulSat(a, b int32, n uint) int32 {
	return Saturate(Scale(int64(a)*int64(b), n, RoundHalfAwayFromZero))
}

// Saturate clamps a full-precision product to the signed 32-bit range. It
// is the usual building block for MulChecked overflow handlers.
func Saturate(product int64) int32 {
	if product > math.MaxInt32 {
		return math.MaxInt32
	}

	if product < math.MinInt32 {
		return math.MinInt32
	}

	return int32(product)
}
