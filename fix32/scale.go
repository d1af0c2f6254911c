package fix32

import "golang.org/x/exp/constraints"

// RoundMode selects the tie-breaking rule used when scaling a value down
// by a power of two. All four modes round to nearest; they differ only in
// how an exact half is resolved.
type RoundMode int

const (
	// RoundHalfUp rounds an exact half towards positive infinity:
	// 0.5 becomes 1 and -0.5 becomes 0.
	RoundHalfUp RoundMode = iota

	// RoundHalfDown rounds an exact half towards negative infinity:
	// 0.5 becomes 0 and -0.5 becomes -1.
	RoundHalfDown

	// RoundHalfAwayFromZero rounds an exact half away from zero:
	// 0.5 becomes 1 and -0.5 becomes -1.
	RoundHalfAwayFromZero

	// RoundHalfTowardsZero rounds an exact half towards zero:
	// 0.5 becomes 0 and -0.5 becomes 0.
	RoundHalfTowardsZero
)

// String returns a human-readable name for the rounding mode.
func (m RoundMode) String() string {
	switch m {
	case RoundHalfUp:
		return "half-up"
	case RoundHalfDown:
		return "half-down"
	case RoundHalfAwayFromZero:
		return "half-away-from-zero"
	case RoundHalfTowardsZero:
		return "half-towards-zero"
	default:
		return "unknown"
	}
}

// Scale divides val by 2^n, rounding to nearest with the given tie rule.
// The shift amount n must satisfy 1 <= n <= width-1 for the operand width.
// The rounding bias is added in 64-bit arithmetic, so a 32-bit operand
// near the top of its range cannot overflow; a 64-bit operand within
// 2^(n-1) of the 64-bit limit remains the caller's responsibility.
//
// The implementation is branch-free with respect to the sign of val: the
// sign-dependent bias of the away-from-zero and towards-zero modes is
// derived from the arithmetically shifted value itself, which is all ones
// for a negative operand and zero otherwise. The mode switch is a
// call-site constant in every kernel use and folds away after inlining.
func Scale[T constraints.Signed](val T, n uint, mode RoundMode) T {
	v := int64(val)
	half := int64(1) << (n - 1)
	sign := v >> 63 // all ones if val < 0, zero otherwise

	switch mode {
	case RoundHalfUp:
		return T((v + half) >> n)
	case RoundHalfDown:
		return T((v + half - 1) >> n)
	case RoundHalfAwayFromZero:
		return T((v + half + sign) >> n)
	case RoundHalfTowardsZero:
		return T((v + half + ^sign) >> n)
	default:
		panic("fix32: unknown rounding mode")
	}
}
