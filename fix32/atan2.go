package fix32

// Angle constants at the fixed Atan2 output scale 2^28.
const (
	// AngleScale is the scale exponent of every angle returned by Atan2.
	AngleScale = 28

	// Pi is the circle constant at scale 2^28.
	Pi int32 = 0x3243F6A9

	// PiHalf is pi/2 at scale 2^28.
	PiHalf int32 = 0x1921FB54
)

// atanCorrection is 0.28125 at scale 2^32, the minimax-style constant of
// the rational approximation atan(t) ≈ t / (1 + 0.28125 t²).
const atanCorrection int32 = 0x48000000

// octant classifies a point into one of eight angular regions of the
// plane. The base octant is 0 when |x| > |y| and 1 otherwise; reflection
// across the y axis maps it to 3-octant and across the x axis to
// 7-octant. Every point other than the origin lands in exactly one
// octant.
func octant(y, x int32) int {
	absX := abs32(x)
	absY := abs32(y)

	oct := 0
	if absX <= absY {
		oct = 1
	}

	if x < 0 {
		oct = 3 - oct
	}

	if y < 0 {
		oct = 7 - oct
	}

	return oct
}

// Atan2 approximates the arctangent of y/x, accounting for the quadrant
// of (x, y). Both coordinates carry the common scale 2^scale; the result
// is an angle in radians at the fixed scale 2^28 (see AngleScale, Pi and
// PiHalf). Undefined at the origin and for points so close to it that
// the coordinate squares lose all significant bits at scale 2^32; raw
// magnitudes of 2^16 and up are safe.
//
// The octant reduction leaves a single rational approximation
// atan(t) ≈ t / (1 + 0.28125 t²): the denominator is formed as a weighted
// sum of the coordinate squares, inverted through InvSqrt squared back via
// Mul, and combined with the octant offset. No lookup table and no
// iterative division are involved, and the result is smooth across octant
// boundaries.
func Atan2(y, x int32, scale int) int32 {
	oct := octant(y, x)

	// x*y and the squares of x and y at scale 2^(scale + scale - 32)
	xy := Mul(x, y, 32)
	sqX := Mul(x, x, 32)
	sqY := Mul(y, y, 32)

	sqScale := scale + scale - 32

	var denum int32
	switch oct {
	case 0, 3, 4, 7:
		denum = sqX + Mul(sqY, atanCorrection, 32)
	default: // 1, 2, 5, 6
		denum = sqY + Mul(sqX, atanCorrection, 32)
	}

	invSqrt, denScale := InvSqrt(uint32(denum), sqScale)

	// reciprocal of the denominator at scale 2^(2*denScale - 32); the raw
	// inverse square root keeps bit 31 clear, so the signed cast is safe
	inv := Mul(int32(invSqrt), int32(invSqrt), 32)

	shift := uint(sqScale + (2*denScale - 32) - AngleScale)

	term := Mul(xy, inv, shift)

	switch oct {
	case 0, 7:
		return term
	case 1, 2:
		return PiHalf - term
	case 3:
		return Pi + term
	case 4:
		return -Pi + term
	default: // 5, 6
		return -PiHalf - term
	}
}

// abs32 returns the absolute value without branching; the sign mask from
// the arithmetic shift flips and corrects a negative operand in two
// operations. abs32(MinInt32) wraps, as in two's complement.
func abs32(v int32) int32 {
	m := v >> 31
	return (v ^ m) - m
}
