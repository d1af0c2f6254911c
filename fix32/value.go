package fix32

import (
	"fmt"
	"math"
)

// Value pairs a raw 32-bit fixed-point integer with its scale exponent.
// The represented real value is Raw / 2^Scale. Values are immutable; all
// methods return new values.
//
// The kernel functions operate on raw integers directly to keep call
// sites free of allocation and wrapping; Value exists for host-side code
// that converts between fixed point and floating point, such as test
// references and measurement tools.
type Value struct {
	Raw   int32
	Scale int
}

// FromFloat64 quantises f to a fixed-point value at the given scale,
// rounding to nearest and clamping to the signed 32-bit range.
func FromFloat64(f float64, scale int) Value {
	raw := math.Round(math.Ldexp(f, scale))

	// clamp before the integer conversion: float-to-int of an
	// out-of-range value is not defined
	switch {
	case raw >= math.MaxInt32:
		return Value{Raw: math.MaxInt32, Scale: scale}
	case raw <= math.MinInt32:
		return Value{Raw: math.MinInt32, Scale: scale}
	}

	return Value{Raw: int32(raw), Scale: scale}
}

// Float64 returns the represented real value.
func (v Value) Float64() float64 {
	return math.Ldexp(float64(v.Raw), -v.Scale)
}

// Abs returns the absolute value. Abs of the most negative raw value
// wraps, as in two's complement.
func (v Value) Abs() Value {
	return Value{Raw: abs32(v.Raw), Scale: v.Scale}
}

// String formats the represented value for diagnostics.
func (v Value) String() string {
	return fmt.Sprintf("%g (raw %d, scale 2^%d)", v.Float64(), v.Raw, v.Scale)
}
