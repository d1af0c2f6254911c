package testutil

import (
	"math"
	"testing"
)

// Float converts a raw fixed-point integer at the given scale to the
// represented real value.
func Float(raw int64, scale int) float64 {
	return math.Ldexp(float64(raw), -scale)
}

// UFloat is Float for unsigned raw values.
func UFloat(raw uint64, scale int) float64 {
	return math.Ldexp(float64(raw), -scale)
}

// RelativeError returns |got-want| / |want|. A zero want with a non-zero
// got reports +Inf.
func RelativeError(got, want float64) float64 {
	if want == 0 {
		if got == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return math.Abs(got-want) / math.Abs(want)
}

// RequireRelClose fails t if the relative error of got against want
// exceeds eps.
func RequireRelClose(t *testing.T, got, want, eps float64) {
	t.Helper()

	if rel := RelativeError(got, want); rel > eps {
		t.Fatalf("got %v, want %v (relative error %v > eps %v)", got, want, rel, eps)
	}
}

// RequireAbsClose fails t if |got-want| exceeds eps.
func RequireAbsClose(t *testing.T, got, want, eps float64) {
	t.Helper()

	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}
