package accuracy

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixed/fix32"
)

// ErrBadFFTSize is returned for transform sizes that are not a power of
// two of at least 16.
var ErrBadFFTSize = errors.New("accuracy: fft size must be a power of two, at least 16")

// ErrorSpectrum samples the signed relative error of fix32.InvSqrt at
// fftSize operands spaced uniformly across [Start, End], normalises the
// error signal to unit peak and returns the magnitude spectrum of its
// non-negative-frequency bins (fftSize/2 + 1 values).
//
// The interpolation matches value and first derivative at the
// mantissa-interval boundaries, so over a range spanning several powers
// of four the error stays smooth and its spectrum concentrates at low
// frequencies. A derivative discontinuity at the interval edges would
// spread wideband energy across the bins instead.
func ErrorSpectrum(cfg InvSqrtConfig, fftSize int) ([]float64, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if fftSize < 16 || fftSize&(fftSize-1) != 0 {
		return nil, ErrBadFFTSize
	}

	span := float64(cfg.End - cfg.Start)

	errs := make([]float64, fftSize)

	for i := range errs {
		val := cfg.Start + uint32(span*float64(i)/float64(fftSize-1))

		value := math.Ldexp(float64(val), -cfg.Scale)
		want := 1 / math.Sqrt(value)

		res, outScale := fix32.InvSqrt(val, cfg.Scale)
		got := math.Ldexp(float64(res), -outScale)

		errs[i] = (got - want) / want
	}

	// normalise to unit peak so spectra of different ranges compare
	peak := 0.0
	for _, e := range errs {
		if a := math.Abs(e); a > peak {
			peak = a
		}
	}

	norm := make([]float64, fftSize)
	if peak > 0 {
		vecmath.ScaleBlock(norm, errs, 1/peak)
	}

	in := make([]complex128, fftSize)
	for i, v := range norm {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
