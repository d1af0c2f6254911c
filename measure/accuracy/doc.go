// Package accuracy measures the approximation error of the fixed-point
// kernels against float64 references.
//
// Sweeps cover a configurable dynamic range and report worst-case and
// aggregate relative error:
//
//   - InvSqrtSweep, SqrtSweep and Atan2Sweep compare the fixed-point
//     kernels against math.Sqrt and math.Atan2.
//   - FastSqrtBaseline measures the floating-point fast approximation from
//     algo-approx over the same range, as the natural baseline when
//     deciding between a float-free kernel and a float fast path.
//
// ErrorSpectrum additionally transforms the sweep error signal into the
// frequency domain. The inverse-square-root interpolation matches value
// and first derivative at the mantissa-interval boundaries, so the error
// across a range spanning several powers of four must stay smooth; a
// derivative discontinuity at the interval edges would show up as
// wideband spikes in this spectrum.
//
// These harnesses run on the host, not on the embedded target; they are
// the measurement companion to the kernel, in the same spirit as impulse
// response or distortion measurement for a DSP chain.
package accuracy
