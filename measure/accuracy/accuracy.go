package accuracy

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fixed/fix32"
)

// Errors returned by the sweep harnesses.
var (
	ErrEmptyRange = errors.New("accuracy: empty sweep range")
	ErrOddScale   = errors.New("accuracy: sweep scale must be even")
)

// Stats summarises the error of an approximation over a sweep. The error
// metric is relative for the square-root harnesses and absolute (radians)
// for the angular harness.
type Stats struct {
	// Samples is the number of evaluated points.
	Samples int

	// Max is the worst error observed.
	Max float64

	// Mean is the mean error.
	Mean float64

	// RMS is the root-mean-square error.
	RMS float64

	// WorstAt locates the worst error: the represented input value for
	// the square-root harnesses, the reference angle for Atan2Sweep.
	WorstAt float64
}

// accumulator builds Stats incrementally.
type accumulator struct {
	stats Stats
	sum   float64
	sumSq float64
}

func (a *accumulator) add(err, at float64) {
	a.stats.Samples++
	a.sum += err
	a.sumSq += err * err

	if err > a.stats.Max {
		a.stats.Max = err
		a.stats.WorstAt = at
	}
}

func (a *accumulator) finish() Stats {
	if a.stats.Samples > 0 {
		a.stats.Mean = a.sum / float64(a.stats.Samples)
		a.stats.RMS = math.Sqrt(a.sumSq / float64(a.stats.Samples))
	}

	return a.stats
}

// InvSqrtConfig describes a sweep over raw operands [Start, End] at a
// common even scale, stepping by Step raw units (default 1).
type InvSqrtConfig struct {
	Scale int
	Start uint32
	End   uint32
	Step  uint32
}

func (cfg InvSqrtConfig) validate() error {
	if cfg.Start == 0 || cfg.End < cfg.Start {
		return ErrEmptyRange
	}

	if cfg.Scale&1 != 0 {
		return ErrOddScale
	}

	return nil
}

func (cfg InvSqrtConfig) step() uint32 {
	if cfg.Step == 0 {
		return 1
	}

	return cfg.Step
}

// InvSqrtSweep measures fix32.InvSqrt against 1/math.Sqrt across the
// configured range.
func InvSqrtSweep(cfg InvSqrtConfig) (Stats, error) {
	if err := cfg.validate(); err != nil {
		return Stats{}, err
	}

	return cfg.sweep(func(value float64) float64 {
		return 1 / math.Sqrt(value)
	}, func(val uint32) float64 {
		res, outScale := fix32.InvSqrt(val, cfg.Scale)
		return math.Ldexp(float64(res), -outScale)
	}), nil
}

// SqrtSweep measures fix32.Sqrt against math.Sqrt across the configured
// range.
func SqrtSweep(cfg InvSqrtConfig) (Stats, error) {
	if err := cfg.validate(); err != nil {
		return Stats{}, err
	}

	return cfg.sweep(math.Sqrt, func(val uint32) float64 {
		res, outScale := fix32.Sqrt(val, cfg.Scale)
		return math.Ldexp(float64(res), -outScale)
	}), nil
}

// FastSqrtBaseline measures the float64 fast approximation from
// algo-approx over the same range, reporting the error of
// 1/approx.FastSqrt against 1/math.Sqrt. It is the reference point for
// targets that could afford the float fast path instead of the
// fixed-point kernel.
func FastSqrtBaseline(cfg InvSqrtConfig) (Stats, error) {
	if err := cfg.validate(); err != nil {
		return Stats{}, err
	}

	return cfg.sweep(func(value float64) float64 {
		return 1 / math.Sqrt(value)
	}, func(val uint32) float64 {
		value := math.Ldexp(float64(val), -cfg.Scale)
		return 1 / approx.FastSqrt(value)
	}), nil
}

// sweep runs want and got over the operand range and accumulates
// relative-error statistics.
func (cfg InvSqrtConfig) sweep(want func(value float64) float64, got func(val uint32) float64) Stats {
	var acc accumulator

	step := cfg.step()

	for val := cfg.Start; ; {
		value := math.Ldexp(float64(val), -cfg.Scale)

		w := want(value)
		g := got(val)

		acc.add(math.Abs(g-w)/math.Abs(w), value)

		// unsigned guard against wrapping at the top of the range
		if cfg.End-val < step {
			break
		}

		val += step
	}

	return acc.finish()
}

// Atan2Config describes an angular sweep at a fixed radius: Steps points
// are placed uniformly on the circle and quantised to scale 2^Scale.
type Atan2Config struct {
	Scale  int
	Radius float64
	Steps  int
}

// Atan2Sweep measures fix32.Atan2 against math.Atan2 on a full circle.
// Errors are absolute, in radians, since the reference angle passes
// through zero. Grid points whose quantised coordinates collapse too
// close to the origin carry too few significant bits for the squared
// terms and are skipped.
func Atan2Sweep(cfg Atan2Config) (Stats, error) {
	if cfg.Steps <= 0 || cfg.Radius <= 0 {
		return Stats{}, ErrEmptyRange
	}

	xs := make([]float64, cfg.Steps)
	ys := make([]float64, cfg.Steps)

	for i := 0; i < cfg.Steps; i++ {
		phi := 2 * math.Pi * float64(i) / float64(cfg.Steps)

		xs[i] = float64(fix32.FromFloat64(cfg.Radius*math.Cos(phi), cfg.Scale).Raw)
		ys[i] = float64(fix32.FromFloat64(cfg.Radius*math.Sin(phi), cfg.Scale).Raw)
	}

	// squared radii of the quantised grid points
	radiiSq := make([]float64, cfg.Steps)
	vecmath.Power(radiiSq, xs, ys)

	const minRadiusSq = 1 << 40 // raw magnitude ~2^20 keeps the squares precise

	var acc accumulator

	for i := 0; i < cfg.Steps; i++ {
		if radiiSq[i] < minRadiusSq {
			continue
		}

		got := math.Ldexp(float64(fix32.Atan2(int32(ys[i]), int32(xs[i]), cfg.Scale)), -fix32.AngleScale)
		want := math.Atan2(ys[i], xs[i])

		acc.add(math.Abs(got-want), want)
	}

	if acc.stats.Samples == 0 {
		return Stats{}, ErrEmptyRange
	}

	return acc.finish(), nil
}
