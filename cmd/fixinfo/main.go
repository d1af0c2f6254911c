// Command fixinfo prints accuracy measurements of the fixed-point
// arithmetic kernels.
//
// Usage:
//
//	fixinfo [flags]
//
// It sweeps the inverse square root, square root and atan2 kernels
// against float64 references and prints worst-case and aggregate errors,
// next to the floating-point fast-approximation baseline from
// algo-approx.
//
// Examples:
//
//	fixinfo
//	fixinfo -scale 16 -start 1024 -end 1048576 -step 17
//	fixinfo -spectrum 1024
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-fixed/measure/accuracy"
)

func main() {
	scale := flag.Int("scale", 16, "even input scale exponent for the square-root sweeps")
	start := flag.Uint64("start", 1<<10, "first raw operand of the sweep range")
	end := flag.Uint64("end", 1<<26, "last raw operand of the sweep range")
	step := flag.Uint64("step", 13, "raw operand stride of the sweep")
	radius := flag.Float64("radius", 100, "radius of the atan2 sweep circle")
	steps := flag.Int("steps", 3600, "number of atan2 sweep points on the circle")
	spectrum := flag.Int("spectrum", 0, "if > 0, also print the inverse-square-root error spectrum at this FFT size")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fixinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy measurements of the fixed-point kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := accuracy.InvSqrtConfig{
		Scale: *scale,
		Start: uint32(*start),
		End:   uint32(*end),
		Step:  uint32(*step),
	}

	type row struct {
		name   string
		metric string
		run    func() (accuracy.Stats, error)
	}

	rows := []row{
		{"invsqrt", "rel", func() (accuracy.Stats, error) { return accuracy.InvSqrtSweep(cfg) }},
		{"sqrt", "rel", func() (accuracy.Stats, error) { return accuracy.SqrtSweep(cfg) }},
		{"fastsqrt (float)", "rel", func() (accuracy.Stats, error) { return accuracy.FastSqrtBaseline(cfg) }},
		{"atan2", "rad", func() (accuracy.Stats, error) {
			return accuracy.Atan2Sweep(accuracy.Atan2Config{
				Scale:  *scale,
				Radius: *radius,
				Steps:  *steps,
			})
		}},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSamples\tMax\tMean\tRMS\tWorst At\tMetric\n")
	fmt.Fprintf(tw, "------\t-------\t---\t----\t---\t--------\t------\n")

	for _, r := range rows {
		stats, err := r.run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s sweep failed: %v\n", r.name, err)
			os.Exit(1)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.3e\t%.3e\t%.3e\t%.6g\t%s\n",
			r.name, stats.Samples, stats.Max, stats.Mean, stats.RMS, stats.WorstAt, r.metric)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}

	if *spectrum > 0 {
		printSpectrum(cfg, *spectrum)
	}
}

// printSpectrum prints the error spectrum as relative bin energy in dB,
// grouped into a handful of frequency bands. Smooth interpolation error
// concentrates in the lowest band; derivative discontinuities would lift
// the upper bands.
func printSpectrum(cfg accuracy.InvSqrtConfig, fftSize int) {
	mag, err := accuracy.ErrorSpectrum(cfg, fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: spectrum failed: %v\n", err)
		os.Exit(1)
	}

	total := 0.0
	for _, m := range mag {
		total += m * m
	}

	if total == 0 {
		fmt.Println("\nerror spectrum: no measurable error")
		return
	}

	const bands = 8

	fmt.Printf("\nInverse-square-root error spectrum (%d bins, %d bands):\n", len(mag), bands)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tBins\tEnergy [dB]\n")

	for b := 0; b < bands; b++ {
		lo := b * len(mag) / bands
		hi := (b + 1) * len(mag) / bands

		energy := 0.0
		for _, m := range mag[lo:hi] {
			energy += m * m
		}

		db := 10 * math.Log10(energy/total+1e-300)
		fmt.Fprintf(tw, "%d\t%d-%d\t%.1f\n", b, lo, hi-1, db)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}
