// Package msb locates the even-aligned index of the most significant set
// bit of a 32-bit value.
//
// The even index is the position of the highest set bit rounded down to an
// even number. The inverse square root kernel uses it to normalise an
// operand into the mantissa interval [1,4) at scale 2^30: shifting left by
// (30 - index) places the leading one-or-two bits into bits 30/31.
//
// Two implementations exist, selected at build time:
//
//   - On targets with a fast leading-bit-count instruction (amd64, arm64,
//     riscv64) the index is computed in closed form from math/bits, which
//     compiles to a single instruction on those targets.
//   - Everywhere else, and under the purego build tag, a portable
//     bit-halving search narrows the candidate window by 16, 8, 4 and 2
//     bits per step.
//
// Both return identical results for every non-zero input. The result for
// zero is unspecified; callers must guarantee a non-zero operand.
package msb
