// Package fix32 provides fixed-point arithmetic kernels for targets
// without (or with restricted) floating-point hardware.
//
// A fixed-point value is an integer raw paired with a scale exponent; the
// represented real value is raw / 2^scale. Operands are 32 bits wide and
// intermediate products 64 bits wide. The scale is usually implicit and
// fixed per call site; InvSqrt and Sqrt take and return an explicit scale
// because they adaptively pick the scale that preserves the most
// precision.
//
// # Operations
//
// Scale divides by a power of two with one of four round-to-nearest tie
// rules. Mul forms the exact 64-bit product of two operands and scales it
// down with rounding; MulChecked additionally reports products that do not
// fit 32 bits to a caller-supplied handler. InvSqrt approximates the
// inverse square root by cubic interpolation refined with Newton's method.
// Atan2 builds a quadrant-aware arctangent approximation on top of Mul and
// InvSqrt, returning angles at scale 2^28.
//
// # Accuracy Characteristics
//
// InvSqrt: relative error below 0.01% with the default two Newton
// iterations, below 1% with one iteration (fastinvsqrt build tag).
//
// Atan2: absolute error below ~0.005 rad across all octants, from the
// rational approximation atan(t) ≈ t / (1 + 0.28125 t²).
//
// # Configuration
//
// All configuration is fixed at build time. The Newton iteration count of
// InvSqrt is a build constant (two by default, one under the fastinvsqrt
// tag); the rounding mode and overflow handler of the multiply are
// explicit call-site parameters. Nothing is runtime-mutable, so every
// function is safe to call concurrently without synchronisation.
//
// # Preconditions
//
// InvSqrt and Sqrt are undefined for a zero operand: no inverse exists and
// the kernel does not check. Atan2 is likewise undefined at the origin.
// Violations are not detected or repaired; the caller upholds them.
package fix32
