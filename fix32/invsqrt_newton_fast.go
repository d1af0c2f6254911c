//go:build fastinvsqrt

package fix32

// invSqrtNewtonIters under the fastinvsqrt build tag: a single Newton
// step keeps the relative error below 1%, enough for coarse geometry on
// very constrained targets.
const invSqrtNewtonIters = 1
