//go:build !fastinvsqrt

package fix32

// invSqrtNewtonIters is the number of Newton-Raphson refinement steps
// applied to the cubic interpolation result. Each step roughly squares
// the number of correct bits; two steps bring the relative error below
// 0.01%. Build with the fastinvsqrt tag to trade accuracy for one fewer
// iteration. The count is fixed per compiled artifact; the two tag
// variants define the same constant, so configuring both at once cannot
// compile.
const invSqrtNewtonIters = 2
