package ops

import "math"

// Sinh is the hyperbolic sine: y = sinh(x).
//
// Derivative:
//   - d(sinh(x))/dx = cosh(x)
var Sinh = Unary{
	Name:  "sinh",
	Eval:  math.Sinh,
	Deriv: math.Cosh,
}
