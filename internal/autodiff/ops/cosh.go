package ops

import "math"

// Cosh is the hyperbolic cosine: y = cosh(x).
//
// Derivative:
//   - d(cosh(x))/dx = sinh(x)
var Cosh = Unary{
	Name:  "cosh",
	Eval:  math.Cosh,
	Deriv: math.Sinh,
}
