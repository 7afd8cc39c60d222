package ops

import "math"

// Arctan is the inverse tangent: y = arctan(x).
//
// Derivative:
//   - d(arctan(x))/dx = 1 / (1 + x²)
var Arctan = Unary{
	Name: "arctan",
	Eval: math.Atan,
	Deriv: func(x float64) float64 {
		return 1 / (1 + x*x)
	},
}
