package ops

import "math"

// Arccos is the inverse cosine: y = arccos(x), defined for |x| <= 1.
//
// Derivative:
//   - d(arccos(x))/dx = -1 / sqrt(1 - x²)
var Arccos = Unary{
	Name: "arccos",
	Eval: math.Acos,
	Deriv: func(x float64) float64 {
		return -1 / math.Sqrt(1-x*x)
	},
	Domain: unitInterval,
}
