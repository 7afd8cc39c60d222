package ops

import "math"

// Cos is the cosine function: y = cos(x).
//
// Derivative:
//   - d(cos(x))/dx = -sin(x)
var Cos = Unary{
	Name: "cos",
	Eval: math.Cos,
	Deriv: func(x float64) float64 {
		return -math.Sin(x)
	},
}
