package ops

import "math"

// Tan is the tangent function: y = tan(x).
//
// Derivative:
//   - d(tan(x))/dx = 1 / cos²(x)
var Tan = Unary{
	Name: "tan",
	Eval: math.Tan,
	Deriv: func(x float64) float64 {
		c := math.Cos(x)
		return 1 / (c * c)
	},
}
