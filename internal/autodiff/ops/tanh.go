package ops

import "math"

// Tanh is the hyperbolic tangent: y = tanh(x).
//
// Derivative:
//   - d(tanh(x))/dx = 1 / cosh²(x)
var Tanh = Unary{
	Name: "tanh",
	Eval: math.Tanh,
	Deriv: func(x float64) float64 {
		c := math.Cosh(x)
		return 1 / (c * c)
	},
}
