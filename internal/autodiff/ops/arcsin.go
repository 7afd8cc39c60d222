package ops

import "math"

// Arcsin is the inverse sine: y = arcsin(x), defined for |x| <= 1.
//
// Derivative:
//   - d(arcsin(x))/dx = 1 / sqrt(1 - x²)
//
// The derivative is infinite at x = ±1.
var Arcsin = Unary{
	Name: "arcsin",
	Eval: math.Asin,
	Deriv: func(x float64) float64 {
		return 1 / math.Sqrt(1-x*x)
	},
	Domain: unitInterval,
}

// unitInterval accepts x in [-1, 1].
func unitInterval(x float64) bool {
	return x >= -1 && x <= 1
}
