package ops

import "math"

// Pow returns the power function with a constant exponent: y = x^p.
//
// Derivative:
//   - d(x^p)/dx = p * x^(p-1)
//
// No domain check is applied: negative bases with fractional exponents
// yield NaN, and x = 0 with p < 1 yields an infinite derivative, following
// math.Pow.
func Pow(p float64) Unary {
	return Unary{
		Name: "pow",
		Eval: func(x float64) float64 {
			return math.Pow(x, p)
		},
		Deriv: func(x float64) float64 {
			if p == 0 {
				return 0
			}
			return p * math.Pow(x, p-1)
		},
	}
}

// Sqrt is x^0.5, differentiated with the power rule.
// Negative arguments are rejected instead of producing NaN.
var Sqrt = Unary{
	Name:  "sqrt",
	Eval:  math.Sqrt,
	Deriv: Pow(0.5).Deriv,
	Domain: func(x float64) bool {
		return x >= 0
	},
}
