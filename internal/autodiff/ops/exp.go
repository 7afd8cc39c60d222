package ops

import (
	"math"

	"github.com/superautodiff/superautodiff/internal/autodiff"
)

// Exp is the natural exponential: y = exp(x).
//
// Derivative:
//   - d(exp(x))/dx = exp(x)
var Exp = Unary{
	Name:  "exp",
	Eval:  math.Exp,
	Deriv: math.Exp,
}

// ExpBase returns the exponential with a constant base: y = base^x.
//
// Derivative:
//   - d(base^x)/dx = base^x * ln(base)
//
// The base must be strictly positive.
func ExpBase(base float64) (Unary, error) {
	if !(base > 0) || math.IsInf(base, 0) {
		return Unary{}, autodiff.NewError("rpow", autodiff.ErrInvalidArgument, "",
			"base must be positive and finite, got "+formatFloat(base))
	}
	lnBase := math.Log(base)
	return Unary{
		Name: "rpow",
		Eval: func(x float64) float64 {
			return math.Pow(base, x)
		},
		Deriv: func(x float64) float64 {
			return math.Pow(base, x) * lnBase
		},
	}, nil
}
