package ops

import (
	"math"
	"strconv"

	"github.com/superautodiff/superautodiff/internal/autodiff"
)

// Ln is the natural logarithm: y = ln(x), defined for x > 0.
//
// Derivative:
//   - d(ln(x))/dx = 1 / x
var Ln = Unary{
	Name: "log",
	Eval: math.Log,
	Deriv: func(x float64) float64 {
		return 1 / x
	},
	Domain: positive,
}

// Log returns the logarithm in the given base: y = log_b(x).
//
// Derivative:
//   - d(log_b(x))/dx = 1 / (x * ln(b))
//
// The base must be positive and different from 1.
func Log(base float64) (Unary, error) {
	if base == math.E {
		return Ln, nil
	}
	if !(base > 0) || base == 1 || math.IsInf(base, 0) {
		return Unary{}, autodiff.NewError("log", autodiff.ErrInvalidArgument, "",
			"base must be positive, finite and not 1, got "+formatFloat(base))
	}
	lnBase := math.Log(base)
	return Unary{
		Name: "log",
		Eval: func(x float64) float64 {
			return math.Log(x) / lnBase
		},
		Deriv: func(x float64) float64 {
			return 1 / (x * lnBase)
		},
		Domain: positive,
	}, nil
}

func positive(x float64) bool {
	return x > 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
