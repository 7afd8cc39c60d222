package ops

import "github.com/superautodiff/superautodiff/internal/autodiff"

// Div is division: y = a / b.
//
// Local partials:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// A zero denominator fails with autodiff.ErrDivisionByZero instead of
// producing an infinity.
var Div = Binary{
	Name: "div",
	Eval: func(a, b float64) float64 {
		return a / b
	},
	Partials: func(a, b float64) (float64, float64) {
		return 1 / b, -a / (b * b)
	},
	Check: func(_, b float64) error {
		if b == 0 {
			return autodiff.ValueError("div", autodiff.ErrDivisionByZero, "", b)
		}
		return nil
	},
}

// Reciprocal is y = 1/x.
//
// Derivative:
//   - d(1/x)/dx = -1/x²
//
// x = 0 fails with autodiff.ErrDivisionByZero.
var Reciprocal = Unary{
	Name: "reciprocal",
	Eval: func(x float64) float64 {
		return 1 / x
	},
	Deriv: func(x float64) float64 {
		return -1 / (x * x)
	},
	Domain: func(x float64) bool {
		return x != 0
	},
	Fails: autodiff.ErrDivisionByZero,
}
