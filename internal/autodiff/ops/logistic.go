package ops

import "math"

// Logistic evaluates 1 / (1 + exp(-x)) on a plain number.
//
// The differentiable variants build the same expression out of exp, add and
// reciprocal so that no dedicated derivative rule is needed.
func Logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
