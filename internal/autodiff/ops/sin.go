package ops

import "math"

// Sin is the sine function: y = sin(x).
//
// Derivative:
//   - d(sin(x))/dx = cos(x)
var Sin = Unary{
	Name:  "sin",
	Eval:  math.Sin,
	Deriv: math.Cos,
}
