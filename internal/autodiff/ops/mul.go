package ops

// Mul is multiplication: y = a * b.
//
// Local partials:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
var Mul = Binary{
	Name: "mul",
	Eval: func(a, b float64) float64 {
		return a * b
	},
	Partials: func(a, b float64) (float64, float64) {
		return b, a
	},
}
