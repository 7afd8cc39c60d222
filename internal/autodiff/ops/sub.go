package ops

// Sub is subtraction: y = a - b.
//
// Local partials:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
var Sub = Binary{
	Name: "sub",
	Eval: func(a, b float64) float64 {
		return a - b
	},
	Partials: func(_, _ float64) (float64, float64) {
		return 1, -1
	},
}
