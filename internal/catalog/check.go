package catalog

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

var nanValue = math.NaN()

// CheckResult compares the two AD modes with a finite-difference estimate.
type CheckResult struct {
	Point   []float64
	Value   float64
	Forward []float64 // ∂f/∂x_i from forward mode, in Vars order
	Reverse []float64 // ∂f/∂x_i from reverse mode
	Numeric []float64 // Central finite differences
	Rows    int       // Reverse-mode tape length

	// ModeErr is the largest |forward - reverse|; both are exact, so it
	// should be at rounding level.
	ModeErr float64

	// NumericErr is the largest |forward - numeric|, bounded by the
	// finite-difference truncation error.
	NumericErr float64
}

// Check evaluates p at x (nil means p.Start) in both modes and against
// central finite differences with the given step (0 selects gonum's default).
func (p *Problem) Check(x []float64, step float64) (*CheckResult, error) {
	x, err := p.point(x)
	if err != nil {
		return nil, err
	}
	fwd, err := p.EvalForward(x)
	if err != nil {
		return nil, err
	}
	rev, err := p.EvalReverse(x)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{
		Point:   append([]float64(nil), x...),
		Value:   fwd.Value(),
		Forward: make([]float64, len(p.Vars)),
		Reverse: make([]float64, len(p.Vars)),
		Rows:    len(rev.Tape),
	}
	res.Numeric = fd.Gradient(nil, p.Value, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	for i, name := range p.Vars {
		res.Forward[i] = fwd.Partial(name)
		res.Reverse[i] = rev.Adjoints[name]
		res.ModeErr = math.Max(res.ModeErr, math.Abs(res.Forward[i]-res.Reverse[i]))
		res.NumericErr = math.Max(res.NumericErr, math.Abs(res.Forward[i]-res.Numeric[i]))
	}
	return res, nil
}
