package optim

import (
	"fmt"
	"math"

	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
)

// Objective records a scalar objective on s. vars holds one leaf per
// parameter, keyed by parameter name.
type Objective func(s *reverse.Session, vars map[string]*reverse.Node) (*reverse.Node, error)

// MinimizeConfig controls the descent loop.
type MinimizeConfig struct {
	MaxIter int     // Iteration budget (default: 1000)
	Tol     float64 // Stop when the gradient's Euclidean norm falls below Tol (default: 1e-6)
}

// Step is one iteration of a minimisation trace.
type Step struct {
	Iter     int
	Value    float64
	GradNorm float64
}

// Result is the outcome of Minimize.
type Result struct {
	Params     Params
	Value      float64
	Iterations int
	GradNorm   float64
	Converged  bool
	Trace      []Step
}

// Minimize runs opt from start, computing each gradient with one scoped
// reverse-mode evaluation. It returns the last iterate; when the tolerance
// is not met within MaxIter the error wraps ErrNotConverged.
func Minimize(f Objective, start Params, opt Optimizer, config MinimizeConfig) (Result, error) {
	if config.MaxIter == 0 {
		config.MaxIter = 1000
	}
	if config.Tol == 0 {
		config.Tol = 1e-6
	}

	params := start.Clone()
	names := params.Names()
	session := reverse.NewSession()
	res := Result{Params: params}

	for iter := 1; iter <= config.MaxIter; iter++ {
		eval, err := session.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
			vars := make(map[string]*reverse.Node, len(names))
			for _, name := range names {
				n, err := s.Var(params[name], name)
				if err != nil {
					return nil, err
				}
				vars[name] = n
			}
			return f(s, vars)
		}, names...)
		if err != nil {
			return res, fmt.Errorf("iteration %d: %w", iter, err)
		}

		res.Value = eval.Value
		res.Iterations = iter
		res.GradNorm = norm(eval.Adjoints)
		res.Trace = append(res.Trace, Step{Iter: iter, Value: eval.Value, GradNorm: res.GradNorm})
		if res.GradNorm < config.Tol {
			res.Converged = true
			return res, nil
		}
		if err := opt.Step(params, eval.Adjoints); err != nil {
			return res, fmt.Errorf("iteration %d: %w", iter, err)
		}
	}
	return res, fmt.Errorf("minimize after %d iterations (gradient norm %g): %w",
		config.MaxIter, res.GradNorm, ErrNotConverged)
}

func norm(g map[string]float64) float64 {
	var sum float64
	for _, v := range g {
		sum += v * v
	}
	return math.Sqrt(sum)
}
