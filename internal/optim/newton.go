package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
	"github.com/superautodiff/superautodiff/internal/jacobian"
)

// NewtonConfig controls Newton iterations.
type NewtonConfig struct {
	MaxIter int     // Iteration budget (default: 100)
	Tol     float64 // Stop when |f(x)| (or ‖F(x)‖) falls below Tol (default: 1e-10)
}

func (c *NewtonConfig) defaults() {
	if c.MaxIter == 0 {
		c.MaxIter = 100
	}
	if c.Tol == 0 {
		c.Tol = 1e-10
	}
}

// Newton finds a root of f starting at x0:
//
//	x_{k+1} = x_k - f(x_k) / f'(x_k)
//
// f'(x_k) comes from a forward-mode pass; a zero derivative fails with
// autodiff.ErrDivisionByZero.
func Newton(f func(x *forward.Dual) (*forward.Dual, error), x0 float64, config NewtonConfig) (float64, int, error) {
	config.defaults()
	x := x0
	for iter := 1; iter <= config.MaxIter; iter++ {
		xd, err := forward.New("x", x)
		if err != nil {
			return x, iter, fmt.Errorf("newton: %w", err)
		}
		y, err := f(xd)
		if err != nil {
			return x, iter, fmt.Errorf("newton: iteration %d: %w", iter, err)
		}
		if math.Abs(y.Value()) < config.Tol {
			return x, iter, nil
		}
		slope := y.Partial("x")
		if slope == 0 {
			return x, iter, autodiff.ValueError("newton", autodiff.ErrDivisionByZero, "x", x)
		}
		x -= y.Value() / slope
	}
	return x, config.MaxIter, fmt.Errorf("newton after %d iterations: %w", config.MaxIter, ErrNotConverged)
}

// NewtonSystem finds a root of F: Rⁿ → Rⁿ starting at x0, solving
// J(x_k) Δ = -F(x_k) at each step. F receives a Vector of independent
// variables named like x0 and must return n outputs.
func NewtonSystem(f func(x *vector.Vector) (*vector.Vector, error), names []string, x0 []float64, config NewtonConfig) ([]float64, int, error) {
	config.defaults()
	x := append([]float64(nil), x0...)
	for iter := 1; iter <= config.MaxIter; iter++ {
		in, err := vector.Vectorize(names, x, nil)
		if err != nil {
			return x, iter, fmt.Errorf("newton system: %w", err)
		}
		out, err := f(in)
		if err != nil {
			return x, iter, fmt.Errorf("newton system: iteration %d: %w", iter, err)
		}
		if out.Len() != len(names) {
			return x, iter, autodiff.NewError("newton system", autodiff.ErrLengthMismatch, "",
				fmt.Sprintf("%d outputs for %d variables", out.Len(), len(names)))
		}

		residual := mat.NewVecDense(out.Len(), out.Values())
		if mat.Norm(residual, 2) < config.Tol {
			return x, iter, nil
		}
		jac, err := jacobian.FromVector(names, out)
		if err != nil {
			return x, iter, err
		}
		var delta mat.VecDense
		if err := delta.SolveVec(jac, residual); err != nil {
			return x, iter, fmt.Errorf("newton system: iteration %d: singular jacobian: %w", iter, err)
		}
		for i := range x {
			x[i] -= delta.AtVec(i)
		}
	}
	return x, config.MaxIter, fmt.Errorf("newton system after %d iterations: %w", config.MaxIter, ErrNotConverged)
}
