// Package jacobian assembles first-derivative matrices from differentiated
// outputs.
//
// Row i, column j of every matrix holds ∂output_i/∂variable_j; a variable an
// output does not depend on contributes 0.
package jacobian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
)

// FromDuals builds the Jacobian of forward-mode outputs.
func FromDuals(vars []string, outputs []*forward.Dual) (*mat.Dense, error) {
	if err := check(vars, len(outputs)); err != nil {
		return nil, err
	}
	jac := mat.NewDense(len(outputs), len(vars), nil)
	for i, out := range outputs {
		if out == nil {
			return nil, autodiff.NewError("jacobian", autodiff.ErrInvalidArgument, "", "nil output")
		}
		for j, name := range vars {
			jac.Set(i, j, out.Partial(name))
		}
	}
	return jac, nil
}

// FromVector builds the Jacobian of every entry of v, in entry order.
func FromVector(vars []string, v *vector.Vector) (*mat.Dense, error) {
	if v == nil {
		return nil, autodiff.NewError("jacobian", autodiff.ErrInvalidArgument, "", "nil vector")
	}
	return FromDuals(vars, v.Entries())
}

// FromGradients stacks one gradient map per output, as produced by a
// reverse-mode pass per output.
func FromGradients(vars []string, grads []map[string]float64) (*mat.Dense, error) {
	if err := check(vars, len(grads)); err != nil {
		return nil, err
	}
	jac := mat.NewDense(len(grads), len(vars), nil)
	for i, g := range grads {
		for j, name := range vars {
			jac.Set(i, j, g[name])
		}
	}
	return jac, nil
}

// Gradient returns the single-output gradient of out as a vector ordered
// like vars.
func Gradient(vars []string, out *forward.Dual) (*mat.VecDense, error) {
	if err := check(vars, 1); err != nil {
		return nil, err
	}
	g := mat.NewVecDense(len(vars), nil)
	for j, name := range vars {
		g.SetVec(j, out.Partial(name))
	}
	return g, nil
}

func check(vars []string, outputs int) error {
	if outputs == 0 {
		return autodiff.NewError("jacobian", autodiff.ErrInvalidArgument, "", "no outputs")
	}
	if len(vars) == 0 {
		return autodiff.NewError("jacobian", autodiff.ErrInvalidArgument, "", "no variables")
	}
	return nil
}
