// Package optim implements gradient-based optimisation and root finding on
// top of the automatic differentiation engines.
//
// This package provides:
//   - Optimizer interface: Base interface for step rules over named scalars
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: gradient descent loop driven by reverse-mode gradients
//   - Newton, NewtonSystem: root finding driven by forward-mode derivatives
//
// Example usage:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	res, err := optim.Minimize(objective, optim.Params{"x": 1, "y": 2}, opt,
//	    optim.MinimizeConfig{MaxIter: 500, Tol: 1e-8})
package optim

import (
	"errors"
	"sort"

	"github.com/superautodiff/superautodiff/internal/autodiff"
)

// ErrNotConverged is returned when an iterative method exhausts its
// iteration budget before meeting its tolerance.
var ErrNotConverged = errors.New("did not converge")

// Params maps variable names to their current values.
type Params map[string]float64

// Clone returns a copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Names returns the parameter names, sorted.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates params in place from grads, which maps parameter names to
	// ∂objective/∂name (for example the adjoints of a reverse-mode pass).
	// Parameters missing from grads did not take part in the objective and
	// are left unchanged; a gradient for an unknown name is an error.
	Step(params Params, grads map[string]float64) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// checkGradients rejects gradients for names that are not parameters.
func checkGradients(op string, params Params, grads map[string]float64) error {
	for name := range grads {
		if _, ok := params[name]; !ok {
			return autodiff.NewError(op, autodiff.ErrKeyNotFound, name, "gradient for unknown parameter")
		}
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
