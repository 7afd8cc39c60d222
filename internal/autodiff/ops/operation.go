// Package ops defines the local derivative rules shared by the forward-mode
// and reverse-mode engines.
//
// Each rule knows how to evaluate itself and how to produce the derivative
// with respect to each of its direct operands. Propagating those local
// derivatives (chain rule in forward mode, adjoint accumulation in reverse
// mode) is the caller's job.
//
// Supported rules:
//   - Unary: sin, cos, tan, arcsin, arccos, arctan, exp, log, sinh, cosh,
//     tanh, power with a constant exponent, power with a constant base
//   - Binary: add (d(a+b)/da = 1, d(a+b)/db = 1), sub, mul, div
package ops

import "github.com/superautodiff/superautodiff/internal/autodiff"

// Unary is a differentiable function of one operand.
type Unary struct {
	// Name identifies the function in errors and tape dumps.
	Name string

	// Eval computes f(x).
	Eval func(x float64) float64

	// Deriv computes f'(x).
	Deriv func(x float64) float64

	// Domain rejects arguments outside the function's domain.
	// A nil Domain accepts every real number.
	Domain func(x float64) bool

	// Fails is the error kind reported when Domain rejects an argument.
	// Defaults to autodiff.ErrDomain.
	Fails error
}

// Apply returns f(x) and f'(x). The operand name is only used to label a
// domain error.
func (u Unary) Apply(operand string, x float64) (value, deriv float64, err error) {
	if u.Domain != nil && !u.Domain(x) {
		kind := u.Fails
		if kind == nil {
			kind = autodiff.ErrDomain
		}
		return 0, 0, autodiff.ValueError(u.Name, kind, operand, x)
	}
	return u.Eval(x), u.Deriv(x), nil
}

// Binary is a differentiable function of two operands.
type Binary struct {
	Name string

	// Eval computes f(a, b).
	Eval func(a, b float64) float64

	// Partials computes ∂f/∂a and ∂f/∂b at (a, b).
	Partials func(a, b float64) (da, db float64)

	// Check rejects operand values the rule cannot handle. Nil accepts all.
	Check func(a, b float64) error
}

// Apply returns f(a, b) together with both local partials.
func (op Binary) Apply(a, b float64) (value, da, db float64, err error) {
	if op.Check != nil {
		if err := op.Check(a, b); err != nil {
			return 0, 0, 0, err
		}
	}
	da, db = op.Partials(a, b)
	return op.Eval(a, b), da, db, nil
}
