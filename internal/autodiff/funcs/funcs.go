// Package funcs provides the elementary functions for every operand variant.
//
// Each function pattern-matches the variant of its argument:
//   - autodiff.Const: the plain result, no derivative tracking
//   - *forward.Dual: a new Dual, partials scaled by f'(x)
//   - *reverse.Node: a new Node with one tape row, local partial f'(x)
//   - *vector.Vector: the Dual rule applied to every entry
package funcs

import (
	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/ops"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
)

// Apply evaluates the elementary rule op on x.
func Apply(op ops.Unary, x autodiff.Value) (autodiff.Value, error) {
	switch v := x.(type) {
	case autodiff.Const:
		y, _, err := op.Apply("", float64(v))
		if err != nil {
			return nil, err
		}
		return autodiff.Const(y), nil
	case *forward.Dual:
		d, err := forward.Apply(op, v)
		return value(d, err)
	case *reverse.Node:
		n, err := reverse.Apply(op, v)
		return value(n, err)
	case *vector.Vector:
		w, err := vector.Apply(op, v)
		return value(w, err)
	default:
		return nil, unsupported(op.Name, x)
	}
}

// ApplyNamed looks up a function by name (see ops.Names) and applies it.
func ApplyNamed(name string, x autodiff.Value) (autodiff.Value, error) {
	if name == "logistic" {
		return Logistic(x)
	}
	op, ok := ops.Lookup(name)
	if !ok {
		return nil, autodiff.NewError(name, autodiff.ErrInvalidArgument, "", "unknown function")
	}
	return Apply(op, x)
}

// Sin returns sin(x).
func Sin(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Sin, x) }

// Cos returns cos(x).
func Cos(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Cos, x) }

// Tan returns tan(x).
func Tan(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Tan, x) }

// Arcsin returns arcsin(x). Fails with autodiff.ErrDomain when |x| > 1.
func Arcsin(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Arcsin, x) }

// Arccos returns arccos(x). Fails with autodiff.ErrDomain when |x| > 1.
func Arccos(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Arccos, x) }

// Arctan returns arctan(x).
func Arctan(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Arctan, x) }

// Exp returns e^x.
func Exp(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Exp, x) }

// Log returns ln(x). Fails with autodiff.ErrDomain when x <= 0.
func Log(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Ln, x) }

// LogBase returns log_base(x).
func LogBase(x autodiff.Value, base float64) (autodiff.Value, error) {
	op, err := ops.Log(base)
	if err != nil {
		return nil, err
	}
	return Apply(op, x)
}

// Sinh returns sinh(x).
func Sinh(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Sinh, x) }

// Cosh returns cosh(x).
func Cosh(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Cosh, x) }

// Tanh returns tanh(x).
func Tanh(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Tanh, x) }

// Sqrt returns x^0.5. Fails with autodiff.ErrDomain when x < 0.
func Sqrt(x autodiff.Value) (autodiff.Value, error) { return Apply(ops.Sqrt, x) }

// Logistic returns 1 / (1 + e^-x).
func Logistic(x autodiff.Value) (autodiff.Value, error) {
	switch v := x.(type) {
	case autodiff.Const:
		return autodiff.Const(ops.Logistic(float64(v))), nil
	case *forward.Dual:
		d, err := forward.Logistic(v)
		return value(d, err)
	case *reverse.Node:
		n, err := reverse.Logistic(v)
		return value(n, err)
	case *vector.Vector:
		w, err := vector.Logistic(v)
		return value(w, err)
	default:
		return nil, unsupported("logistic", x)
	}
}

// value converts a typed result to a Value without producing a non-nil
// interface that holds a nil pointer.
func value[T autodiff.Value](v T, err error) (autodiff.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func unsupported(op string, x autodiff.Value) error {
	kind := "nil"
	if x != nil {
		kind = x.Kind().String()
	}
	return autodiff.NewError(op, autodiff.ErrInvalidArgument, "", "unsupported operand kind "+kind)
}
