package vector

import (
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/ops"
)

// Apply maps an elementary rule over every entry.
func Apply(op ops.Unary, v *Vector) (*Vector, error) {
	return v.Map(func(d *forward.Dual) (*forward.Dual, error) { return forward.Apply(op, d) })
}

// Sin returns sin applied to every entry.
func Sin(v *Vector) (*Vector, error) { return v.Map(forward.Sin) }

// Cos returns cos applied to every entry.
func Cos(v *Vector) (*Vector, error) { return v.Map(forward.Cos) }

// Tan returns tan applied to every entry.
func Tan(v *Vector) (*Vector, error) { return v.Map(forward.Tan) }

// Arcsin returns arcsin applied to every entry.
func Arcsin(v *Vector) (*Vector, error) { return v.Map(forward.Arcsin) }

// Arccos returns arccos applied to every entry.
func Arccos(v *Vector) (*Vector, error) { return v.Map(forward.Arccos) }

// Arctan returns arctan applied to every entry.
func Arctan(v *Vector) (*Vector, error) { return v.Map(forward.Arctan) }

// Exp returns exp applied to every entry.
func Exp(v *Vector) (*Vector, error) { return v.Map(forward.Exp) }

// Log returns ln applied to every entry.
func Log(v *Vector) (*Vector, error) { return v.Map(forward.Log) }

// LogBase returns log_base applied to every entry.
func LogBase(v *Vector, base float64) (*Vector, error) {
	return v.Map(func(d *forward.Dual) (*forward.Dual, error) { return forward.LogBase(d, base) })
}

// Sinh returns sinh applied to every entry.
func Sinh(v *Vector) (*Vector, error) { return v.Map(forward.Sinh) }

// Cosh returns cosh applied to every entry.
func Cosh(v *Vector) (*Vector, error) { return v.Map(forward.Cosh) }

// Tanh returns tanh applied to every entry.
func Tanh(v *Vector) (*Vector, error) { return v.Map(forward.Tanh) }

// Sqrt returns sqrt applied to every entry.
func Sqrt(v *Vector) (*Vector, error) { return v.Map(forward.Sqrt) }

// Logistic returns the logistic function applied to every entry.
func Logistic(v *Vector) (*Vector, error) { return v.Map(forward.Logistic) }
