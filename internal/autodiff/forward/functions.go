package forward

import "github.com/superautodiff/superautodiff/internal/autodiff/ops"

// Apply evaluates an elementary rule on d.
func Apply(op ops.Unary, d *Dual) (*Dual, error) {
	return d.unary(op)
}

// Sin returns sin(d).
func Sin(d *Dual) (*Dual, error) { return d.unary(ops.Sin) }

// Cos returns cos(d).
func Cos(d *Dual) (*Dual, error) { return d.unary(ops.Cos) }

// Tan returns tan(d).
func Tan(d *Dual) (*Dual, error) { return d.unary(ops.Tan) }

// Arcsin returns arcsin(d). Fails with autodiff.ErrDomain when |d| > 1.
func Arcsin(d *Dual) (*Dual, error) { return d.unary(ops.Arcsin) }

// Arccos returns arccos(d). Fails with autodiff.ErrDomain when |d| > 1.
func Arccos(d *Dual) (*Dual, error) { return d.unary(ops.Arccos) }

// Arctan returns arctan(d).
func Arctan(d *Dual) (*Dual, error) { return d.unary(ops.Arctan) }

// Exp returns e^d.
func Exp(d *Dual) (*Dual, error) { return d.unary(ops.Exp) }

// Log returns ln(d). Fails with autodiff.ErrDomain when d <= 0.
func Log(d *Dual) (*Dual, error) { return d.unary(ops.Ln) }

// LogBase returns log_base(d).
func LogBase(d *Dual, base float64) (*Dual, error) {
	op, err := ops.Log(base)
	if err != nil {
		return nil, err
	}
	return d.unary(op)
}

// Sinh returns sinh(d).
func Sinh(d *Dual) (*Dual, error) { return d.unary(ops.Sinh) }

// Cosh returns cosh(d).
func Cosh(d *Dual) (*Dual, error) { return d.unary(ops.Cosh) }

// Tanh returns tanh(d).
func Tanh(d *Dual) (*Dual, error) { return d.unary(ops.Tanh) }

// Sqrt returns d^0.5. Fails with autodiff.ErrDomain when d < 0.
func Sqrt(d *Dual) (*Dual, error) { return d.unary(ops.Sqrt) }

// Logistic returns 1 / (1 + e^-d).
func Logistic(d *Dual) (*Dual, error) {
	e, err := Exp(d.Neg())
	if err != nil {
		return nil, err
	}
	return e.AddConst(1).Reciprocal()
}
