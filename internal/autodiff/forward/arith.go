package forward

import (
	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/ops"
)

// binary applies a two-operand rule. The result's partials are the union of
// both operands' keys, each key accumulating da*∂a/∂k + db*∂b/∂k.
func (d *Dual) binary(op ops.Binary, other *Dual) (*Dual, error) {
	value, da, db, err := op.Apply(d.value, other.value)
	if err != nil {
		return nil, autodiff.Label(err, other.name)
	}
	partials := make(map[string]float64, len(d.partials)+len(other.partials))
	for k, v := range d.partials {
		partials[k] += da * v
	}
	for k, v := range other.partials {
		partials[k] += db * v
	}
	return &Dual{name: d.name, value: value, partials: partials}, nil
}

// unary applies a one-operand rule: ∂f(d)/∂k = f'(d) * ∂d/∂k.
func (d *Dual) unary(op ops.Unary) (*Dual, error) {
	value, deriv, err := op.Apply(d.name, d.value)
	if err != nil {
		return nil, err
	}
	return d.scaled(value, deriv), nil
}

// scaled returns a Dual with the given value and d's partials times factor.
func (d *Dual) scaled(value, factor float64) *Dual {
	partials := make(map[string]float64, len(d.partials))
	for k, v := range d.partials {
		partials[k] = factor * v
	}
	return &Dual{name: d.name, value: value, partials: partials}
}

// mustBinary applies a rule that cannot fail.
func (d *Dual) mustBinary(op ops.Binary, other *Dual) *Dual {
	out, err := d.binary(op, other)
	if err != nil {
		panic(err)
	}
	return out
}

// Add returns d + other.
func (d *Dual) Add(other *Dual) *Dual {
	return d.mustBinary(ops.Add, other)
}

// Sub returns d - other.
func (d *Dual) Sub(other *Dual) *Dual {
	return d.mustBinary(ops.Sub, other)
}

// Mul returns d * other.
func (d *Dual) Mul(other *Dual) *Dual {
	return d.mustBinary(ops.Mul, other)
}

// Div returns d / other. It fails with autodiff.ErrDivisionByZero when
// other's value is exactly zero.
func (d *Dual) Div(other *Dual) (*Dual, error) {
	return d.binary(ops.Div, other)
}

// AddConst returns d + c.
func (d *Dual) AddConst(c float64) *Dual {
	return d.Add(Const(c))
}

// SubConst returns d - c.
func (d *Dual) SubConst(c float64) *Dual {
	return d.Sub(Const(c))
}

// RSub returns c - d.
func (d *Dual) RSub(c float64) *Dual {
	return Const(c).Sub(d).Rename(d.name)
}

// MulConst returns c * d.
func (d *Dual) MulConst(c float64) *Dual {
	return d.Mul(Const(c))
}

// DivConst returns d / c.
func (d *Dual) DivConst(c float64) (*Dual, error) {
	return d.Div(Const(c))
}

// RDiv returns c / d.
func (d *Dual) RDiv(c float64) (*Dual, error) {
	out, err := Const(c).Div(d)
	if err != nil {
		return nil, err
	}
	return out.Rename(d.name), nil
}

// Neg returns -d.
func (d *Dual) Neg() *Dual {
	return d.scaled(-d.value, -1)
}

// Reciprocal returns 1/d, with ∂(1/d)/∂k = -∂d/∂k / d².
func (d *Dual) Reciprocal() (*Dual, error) {
	return d.unary(ops.Reciprocal)
}

// Pow returns d^p for a constant exponent p.
func (d *Dual) Pow(p float64) *Dual {
	out, _ := d.unary(ops.Pow(p))
	return out
}

// RPow returns base^d for a constant base. It fails with
// autodiff.ErrInvalidArgument when base <= 0.
func (d *Dual) RPow(base float64) (*Dual, error) {
	op, err := ops.ExpBase(base)
	if err != nil {
		return nil, autodiff.Label(err, d.name)
	}
	return d.unary(op)
}
