// Package forward implements forward-mode automatic differentiation.
//
// A Dual carries a value together with the partial derivatives of that value
// with respect to every named variable it depends on. Each arithmetic
// operation and elementary function returns a new Dual whose partials follow
// from its operands' partials by the chain rule, so derivatives are available
// as soon as the expression has been evaluated.
//
// Usage:
//
//	x, _ := forward.New("x", 2)
//	y, _ := forward.New("y", 3)
//	f := x.Mul(y).Add(x.Pow(2)) // f = x*y + x²
//	f.Partial("x")              // y + 2x = 7
//	f.Partial("y")              // x = 2
package forward

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/superautodiff/superautodiff/internal/autodiff"
)

// Dual is an immutable forward-mode value.
//
// A variable absent from partials has an implicit partial derivative of 0.
type Dual struct {
	name     string
	value    float64
	partials map[string]float64
}

// New creates an independent variable with partials {name: 1}.
func New(name string, value float64) (*Dual, error) {
	return NewSeeded(name, value, 1)
}

// NewSeeded creates an independent variable with partials {name: seed}.
// A seed other than 1 computes a directional derivative.
func NewSeeded(name string, value, seed float64) (*Dual, error) {
	if strings.TrimSpace(name) == "" {
		return nil, autodiff.NewError("new", autodiff.ErrInvalidArgument, "", "variable name is empty")
	}
	if err := autodiff.CheckFinite("new", name, value); err != nil {
		return nil, err
	}
	if err := autodiff.CheckFinite("new", name, seed); err != nil {
		return nil, err
	}
	return &Dual{
		name:     name,
		value:    value,
		partials: map[string]float64{name: seed},
	}, nil
}

// Const creates a constant: a Dual with no partials.
func Const(c float64) *Dual {
	return &Dual{value: c, partials: map[string]float64{}}
}

// Kind returns autodiff.KindForward.
func (d *Dual) Kind() autodiff.Kind { return autodiff.KindForward }

// Value returns the value.
func (d *Dual) Value() float64 { return d.value }

// Name returns the variable name d was created under. Derived values inherit
// the name of their receiver operand; constants have an empty name.
func (d *Dual) Name() string { return d.name }

// IsConst reports whether d depends on no variable.
func (d *Dual) IsConst() bool { return len(d.partials) == 0 }

// Partial returns ∂d/∂name, 0 when d does not depend on name.
func (d *Dual) Partial(name string) float64 {
	return d.partials[name]
}

// Lookup returns ∂d/∂name and fails with autodiff.ErrKeyNotFound when name
// never took part in computing d.
func (d *Dual) Lookup(name string) (float64, error) {
	v, ok := d.partials[name]
	if !ok {
		return 0, autodiff.NewError("partial", autodiff.ErrKeyNotFound, name, "")
	}
	return v, nil
}

// Partials returns a copy of the partial derivative map.
func (d *Dual) Partials() map[string]float64 {
	out := make(map[string]float64, len(d.partials))
	for k, v := range d.partials {
		out[k] = v
	}
	return out
}

// Vars returns the variable names d depends on, sorted.
func (d *Dual) Vars() []string {
	vars := make([]string, 0, len(d.partials))
	for k := range d.partials {
		vars = append(vars, k)
	}
	sort.Strings(vars)
	return vars
}

// Rename returns a copy of d labelled with name. Partials are unchanged.
func (d *Dual) Rename(name string) *Dual {
	return &Dual{name: name, value: d.value, partials: d.partials}
}

// String formats d as "value [x: dx, y: dy]".
func (d *Dual) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(d.value, 'g', -1, 64))
	b.WriteString(" [")
	for i, k := range d.Vars() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, strconv.FormatFloat(d.partials[k], 'g', -1, 64))
	}
	b.WriteString("]")
	return b.String()
}
