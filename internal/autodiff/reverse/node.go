package reverse

import (
	"strconv"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/ops"
)

// edge links a node to one direct parent.
type edge struct {
	parent  *Node
	partial float64 // Local derivative with respect to parent
}

// Node is one value on a Session tape.
//
// A node only knows the derivative with respect to its direct parents;
// derivatives with respect to leaves come from the backward pass.
type Node struct {
	session    *Session
	generation uint64
	index      int
	name       string
	value      float64
	leaf       bool
	parents    []edge
}

// Kind returns autodiff.KindReverse.
func (n *Node) Kind() autodiff.Kind { return autodiff.KindReverse }

// Value returns the value.
func (n *Node) Value() float64 { return n.value }

// Name returns the user-supplied or auto-generated name.
func (n *Node) Name() string { return n.name }

// IsLeaf reports whether n is an independent variable.
func (n *Node) IsLeaf() bool { return n.leaf }

// Index returns the position of n on the tape.
func (n *Node) Index() int { return n.index }

// Session returns the session n was recorded on.
func (n *Node) Session() *Session { return n.session }

// LocalPartials returns the derivative of n with respect to each direct
// parent. A leaf reports {n: 1}. A parent used twice (x*x) appears once with
// both contributions summed.
func (n *Node) LocalPartials() map[string]float64 {
	if n.leaf {
		return map[string]float64{n.name: 1}
	}
	out := make(map[string]float64, len(n.parents))
	for _, e := range n.parents {
		out[e.parent.name] += e.partial
	}
	return out
}

// String formats n as "name=value".
func (n *Node) String() string {
	return n.name + "=" + strconv.FormatFloat(n.value, 'g', -1, 64)
}

func (n *Node) row() Row {
	if n.leaf {
		return Row{Node: n.name, Parent1: n.name, Partial1: 1}
	}
	r := Row{Node: n.name}
	if len(n.parents) > 0 {
		r.Parent1, r.Partial1 = n.parents[0].parent.name, n.parents[0].partial
	}
	if len(n.parents) > 1 {
		r.Parent2, r.Partial2, r.HasParent2 = n.parents[1].parent.name, n.parents[1].partial, true
	}
	return r
}

// binary records a two-parent node.
func (n *Node) binary(op ops.Binary, other *Node) (*Node, error) {
	s := n.session
	s.owns(op.Name, n)
	s.owns(op.Name, other)
	value, da, db, err := op.Apply(n.value, other.value)
	if err != nil {
		return nil, autodiff.Label(err, other.name)
	}
	return s.derive(value, edge{n, da}, edge{other, db}), nil
}

// unary records a single-parent node.
func (n *Node) unary(op ops.Unary) (*Node, error) {
	s := n.session
	s.owns(op.Name, n)
	value, deriv, err := op.Apply(n.name, n.value)
	if err != nil {
		return nil, err
	}
	return s.derive(value, edge{n, deriv}), nil
}

// affine records value = a*n + b as a single-parent node with partial a.
func (n *Node) affine(op string, value, partial float64) *Node {
	n.session.owns(op, n)
	return n.session.derive(value, edge{n, partial})
}

func (n *Node) mustBinary(op ops.Binary, other *Node) *Node {
	out, err := n.binary(op, other)
	if err != nil {
		panic(err)
	}
	return out
}

// Add returns n + other.
func (n *Node) Add(other *Node) *Node { return n.mustBinary(ops.Add, other) }

// Sub returns n - other.
func (n *Node) Sub(other *Node) *Node { return n.mustBinary(ops.Sub, other) }

// Mul returns n * other.
func (n *Node) Mul(other *Node) *Node { return n.mustBinary(ops.Mul, other) }

// Div returns n / other. Fails with autodiff.ErrDivisionByZero when other is 0.
func (n *Node) Div(other *Node) (*Node, error) { return n.binary(ops.Div, other) }

// AddConst returns n + c.
func (n *Node) AddConst(c float64) *Node { return n.affine("add", n.value+c, 1) }

// SubConst returns n - c.
func (n *Node) SubConst(c float64) *Node { return n.affine("sub", n.value-c, 1) }

// RSub returns c - n.
func (n *Node) RSub(c float64) *Node { return n.affine("sub", c-n.value, -1) }

// MulConst returns c * n.
func (n *Node) MulConst(c float64) *Node { return n.affine("mul", n.value*c, c) }

// DivConst returns n / c.
func (n *Node) DivConst(c float64) (*Node, error) {
	if c == 0 {
		return nil, autodiff.ValueError("div", autodiff.ErrDivisionByZero, "", c)
	}
	return n.affine("div", n.value/c, 1/c), nil
}

// RDiv returns c / n.
func (n *Node) RDiv(c float64) (*Node, error) {
	if n.value == 0 {
		return nil, autodiff.ValueError("div", autodiff.ErrDivisionByZero, n.name, n.value)
	}
	return n.affine("div", c/n.value, -c/(n.value*n.value)), nil
}

// Neg returns -n.
func (n *Node) Neg() *Node { return n.affine("neg", -n.value, -1) }

// Reciprocal returns 1/n.
func (n *Node) Reciprocal() (*Node, error) { return n.unary(ops.Reciprocal) }

// Pow returns n^p for a constant exponent.
func (n *Node) Pow(p float64) *Node {
	out, _ := n.unary(ops.Pow(p))
	return out
}

// RPow returns base^n for a constant base > 0.
func (n *Node) RPow(base float64) (*Node, error) {
	op, err := ops.ExpBase(base)
	if err != nil {
		return nil, autodiff.Label(err, n.name)
	}
	return n.unary(op)
}
