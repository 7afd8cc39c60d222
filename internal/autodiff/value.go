// Package autodiff holds the pieces shared by the forward-mode, reverse-mode
// and vector engines: the operand variant tag and the error taxonomy.
//
// Architecture:
//   - ops: derivative table for the elementary functions and binary rules
//   - forward: Dual numbers carrying a value and named partials
//   - reverse: Session tape and Node values, adjoints via a backward pass
//   - vector: named collections of Dual values with broadcast arithmetic
//   - funcs: elementary functions dispatching over every Value variant
package autodiff

import (
	"math"
	"strconv"
)

// Kind tags the concrete variant of a Value.
type Kind int

// Value variants.
const (
	KindConst Kind = iota
	KindForward
	KindReverse
	KindVector
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindForward:
		return "forward"
	case KindReverse:
		return "reverse"
	case KindVector:
		return "vector"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is any operand accepted by the elementary functions.
// Implemented by Const, *forward.Dual, *reverse.Node and *vector.Vector.
type Value interface {
	Kind() Kind
}

// Const is a plain number with no derivative tracking.
type Const float64

// Kind returns KindConst.
func (Const) Kind() Kind { return KindConst }

// Float returns c as a float64.
func (c Const) Float() float64 { return float64(c) }

// CheckFinite rejects NaN and infinite inputs at construction time.
func CheckFinite(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ValueError(op, ErrInvalidArgument, name, v)
	}
	return nil
}
