// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides forward-mode and reverse-mode automatic
// differentiation of scalar expressions.
//
// Forward mode propagates a value together with named partial derivatives
// through every operation. Reverse mode records each operation on the tape
// of a Session and recovers all partials with one backward pass.
//
// Example (forward mode):
//
//	x := autodiff.Must(autodiff.NewDual("x", 2))
//	y := autodiff.Must(autodiff.NewDual("y", 3))
//	f := x.Mul(y).Add(x.Pow(2)) // f = x*y + x²
//	f.Partial("x")              // 7
//	f.Partial("y")              // 2
//
// Example (reverse mode):
//
//	res, err := autodiff.Evaluate(func(s *autodiff.Session) (*autodiff.Node, error) {
//	    x1, _ := s.Var(4, "x1")
//	    x2, _ := s.Var(7, "x2")
//	    x3, _ := s.Var(3, "x3")
//	    return x1.Add(x2.MulConst(2)).Sub(x3.MulConst(4)), nil
//	}, "x1", "x2", "x3")
//	// res.Adjoints == {x1: 1, x2: 2, x3: -4}
package autodiff

import (
	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
)

// Value is any operand accepted by the elementary functions:
// Const, *Dual, *Node or *Vector.
type Value = autodiff.Value

// Kind tags the concrete variant of a Value.
type Kind = autodiff.Kind

// Value variants.
const (
	KindConst   = autodiff.KindConst
	KindForward = autodiff.KindForward
	KindReverse = autodiff.KindReverse
	KindVector  = autodiff.KindVector
)

// Const is a plain number with no derivative tracking.
type Const = autodiff.Const

// Error describes a failed operation. Use errors.Is against the sentinels.
type Error = autodiff.Error

// Sentinel errors.
var (
	ErrInvalidArgument = autodiff.ErrInvalidArgument
	ErrLengthMismatch  = autodiff.ErrLengthMismatch
	ErrDuplicateKey    = autodiff.ErrDuplicateKey
	ErrDomain          = autodiff.ErrDomain
	ErrDivisionByZero  = autodiff.ErrDivisionByZero
	ErrKeyNotFound     = autodiff.ErrKeyNotFound
)

// Forward mode

// Dual is a forward-mode scalar: a value and its partials by variable name.
type Dual = forward.Dual

// NewDual creates an independent variable with ∂name/∂name = 1.
func NewDual(name string, value float64) (*Dual, error) {
	return forward.New(name, value)
}

// NewSeededDual creates a variable with an explicit seed derivative.
func NewSeededDual(name string, value, seed float64) (*Dual, error) {
	return forward.NewSeeded(name, value, seed)
}

// ConstDual lifts c to a Dual with no partials.
func ConstDual(c float64) *Dual {
	return forward.Const(c)
}

// Reverse mode

// Session owns a reverse-mode tape.
type Session = reverse.Session

// Node is a reverse-mode scalar recorded on a Session.
type Node = reverse.Node

// Row is one tape entry.
type Row = reverse.Row

// Result is the outcome of a scoped reverse-mode evaluation.
type Result = reverse.Result

// BuildFunc records an expression on a session.
type BuildFunc = reverse.BuildFunc

// NewSession creates a session with an empty tape.
func NewSession() *Session {
	return reverse.NewSession()
}

// Evaluate builds an expression on a fresh session, runs the backward pass
// and returns the adjoints of targets (every leaf when targets is empty).
func Evaluate(build BuildFunc, targets ...string) (Result, error) {
	return reverse.Evaluate(build, targets...)
}

// Vectors

// Vector is an ordered, name-keyed collection of Duals.
type Vector = vector.Vector

// NewVector keys entries by their names.
func NewVector(entries ...*Dual) (*Vector, error) {
	return vector.New(entries...)
}

// NewNamedVector keys entries by the given names.
func NewNamedVector(names []string, entries []*Dual) (*Vector, error) {
	return vector.NewNamed(names, entries)
}

// Vectorize creates one independent variable per name. A nil seeds slice
// seeds every variable with 1.
func Vectorize(names []string, values, seeds []float64) (*Vector, error) {
	return vector.Vectorize(names, values, seeds)
}

// Must returns v or panics with err. Intended for examples and tests.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
