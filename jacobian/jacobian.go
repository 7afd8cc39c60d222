// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package jacobian assembles derivative matrices from forward-mode duals,
// vectors and reverse-mode gradients into gonum matrices.
//
// Row i holds the partials of output i; column j the partials with respect
// to vars[j]. A variable an output does not depend on gives 0.
//
// Example:
//
//	x := autodiff.Must(autodiff.Vectorize([]string{"x", "y"}, []float64{1, 2}, nil))
//	j, err := jacobian.FromVector([]string{"x", "y"}, x.Pow(2))
//	// j = [[2 0] [0 4]]
package jacobian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
	"github.com/superautodiff/superautodiff/internal/jacobian"
	"github.com/superautodiff/superautodiff/internal/parallel"
)

// FromDuals returns the len(outputs)×len(vars) Jacobian of outputs.
func FromDuals(vars []string, outputs []*forward.Dual) (*mat.Dense, error) {
	return jacobian.FromDuals(vars, outputs)
}

// FromVector returns the Jacobian of the entries of v, in v's order.
func FromVector(vars []string, v *vector.Vector) (*mat.Dense, error) {
	return jacobian.FromVector(vars, v)
}

// FromGradients stacks reverse-mode gradients, one output per row.
func FromGradients(vars []string, grads []map[string]float64) (*mat.Dense, error) {
	return jacobian.FromGradients(vars, grads)
}

// Gradient returns the gradient of a single output as a column vector.
func Gradient(vars []string, out *forward.Dual) (*mat.VecDense, error) {
	return jacobian.Gradient(vars, out)
}

// FromReverse builds the Jacobian with one reverse-mode pass per output,
// running the passes concurrently on separate sessions. Each builder must
// record every name in vars as a leaf.
func FromReverse(vars []string, outputs []reverse.BuildFunc) (*mat.Dense, error) {
	return jacobian.FromReverse(vars, outputs, parallel.DefaultConfig())
}
