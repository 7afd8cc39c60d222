// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
	"github.com/superautodiff/superautodiff/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Params maps parameter names to their current values.
type Params = optim.Params

// ErrNotConverged is returned when an iteration budget runs out.
var ErrNotConverged = optim.ErrNotConverged

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Minimisation

// Objective records a scalar objective on a reverse-mode session.
type Objective = optim.Objective

// MinimizeConfig controls the descent loop.
type MinimizeConfig = optim.MinimizeConfig

// Step is one iteration of a minimisation trace.
type Step = optim.Step

// Result is the outcome of Minimize.
type Result = optim.Result

// Minimize runs opt from start using reverse-mode gradients of f.
func Minimize(f Objective, start Params, opt Optimizer, config MinimizeConfig) (Result, error) {
	return optim.Minimize(f, start, opt, config)
}

// Root finding

// NewtonConfig controls Newton iterations.
type NewtonConfig = optim.NewtonConfig

// Newton finds a root of a scalar function using forward-mode slopes.
func Newton(f func(x *forward.Dual) (*forward.Dual, error), x0 float64, config NewtonConfig) (float64, int, error) {
	return optim.Newton(f, x0, config)
}

// NewtonSystem finds a root of a square system using forward-mode Jacobians.
func NewtonSystem(f func(x *vector.Vector) (*vector.Vector, error), names []string, x0 []float64, config NewtonConfig) ([]float64, int, error) {
	return optim.NewtonSystem(f, names, x0, config)
}
