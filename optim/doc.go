// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimisation and root finding driven
// by automatic differentiation.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Minimize: descent loop with reverse-mode gradients
//   - Newton, NewtonSystem: root finding with forward-mode derivatives
//
// # Basic Usage
//
//	objective := func(s *autodiff.Session, v map[string]*autodiff.Node) (*autodiff.Node, error) {
//	    x, y := v["x"], v["y"]
//	    // f = (1-x)² + 100(y-x²)²
//	    return x.RSub(1).Pow(2).Add(y.Sub(x.Pow(2)).Pow(2).MulConst(100)), nil
//	}
//
//	res, err := optim.Minimize(objective,
//	    optim.Params{"x": -1.2, "y": 1},
//	    optim.NewAdam(optim.AdamConfig{LR: 0.01}),
//	    optim.MinimizeConfig{MaxIter: 20000},
//	)
//
// # Optimizers
//
// Optimizers update named parameters in place from a gradient map such as
// autodiff.Result.Adjoints:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	params := optim.Params{"x": 1, "y": 2}
//	res, _ := autodiff.Evaluate(build, "x", "y")
//	sgd.Step(params, res.Adjoints)
//
// # Root Finding
//
//	// x³ - 2x - 5 = 0
//	root, iters, err := optim.Newton(func(x *autodiff.Dual) (*autodiff.Dual, error) {
//	    return x.Pow(3).Sub(x.MulConst(2)).SubConst(5), nil
//	}, 2, optim.NewtonConfig{})
package optim
