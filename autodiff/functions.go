// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import "github.com/superautodiff/superautodiff/internal/autodiff/funcs"

// Elementary functions. Each accepts any Value variant and returns the same
// variant: a Const gives a Const, a *Dual a *Dual, and so on.

// Sin returns sin(x).
func Sin(x Value) (Value, error) { return funcs.Sin(x) }

// Cos returns cos(x).
func Cos(x Value) (Value, error) { return funcs.Cos(x) }

// Tan returns tan(x).
func Tan(x Value) (Value, error) { return funcs.Tan(x) }

// Arcsin returns arcsin(x) for x in [-1, 1].
func Arcsin(x Value) (Value, error) { return funcs.Arcsin(x) }

// Arccos returns arccos(x) for x in [-1, 1].
func Arccos(x Value) (Value, error) { return funcs.Arccos(x) }

// Arctan returns arctan(x).
func Arctan(x Value) (Value, error) { return funcs.Arctan(x) }

// Exp returns eˣ.
func Exp(x Value) (Value, error) { return funcs.Exp(x) }

// Log returns the natural logarithm of x > 0.
func Log(x Value) (Value, error) { return funcs.Log(x) }

// LogBase returns the base-b logarithm of x.
func LogBase(x Value, base float64) (Value, error) { return funcs.LogBase(x, base) }

// Sinh returns sinh(x).
func Sinh(x Value) (Value, error) { return funcs.Sinh(x) }

// Cosh returns cosh(x).
func Cosh(x Value) (Value, error) { return funcs.Cosh(x) }

// Tanh returns tanh(x).
func Tanh(x Value) (Value, error) { return funcs.Tanh(x) }

// Sqrt returns √x for x ≥ 0.
func Sqrt(x Value) (Value, error) { return funcs.Sqrt(x) }

// Logistic returns 1 / (1 + e⁻ˣ).
func Logistic(x Value) (Value, error) { return funcs.Logistic(x) }

// Apply calls the elementary function registered under name ("sin",
// "log", "logistic", ...).
func Apply(name string, x Value) (Value, error) { return funcs.ApplyNamed(name, x) }
