// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"fmt"

	"github.com/superautodiff/superautodiff/autodiff"
)

func ExampleNewDual() {
	x := autodiff.Must(autodiff.NewDual("x", 2))
	y := autodiff.Must(autodiff.NewDual("y", 3))
	f := x.Mul(y).Add(x.Pow(2)) // f = x*y + x²
	fmt.Println(f.Value(), f.Partial("x"), f.Partial("y"))
	// Output: 10 7 2
}

func ExampleEvaluate() {
	res, err := autodiff.Evaluate(func(s *autodiff.Session) (*autodiff.Node, error) {
		x1 := autodiff.Must(s.Var(4, "x1"))
		x2 := autodiff.Must(s.Var(7, "x2"))
		x3 := autodiff.Must(s.Var(3, "x3"))
		return x1.Add(x2.MulConst(2)).Sub(x3.MulConst(4)), nil
	}, "x1", "x2", "x3")
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Value, res.Adjoints["x1"], res.Adjoints["x2"], res.Adjoints["x3"])
	// Output: 6 1 2 -4
}

func ExampleVectorize() {
	v := autodiff.Must(autodiff.Vectorize([]string{"a", "b"}, []float64{1, 4}, nil))
	fmt.Println(v.Add(autodiff.ConstDual(2)))
	// Output: {a: 3 [a: 1], b: 6 [b: 1]}
}

func ExampleSqrt() {
	for _, x := range []autodiff.Value{
		autodiff.Const(9),
		autodiff.Must(autodiff.NewDual("x", 9)),
	} {
		y, err := autodiff.Sqrt(x)
		if err != nil {
			panic(err)
		}
		fmt.Println(y.Kind(), y)
	}

	_, err := autodiff.Sqrt(autodiff.Const(-1))
	fmt.Println(errors.Is(err, autodiff.ErrDomain))
	// Output:
	// const 3
	// forward 3 [x: 0.16666666666666666]
	// true
}
