package catalog

import (
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
)

func init() {
	register(linear)
	register(rosenbrock)
	register(trig)
	register(neuron)
	register(inverseTrig)
	register(powers)
}

// linear: f = x1 + 2*x2 - 4*x3.
var linear = &Problem{
	Name:        "linear",
	Description: "x1 + 2*x2 - 4*x3",
	Vars:        []string{"x1", "x2", "x3"},
	Start:       []float64{4, 7, 3},
	Forward: func(x []*forward.Dual) (*forward.Dual, error) {
		return x[0].Add(x[1].MulConst(2)).Sub(x[2].MulConst(4)), nil
	},
	Reverse: func(_ *reverse.Session, x []*reverse.Node) (*reverse.Node, error) {
		return x[0].Add(x[1].MulConst(2)).Sub(x[2].MulConst(4)), nil
	},
}

// rosenbrock: f = (1-x)² + 100*(y-x²)², minimum 0 at (1, 1).
var rosenbrock = &Problem{
	Name:        "rosenbrock",
	Description: "(1-x)^2 + 100*(y-x^2)^2",
	Vars:        []string{"x", "y"},
	Start:       []float64{-1.2, 1},
	Forward: func(x []*forward.Dual) (*forward.Dual, error) {
		a := x[0].RSub(1).Pow(2)
		b := x[1].Sub(x[0].Pow(2)).Pow(2).MulConst(100)
		return a.Add(b), nil
	},
	Reverse: func(_ *reverse.Session, x []*reverse.Node) (*reverse.Node, error) {
		a := x[0].RSub(1).Pow(2)
		b := x[1].Sub(x[0].Pow(2)).Pow(2).MulConst(100)
		return a.Add(b), nil
	},
}

// trig: f = sin(x)*exp(y) - ln(x²+1) + sqrt(y).
var trig = &Problem{
	Name:        "trig",
	Description: "sin(x)*exp(y) - log(x^2+1) + sqrt(y)",
	Vars:        []string{"x", "y"},
	Start:       []float64{0.5, 1.5},
	Forward: func(x []*forward.Dual) (*forward.Dual, error) {
		s, err := forward.Sin(x[0])
		if err != nil {
			return nil, err
		}
		e, err := forward.Exp(x[1])
		if err != nil {
			return nil, err
		}
		l, err := forward.Log(x[0].Pow(2).AddConst(1))
		if err != nil {
			return nil, err
		}
		r, err := forward.Sqrt(x[1])
		if err != nil {
			return nil, err
		}
		return s.Mul(e).Sub(l).Add(r), nil
	},
	Reverse: func(_ *reverse.Session, x []*reverse.Node) (*reverse.Node, error) {
		s, err := reverse.Sin(x[0])
		if err != nil {
			return nil, err
		}
		e, err := reverse.Exp(x[1])
		if err != nil {
			return nil, err
		}
		l, err := reverse.Log(x[0].Pow(2).AddConst(1))
		if err != nil {
			return nil, err
		}
		r, err := reverse.Sqrt(x[1])
		if err != nil {
			return nil, err
		}
		return s.Mul(e).Sub(l).Add(r), nil
	},
}

// neuron: f = logistic(2w - b) + tanh(w*b) + sinh(w) - cosh(b).
var neuron = &Problem{
	Name:        "neuron",
	Description: "logistic(2*w - b) + tanh(w*b) + sinh(w) - cosh(b)",
	Vars:        []string{"w", "b"},
	Start:       []float64{0.8, -0.3},
	Forward: func(x []*forward.Dual) (*forward.Dual, error) {
		w, b := x[0], x[1]
		g, err := forward.Logistic(w.MulConst(2).Sub(b))
		if err != nil {
			return nil, err
		}
		t, err := forward.Tanh(w.Mul(b))
		if err != nil {
			return nil, err
		}
		sh, err := forward.Sinh(w)
		if err != nil {
			return nil, err
		}
		ch, err := forward.Cosh(b)
		if err != nil {
			return nil, err
		}
		return g.Add(t).Add(sh).Sub(ch), nil
	},
	Reverse: func(_ *reverse.Session, x []*reverse.Node) (*reverse.Node, error) {
		w, b := x[0], x[1]
		g, err := reverse.Logistic(w.MulConst(2).Sub(b))
		if err != nil {
			return nil, err
		}
		t, err := reverse.Tanh(w.Mul(b))
		if err != nil {
			return nil, err
		}
		sh, err := reverse.Sinh(w)
		if err != nil {
			return nil, err
		}
		ch, err := reverse.Cosh(b)
		if err != nil {
			return nil, err
		}
		return g.Add(t).Add(sh).Sub(ch), nil
	},
}

// inverseTrig: f = arcsin(x*y) + arccos(x) - arctan(y/x) + log10(y) + tan(x).
var inverseTrig = &Problem{
	Name:        "inverse-trig",
	Description: "arcsin(x*y) + arccos(x) - arctan(y/x) + log10(y) + tan(x)",
	Vars:        []string{"x", "y"},
	Start:       []float64{0.3, 0.6},
	Forward: func(x []*forward.Dual) (*forward.Dual, error) {
		as, err := forward.Arcsin(x[0].Mul(x[1]))
		if err != nil {
			return nil, err
		}
		ac, err := forward.Arccos(x[0])
		if err != nil {
			return nil, err
		}
		q, err := x[1].Div(x[0])
		if err != nil {
			return nil, err
		}
		at, err := forward.Arctan(q)
		if err != nil {
			return nil, err
		}
		lg, err := forward.LogBase(x[1], 10)
		if err != nil {
			return nil, err
		}
		tn, err := forward.Tan(x[0])
		if err != nil {
			return nil, err
		}
		return as.Add(ac).Sub(at).Add(lg).Add(tn), nil
	},
	Reverse: func(_ *reverse.Session, x []*reverse.Node) (*reverse.Node, error) {
		as, err := reverse.Arcsin(x[0].Mul(x[1]))
		if err != nil {
			return nil, err
		}
		ac, err := reverse.Arccos(x[0])
		if err != nil {
			return nil, err
		}
		q, err := x[1].Div(x[0])
		if err != nil {
			return nil, err
		}
		at, err := reverse.Arctan(q)
		if err != nil {
			return nil, err
		}
		lg, err := reverse.LogBase(x[1], 10)
		if err != nil {
			return nil, err
		}
		tn, err := reverse.Tan(x[0])
		if err != nil {
			return nil, err
		}
		return as.Add(ac).Sub(at).Add(lg).Add(tn), nil
	},
}

// powers: f = 2^x * x³ / (1 + y²) - cos(y).
var powers = &Problem{
	Name:        "powers",
	Description: "2^x * x^3 / (1 + y^2) - cos(y)",
	Vars:        []string{"x", "y"},
	Start:       []float64{1.5, 0.5},
	Forward: func(x []*forward.Dual) (*forward.Dual, error) {
		p, err := x[0].RPow(2)
		if err != nil {
			return nil, err
		}
		q, err := p.Mul(x[0].Pow(3)).Div(x[1].Pow(2).AddConst(1))
		if err != nil {
			return nil, err
		}
		c, err := forward.Cos(x[1])
		if err != nil {
			return nil, err
		}
		return q.Sub(c), nil
	},
	Reverse: func(_ *reverse.Session, x []*reverse.Node) (*reverse.Node, error) {
		p, err := x[0].RPow(2)
		if err != nil {
			return nil, err
		}
		q, err := p.Mul(x[0].Pow(3)).Div(x[1].Pow(2).AddConst(1))
		if err != nil {
			return nil, err
		}
		c, err := reverse.Cos(x[1])
		if err != nil {
			return nil, err
		}
		return q.Sub(c), nil
	},
}
