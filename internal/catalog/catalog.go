// Package catalog is a registry of named benchmark expressions, each written
// once for forward mode and once for reverse mode, used by the command line
// tool and by cross-mode tests.
package catalog

import (
	"sort"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/optim"
)

// Problem is a scalar function of named variables.
type Problem struct {
	Name        string
	Description string
	Vars        []string
	Start       []float64 // Default evaluation point

	// Forward builds the expression from one Dual per variable, in Vars order.
	Forward func(x []*forward.Dual) (*forward.Dual, error)

	// Reverse records the expression on s from one leaf per variable.
	Reverse func(s *reverse.Session, x []*reverse.Node) (*reverse.Node, error)
}

var registry = map[string]*Problem{}

func register(p *Problem) {
	if _, dup := registry[p.Name]; dup {
		panic("catalog: duplicate problem " + p.Name)
	}
	registry[p.Name] = p
}

// Get returns the problem registered under name.
func Get(name string) (*Problem, error) {
	p, ok := registry[name]
	if !ok {
		return nil, autodiff.NewError("catalog", autodiff.ErrKeyNotFound, name, "unknown problem")
	}
	return p, nil
}

// Names returns the registered problem names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// point validates x against p and defaults it to p.Start.
func (p *Problem) point(x []float64) ([]float64, error) {
	if x == nil {
		return p.Start, nil
	}
	if len(x) != len(p.Vars) {
		return nil, autodiff.NewError(p.Name, autodiff.ErrLengthMismatch, "",
			"point has wrong number of coordinates")
	}
	return x, nil
}

// EvalForward evaluates p at x (nil means p.Start) in forward mode.
func (p *Problem) EvalForward(x []float64) (*forward.Dual, error) {
	x, err := p.point(x)
	if err != nil {
		return nil, err
	}
	vars := make([]*forward.Dual, len(p.Vars))
	for i, name := range p.Vars {
		if vars[i], err = forward.New(name, x[i]); err != nil {
			return nil, err
		}
	}
	return p.Forward(vars)
}

// EvalReverse evaluates p at x in reverse mode on a fresh scoped session.
func (p *Problem) EvalReverse(x []float64) (reverse.Result, error) {
	x, err := p.point(x)
	if err != nil {
		return reverse.Result{}, err
	}
	return reverse.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
		vars := make([]*reverse.Node, len(p.Vars))
		for i, name := range p.Vars {
			n, err := s.Var(x[i], name)
			if err != nil {
				return nil, err
			}
			vars[i] = n
		}
		return p.Reverse(s, vars)
	}, p.Vars...)
}

// Value evaluates p at x without derivatives. Errors become NaN so the
// function can be handed to numerical routines.
func (p *Problem) Value(x []float64) float64 {
	vars := make([]*forward.Dual, len(x))
	for i, v := range x {
		vars[i] = forward.Const(v)
	}
	y, err := p.Forward(vars)
	if err != nil {
		return nanValue
	}
	return y.Value()
}

// Objective adapts p to optim.Minimize.
func (p *Problem) Objective() optim.Objective {
	return func(s *reverse.Session, vars map[string]*reverse.Node) (*reverse.Node, error) {
		x := make([]*reverse.Node, len(p.Vars))
		for i, name := range p.Vars {
			n, ok := vars[name]
			if !ok {
				return nil, autodiff.NewError(p.Name, autodiff.ErrKeyNotFound, name, "missing parameter")
			}
			x[i] = n
		}
		return p.Reverse(s, x)
	}
}

// Params returns x (nil means p.Start) keyed by variable name.
func (p *Problem) Params(x []float64) (optim.Params, error) {
	x, err := p.point(x)
	if err != nil {
		return nil, err
	}
	params := make(optim.Params, len(p.Vars))
	for i, name := range p.Vars {
		params[name] = x[i]
	}
	return params, nil
}
