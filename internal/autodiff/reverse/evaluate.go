package reverse

import (
	"fmt"

	"github.com/superautodiff/superautodiff/internal/autodiff"
)

// Result is the outcome of one scoped evaluation.
type Result struct {
	Value    float64            // Output value
	Output   string             // Output node name
	Adjoints map[string]float64 // ∂output/∂leaf for the requested leaves
	Tape     []Row              // Snapshot of the tape before it was cleared
}

// BuildFunc records an expression on s and returns its output node.
type BuildFunc func(s *Session) (*Node, error)

// Evaluate runs one complete reverse-mode pass on s: it takes exclusive use
// of the session, clears the tape, builds the expression, runs the backward
// pass and clears the tape again. The final clear happens on every exit path,
// including build errors and session-misuse panics, which are returned as
// errors.
func (s *Session) Evaluate(build BuildFunc, targets ...string) (res Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Clear()
	defer s.Clear()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(*autodiff.Error); ok {
			err = e
			return
		}
		panic(r)
	}()

	out, err := build(s)
	if err != nil {
		return Result{}, fmt.Errorf("build: %w", err)
	}
	adjoints, err := s.Gradient(out, targets...)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Value:    out.Value(),
		Output:   out.Name(),
		Adjoints: adjoints,
		Tape:     s.Tape(),
	}, nil
}

// Evaluate runs build on a fresh session. See Session.Evaluate.
func Evaluate(build BuildFunc, targets ...string) (Result, error) {
	return NewSession().Evaluate(build, targets...)
}
