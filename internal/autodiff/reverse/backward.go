package reverse

import "github.com/superautodiff/superautodiff/internal/autodiff"

// Adjoints runs the backward pass from the last row on the tape and returns
// the adjoint of each requested leaf. With no targets, every leaf is
// reported.
func (s *Session) Adjoints(targets ...string) (map[string]float64, error) {
	if len(s.nodes) == 0 {
		return nil, autodiff.NewError("adjoints", autodiff.ErrInvalidArgument, "", "tape is empty")
	}
	return s.Gradient(s.nodes[len(s.nodes)-1], targets...)
}

// Gradient runs the backward pass seeded at output and returns the adjoint
// of each requested leaf: ∂output/∂leaf. With no targets, every leaf is
// reported. A target that never appeared as a leaf fails with
// autodiff.ErrKeyNotFound.
func (s *Session) Gradient(output *Node, targets ...string) (map[string]float64, error) {
	adj, err := s.backward("gradient", output)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		targets = s.Leaves()
	}
	out := make(map[string]float64, len(targets))
	for _, name := range targets {
		i, ok := s.leaves[name]
		if !ok {
			return nil, autodiff.NewError("gradient", autodiff.ErrKeyNotFound, name, "not a leaf on this tape")
		}
		if i < len(adj) {
			out[name] = adj[i]
		} else {
			out[name] = 0 // Recorded after output, so output cannot depend on it
		}
	}
	return out, nil
}

// Sensitivities returns the adjoint of every node up to and including
// output, keyed by node name.
func (s *Session) Sensitivities(output *Node) (map[string]float64, error) {
	adj, err := s.backward("sensitivities", output)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(adj))
	for i, a := range adj {
		out[s.nodes[i].name] = a
	}
	return out, nil
}

// backward computes adjoints for rows 0..output.index.
//
// Algorithm:
//  1. Seed the output row with 1
//  2. Walk rows in strict reverse creation order
//  3. Push each row's adjoint, times the local partial, to its parents
//
// A parent is always recorded before its children, so by the time the walk
// reaches a row every consumer of that row has already pushed into it and
// its adjoint is final. Each row is visited once: O(len(tape)).
func (s *Session) backward(op string, output *Node) ([]float64, error) {
	if err := s.check(op, output); err != nil {
		return nil, err
	}
	adj := make([]float64, output.index+1)
	adj[output.index] = 1
	for i := output.index; i >= 0; i-- {
		n := s.nodes[i]
		if n.leaf || adj[i] == 0 {
			continue
		}
		for _, e := range n.parents {
			adj[e.parent.index] += adj[i] * e.partial
		}
	}
	return adj, nil
}
