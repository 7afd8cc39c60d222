// Package reverse implements reverse-mode automatic differentiation.
//
// A Session owns a tape: the ordered, append-only record of every Node built
// during a forward evaluation, together with each node's local partial
// derivatives with respect to its (at most two) direct parents. The backward
// pass walks the tape from the output to the first row and accumulates
// adjoints, recovering the derivative of the output with respect to every
// leaf in a single traversal.
//
// Usage:
//
//	s := reverse.NewSession()
//	x1, _ := s.Var(4, "x1")
//	x2, _ := s.Var(7, "x2")
//	f := x1.Add(x2.MulConst(2)) // f = x1 + 2*x2
//	grads, _ := s.Adjoints("x1", "x2") // {x1: 1, x2: 2}
//	s.Clear()
//
// A Session is not safe for concurrent use. Evaluate serialises whole passes
// and guarantees the tape is cleared afterwards.
package reverse

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/superautodiff/superautodiff/internal/autodiff"
)

// Row is one tape entry: a node and the local partials with respect to its
// parents. Leaf rows list the node itself as Parent1 with Partial1 = 1.
type Row struct {
	Node       string
	Parent1    string
	Partial1   float64
	Parent2    string // Empty when HasParent2 is false
	Partial2   float64
	HasParent2 bool
}

// Session records one reverse-mode evaluation at a time.
type Session struct {
	id         uuid.UUID
	mu         sync.Mutex // Held by Evaluate for a whole pass
	nodes      []*Node    // Tape, in creation order
	names      map[string]int
	leaves     map[string]int
	counter    int    // Last auto-generated name suffix
	generation uint64 // Bumped by Clear
}

// NewSession creates a session with an empty tape.
func NewSession() *Session {
	return &Session{
		id:     uuid.New(),
		nodes:  make([]*Node, 0, 64), // Pre-allocate for common case
		names:  make(map[string]int),
		leaves: make(map[string]int),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Len returns the number of rows on the tape.
func (s *Session) Len() int {
	return len(s.nodes)
}

// Generation returns how many times the tape has been cleared.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Clear empties the tape and restarts auto-naming from y1.
// Nodes built before Clear can no longer be used with this session.
func (s *Session) Clear() {
	s.nodes = s.nodes[:0]
	s.names = make(map[string]int)
	s.leaves = make(map[string]int)
	s.counter = 0
	s.generation++
}

// Tape returns a copy of the tape rows in creation order.
func (s *Session) Tape() []Row {
	rows := make([]Row, len(s.nodes))
	for i, n := range s.nodes {
		rows[i] = n.row()
	}
	return rows
}

// Leaves returns the leaf names in creation order.
func (s *Session) Leaves() []string {
	var names []string
	for _, n := range s.nodes {
		if n.leaf {
			names = append(names, n.name)
		}
	}
	return names
}

// Lookup returns the node recorded under name.
func (s *Session) Lookup(name string) (*Node, error) {
	i, ok := s.names[name]
	if !ok {
		return nil, autodiff.NewError("lookup", autodiff.ErrKeyNotFound, name, "")
	}
	return s.nodes[i], nil
}

// Var records a leaf. An empty name is replaced by the next auto-generated
// name. Names must be unique within the tape.
func (s *Session) Var(value float64, name string) (*Node, error) {
	if name == "" {
		name = s.nextName()
	}
	if err := autodiff.CheckFinite("var", name, value); err != nil {
		return nil, err
	}
	if _, taken := s.names[name]; taken {
		return nil, autodiff.NewError("var", autodiff.ErrDuplicateKey, name, "name already on tape")
	}
	n := s.record(name, value, nil)
	n.leaf = true
	s.leaves[name] = n.index
	return n, nil
}

// nextName returns the next free name in the sequence y1, y2, ...
func (s *Session) nextName() string {
	for {
		s.counter++
		name := "y" + strconv.Itoa(s.counter)
		if _, taken := s.names[name]; !taken {
			return name
		}
	}
}

// record appends a node to the tape.
func (s *Session) record(name string, value float64, parents []edge) *Node {
	n := &Node{
		session:    s,
		generation: s.generation,
		index:      len(s.nodes),
		name:       name,
		value:      value,
		parents:    parents,
	}
	s.nodes = append(s.nodes, n)
	s.names[name] = n.index
	return n
}

// derive appends an intermediate node with an auto-generated name.
func (s *Session) derive(value float64, parents ...edge) *Node {
	return s.record(s.nextName(), value, parents)
}

// owns panics unless n was recorded on the current tape of s. Mixing
// sessions or reusing nodes across Clear would corrupt the backward pass.
func (s *Session) owns(op string, n *Node) {
	if err := s.check(op, n); err != nil {
		panic(err)
	}
}

func (s *Session) check(op string, n *Node) error {
	switch {
	case n == nil:
		return autodiff.NewError(op, autodiff.ErrInvalidArgument, "", "nil node")
	case n.session != s:
		return autodiff.NewError(op, autodiff.ErrInvalidArgument, n.name,
			"node belongs to session "+n.session.ID()+", not "+s.ID())
	case n.generation != s.generation:
		return autodiff.NewError(op, autodiff.ErrInvalidArgument, n.name,
			"node was recorded before the tape was cleared")
	}
	return nil
}
