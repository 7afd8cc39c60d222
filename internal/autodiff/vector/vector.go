// Package vector composes named forward-mode values into one multi-input,
// multi-output system.
//
// A Vector holds an ordered set of uniquely named *forward.Dual entries.
// Arithmetic broadcasts a single operand against every entry and returns a
// new Vector with the same names in the same order; elementary functions
// map over the entries one by one so derivative tracking is never lost.
package vector

import (
	"strings"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
)

// Vector is an immutable, ordered collection of named Dual values.
type Vector struct {
	names   []string
	entries map[string]*forward.Dual
}

// New builds a Vector keyed by each entry's variable name.
func New(entries ...*forward.Dual) (*Vector, error) {
	names := make([]string, len(entries))
	for i, d := range entries {
		if d == nil {
			return nil, autodiff.NewError("vector", autodiff.ErrInvalidArgument, "", "nil entry")
		}
		names[i] = d.Name()
	}
	return NewNamed(names, entries)
}

// NewNamed builds a Vector with explicit entry names, for outputs that are
// composite expressions rather than plain variables.
func NewNamed(names []string, entries []*forward.Dual) (*Vector, error) {
	if len(names) != len(entries) {
		return nil, autodiff.NewError("vector", autodiff.ErrLengthMismatch, "",
			"got "+itoa(len(names))+" names for "+itoa(len(entries))+" entries")
	}
	if len(entries) == 0 {
		return nil, autodiff.NewError("vector", autodiff.ErrInvalidArgument, "", "no entries")
	}
	v := &Vector{
		names:   make([]string, len(names)),
		entries: make(map[string]*forward.Dual, len(names)),
	}
	for i, name := range names {
		if entries[i] == nil {
			return nil, autodiff.NewError("vector", autodiff.ErrInvalidArgument, name, "nil entry")
		}
		if strings.TrimSpace(name) == "" {
			return nil, autodiff.NewError("vector", autodiff.ErrInvalidArgument, "", "entry "+itoa(i)+" has no name")
		}
		if _, dup := v.entries[name]; dup {
			return nil, autodiff.NewError("vector", autodiff.ErrDuplicateKey, name, "")
		}
		v.names[i] = name
		v.entries[name] = entries[i]
	}
	return v, nil
}

// Vectorize builds a Vector of independent variables. seeds may be nil (every
// partial is 1) or hold one seed per variable.
func Vectorize(names []string, values []float64, seeds []float64) (*Vector, error) {
	if len(names) != len(values) {
		return nil, autodiff.NewError("vectorize", autodiff.ErrLengthMismatch, "",
			itoa(len(names))+" names, "+itoa(len(values))+" values")
	}
	if seeds != nil && len(seeds) != len(names) {
		return nil, autodiff.NewError("vectorize", autodiff.ErrLengthMismatch, "",
			itoa(len(names))+" names, "+itoa(len(seeds))+" seeds")
	}
	entries := make([]*forward.Dual, len(names))
	for i, name := range names {
		seed := 1.0
		if seeds != nil {
			seed = seeds[i]
		}
		d, err := forward.NewSeeded(name, values[i], seed)
		if err != nil {
			return nil, err
		}
		entries[i] = d
	}
	return New(entries...)
}

// Kind returns autodiff.KindVector.
func (v *Vector) Kind() autodiff.Kind { return autodiff.KindVector }

// Len returns the number of entries.
func (v *Vector) Len() int { return len(v.names) }

// Names returns the entry names in order.
func (v *Vector) Names() []string {
	return append([]string(nil), v.names...)
}

// At returns the i-th entry.
func (v *Vector) At(i int) *forward.Dual {
	return v.entries[v.names[i]]
}

// Get returns the entry named name.
func (v *Vector) Get(name string) (*forward.Dual, error) {
	d, ok := v.entries[name]
	if !ok {
		return nil, autodiff.NewError("get", autodiff.ErrKeyNotFound, name, "")
	}
	return d, nil
}

// Entries returns the entries in order.
func (v *Vector) Entries() []*forward.Dual {
	out := make([]*forward.Dual, len(v.names))
	for i, name := range v.names {
		out[i] = v.entries[name]
	}
	return out
}

// Values returns the entry values in order.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.names))
	for i, name := range v.names {
		out[i] = v.entries[name].Value()
	}
	return out
}

// String formats v as "{x: 1 [x: 1], y: ...}".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range v.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(v.entries[name].String())
	}
	b.WriteString("}")
	return b.String()
}
