package ops

import (
	"sort"
)

// table maps function names to rules that need no parameter.
var table = map[string]Unary{
	"sin":    Sin,
	"cos":    Cos,
	"tan":    Tan,
	"arcsin": Arcsin,
	"arccos": Arccos,
	"arctan": Arctan,
	"exp":    Exp,
	"log":    Ln,
	"sinh":   Sinh,
	"cosh":   Cosh,
	"tanh":   Tanh,
	"sqrt":   Sqrt,
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Unary, bool) {
	u, ok := table[name]
	return u, ok
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
