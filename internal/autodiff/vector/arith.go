package vector

import (
	"strconv"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
)

// Map applies f to every entry and keeps the names. The first failing entry
// aborts the whole operation.
func (v *Vector) Map(f func(*forward.Dual) (*forward.Dual, error)) (*Vector, error) {
	out := &Vector{
		names:   v.names,
		entries: make(map[string]*forward.Dual, len(v.names)),
	}
	for _, name := range v.names {
		d, err := f(v.entries[name])
		if err != nil {
			return nil, autodiff.Label(err, name)
		}
		out.entries[name] = d
	}
	return out, nil
}

// mapTotal applies an operation that cannot fail.
func (v *Vector) mapTotal(f func(*forward.Dual) *forward.Dual) *Vector {
	out, _ := v.Map(func(d *forward.Dual) (*forward.Dual, error) {
		return f(d), nil
	})
	return out
}

// Add returns v + other, broadcast over entries.
func (v *Vector) Add(other *forward.Dual) *Vector {
	return v.mapTotal(func(d *forward.Dual) *forward.Dual { return d.Add(other) })
}

// Sub returns v - other.
func (v *Vector) Sub(other *forward.Dual) *Vector {
	return v.mapTotal(func(d *forward.Dual) *forward.Dual { return d.Sub(other) })
}

// RSub returns other - v.
func (v *Vector) RSub(other *forward.Dual) *Vector {
	return v.mapTotal(func(d *forward.Dual) *forward.Dual { return other.Sub(d).Rename(d.Name()) })
}

// Mul returns v * other.
func (v *Vector) Mul(other *forward.Dual) *Vector {
	return v.mapTotal(func(d *forward.Dual) *forward.Dual { return d.Mul(other) })
}

// Div returns v / other. Fails with autodiff.ErrDivisionByZero when other is 0.
func (v *Vector) Div(other *forward.Dual) (*Vector, error) {
	return v.Map(func(d *forward.Dual) (*forward.Dual, error) { return d.Div(other) })
}

// RDiv returns other / v. Fails on the first zero entry.
func (v *Vector) RDiv(other *forward.Dual) (*Vector, error) {
	return v.Map(func(d *forward.Dual) (*forward.Dual, error) {
		out, err := other.Div(d)
		if err != nil {
			return nil, err
		}
		return out.Rename(d.Name()), nil
	})
}

// Pow returns v^p entry by entry.
func (v *Vector) Pow(p float64) *Vector {
	return v.mapTotal(func(d *forward.Dual) *forward.Dual { return d.Pow(p) })
}

// RPow returns base^v entry by entry.
func (v *Vector) RPow(base float64) (*Vector, error) {
	return v.Map(func(d *forward.Dual) (*forward.Dual, error) { return d.RPow(base) })
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	return v.mapTotal((*forward.Dual).Neg)
}

// Zip applies f to the entries of v and w pairwise, by position. The
// vectors must have the same length; the result keeps v's names.
func (v *Vector) Zip(w *Vector, f func(a, b *forward.Dual) (*forward.Dual, error)) (*Vector, error) {
	if v.Len() != w.Len() {
		return nil, autodiff.NewError("zip", autodiff.ErrLengthMismatch, "",
			strconv.Itoa(v.Len())+" vs "+strconv.Itoa(w.Len())+" entries")
	}
	out := &Vector{
		names:   v.names,
		entries: make(map[string]*forward.Dual, len(v.names)),
	}
	for i, name := range v.names {
		d, err := f(v.entries[name], w.At(i))
		if err != nil {
			return nil, autodiff.Label(err, name)
		}
		out.entries[name] = d
	}
	return out, nil
}

// Sum returns the sum of all entries, named after the first entry.
func (v *Vector) Sum() *forward.Dual {
	total := v.At(0)
	for i := 1; i < v.Len(); i++ {
		total = total.Add(v.At(i))
	}
	return total
}

// Dot returns Σ v_i * w_i.
func (v *Vector) Dot(w *Vector) (*forward.Dual, error) {
	prod, err := v.Zip(w, func(a, b *forward.Dual) (*forward.Dual, error) { return a.Mul(b), nil })
	if err != nil {
		return nil, err
	}
	return prod.Sum(), nil
}

func itoa(i int) string { return strconv.Itoa(i) }
