package forward

// Less reports d.Value() < other.Value().
func (d *Dual) Less(other *Dual) bool { return d.value < other.value }

// LessEqual reports d.Value() <= other.Value().
func (d *Dual) LessEqual(other *Dual) bool { return d.value <= other.value }

// Greater reports d.Value() > other.Value().
func (d *Dual) Greater(other *Dual) bool { return d.value > other.value }

// GreaterEqual reports d.Value() >= other.Value().
func (d *Dual) GreaterEqual(other *Dual) bool { return d.value >= other.value }

// Equal reports whether d and other have the same value and exactly the same
// partials, key for key. It is meant for tests, not for numerical closeness.
func (d *Dual) Equal(other *Dual) bool {
	if d == other {
		return true
	}
	if other == nil || d.value != other.value || len(d.partials) != len(other.partials) {
		return false
	}
	for k, v := range d.partials {
		ov, ok := other.partials[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func (d *Dual) NotEqual(other *Dual) bool { return !d.Equal(other) }
