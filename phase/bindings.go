// File: bindings.go
// Role: Bindings is the per-match-attempt resolution context for Var nodes.
// Determinism:
//   - A fresh Bindings is created per candidate by the matcher; there is no
//     shared mutable state across candidates (see doc.go).
// AI-HINT (file):
//   - Resolved(name) distinguishes "bound to zero" from "unbound" explicitly;
//     do not use the zero value of float64 as an unbound sentinel.

package phase

// Bindings records the resolved value of each Var encountered while
// matching or evaluating a phase expression. It is the sole mutable state
// associated with phase variables; Expr trees themselves are immutable.
type Bindings struct {
	values map[string]float64
}

// NewBindings returns an empty resolution context.
func NewBindings() *Bindings {
	return &Bindings{values: make(map[string]float64)}
}

// Resolved reports whether name has been bound, and its value if so.
func (b *Bindings) Resolved(name string) (float64, bool) {
	v, ok := b.values[name]

	return v, ok
}

// Resolve records a value for name, overwriting any previous binding.
func (b *Bindings) Resolve(name string, value float64) {
	b.values[name] = Normalize(value)
}

// Clone returns an independent copy of b, useful when a caller wants to
// propagate a source-side context into a fresh target-side context without
// aliasing.
func (b *Bindings) Clone() *Bindings {
	out := NewBindings()
	for k, v := range b.values {
		out.values[k] = v
	}

	return out
}
