// File: ops.go
// Role: Evaluate and Match — the two operations the matcher and rewriter
//       drive a phase Expr through, per spec.md §4.2.
// AI-HINT (file):
//   - Evaluate fails (ErrUnresolvedVariable) if any Var in e is unbound in b.
//   - Match may mutate b by resolving previously-unbound Vars; it never
//     un-resolves an already-bound Var.
//   - A BinOp with any unresolved Var anywhere in its subtree can only be
//     matched if every operand is already resolved; this is the documented
//     "non-trivial expressions in unresolved variables are not invertible"
//     limitation (spec.md §4.2, §9).

package phase

import "github.com/zxlab/zxrewrite/zxerr"

// Evaluate computes e's real value under b, normalized into [0, TwoPi).
//
// Errors:
//   - zxerr.ErrUnresolvedVariable if e references a Var absent from b.
//
// Complexity: O(n) in the size of e.
func Evaluate(e Expr, b *Bindings) (float64, error) {
	switch t := e.(type) {
	case Const:
		return Normalize(float64(t)), nil
	case Var:
		v, ok := b.Resolved(string(t))
		if !ok {
			return 0, zxerr.Wrap("phase.Evaluate", zxerr.ErrUnresolvedVariable)
		}

		return v, nil
	case *BinOp:
		l, err := Evaluate(t.Left, b)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(t.Right, b)
		if err != nil {
			return 0, err
		}

		return Normalize(applyOp(t.Op, l, r)), nil
	default:
		// Unreachable: Expr is a closed variant defined only in this package.
		return 0, zxerr.Wrap("phase.Evaluate", zxerr.ErrUnresolvedVariable)
	}
}

func applyOp(op Op, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	default:
		return 0
	}
}

// isFullyResolved reports whether every Var in e already has a binding in b.
func isFullyResolved(e Expr, b *Bindings) bool {
	switch t := e.(type) {
	case Const:
		return true
	case Var:
		_, ok := b.Resolved(string(t))

		return ok
	case *BinOp:
		return isFullyResolved(t.Left, b) && isFullyResolved(t.Right, b)
	default:
		return false
	}
}

// Match attempts to satisfy Evaluate(e, b) == x (mod 2π), resolving
// previously-unbound Vars in b as needed. It returns whether the attempt
// succeeded; on failure b is left exactly as it was for any Var that was not
// newly bound during this call (partial resolutions performed before a
// failing sibling are a caller concern only insofar as the caller discards
// the whole Bindings on failure — the match engine in package match always
// does, per spec.md's match-context design).
//
// Match semantics per node kind:
//   - Const(c): matches iff |c - x| (mod 2π, wraparound-aware) < Epsilon.
//   - Var(name): if name is already bound, behaves like Const(bound value);
//     otherwise resolves name := x and succeeds unconditionally.
//   - BinOp: matches only if every operand is already resolved and
//     Evaluate(e, b) == x; an expression with any unresolved Var anywhere in
//     its subtree is rejected (it cannot be inverted in general).
//
// Complexity: O(n) in the size of e.
func Match(e Expr, x float64, b *Bindings) bool {
	switch t := e.(type) {
	case Const:
		return modularEqual(float64(t), x)
	case Var:
		name := string(t)
		if v, ok := b.Resolved(name); ok {
			return modularEqual(v, x)
		}
		b.Resolve(name, x)

		return true
	case *BinOp:
		if !isFullyResolved(t, b) {
			return false
		}
		v, err := Evaluate(t, b)
		if err != nil {
			return false
		}

		return modularEqual(v, x)
	default:
		return false
	}
}
