// File: match.go
// Role: Match — the public entry point implementing spec.md §4.3's
//       algorithm end to end: structural enumeration, then color/phase/
//       connecting-wires passes per candidate, returning the first
//       surviving one.
// AI-HINT (file):
//   - Failure semantics: a plain "no match" is (nil, false, nil), never an
//     error — per spec.md §4.3/§7. Match returns an error only when apply
//     is true and either applier is nil (ErrInvariantViolation) or
//     applier.Apply fails.
//   - A rule whose Source.Invertible() is false but which was never asked
//     for via Rule.Inverse() still matches normally; PlaceholderInverse
//     only guards rules that *are* the manufactured, unusable inverse.
package match

import (
	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rule"
	"github.com/zxlab/zxrewrite/zxerr"
)

// Match searches d for an occurrence of r.Source, resolving color, phase,
// and connecting-wire side-conditions as it goes. If apply is true and an
// occurrence is found, it delegates to applier.Apply before returning, so
// the returned Result reflects a diagram that has already been rewritten
// (spec.md §4.3).
//
// Returns (result, true, nil) on success, (nil, false, nil) on no match,
// and a non-nil error only when apply is true and applier is nil or
// applier.Apply itself fails.
//
// Complexity: worst case exponential in the rule's vertex count (small,
// 2-6, for every rule in the library); O(V) candidate pool construction.
func Match(d *diagram.Diagram, r *rule.Rule, apply bool, applier Applier) (*Result, bool, error) {
	if r.PlaceholderInverse {
		return nil, false, nil
	}

	w := &walker{
		diagram:    d,
		source:     r.Source,
		ids:        r.Source.Vertices(),
		candidates: spiderCandidates(d),
	}

	var found *Result
	w.enumerateStructural(func(assignment map[string]diagram.VertexID) bool {
		colorBindings := make(map[rule.ColorClass]diagram.Color)
		if !colorPass(r.Source, assignment, d, colorBindings) {
			return false
		}

		bindings := phase.NewBindings()
		if !phasePass(r.Source, assignment, d, bindings) {
			return false
		}

		connecting, ok := connectingWiresPass(r.Source, assignment, d)
		if !ok {
			return false
		}

		found = &Result{
			Rule:          r,
			Assignment:    assignment,
			Connecting:    connecting,
			ColorBindings: colorBindings,
			Phases:        bindings,
		}

		return true
	})

	if found == nil {
		return nil, false, nil
	}

	if apply {
		if applier == nil {
			return nil, false, zxerr.Wrap("match.Match", zxerr.ErrInvariantViolation)
		}
		if err := applier.Apply(d, r, found); err != nil {
			return nil, false, zxerr.Wrap("match.Match", err)
		}
	}

	return found, true, nil
}
