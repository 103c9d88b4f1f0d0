// File: rewriter.go
// Role: Rewriter — the match.Applier implementation driving spec.md §4.4's
//       excise-and-splice algorithm.
// AI-HINT (file):
//   - Steps are numbered in comments to mirror spec.md §4.4 exactly; keep
//     that numbering if this file is ever split.
package rewrite

import (
	"sort"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/match"
	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rule"
	"github.com/zxlab/zxrewrite/zxerr"
)

// Rewriter excises a matched subgraph and splices in a rule's target.
// The zero value is ready to use; Rewriter carries no state between calls.
type Rewriter struct{}

// Apply implements match.Applier.
func (Rewriter) Apply(d *diagram.Diagram, r *rule.Rule, m *match.Result) error {
	return Rewrite(d, r, m)
}

// Rewrite performs spec.md §4.4's splice: build the target structure fully
// before deleting any source vertex, reconnect externals per
// r.ConnectingWiresMap, then delete the matched diagram vertices.
//
// Complexity: O(V_target + E_target + sum of connecting-neighbor counts).
func Rewrite(d *diagram.Diagram, r *rule.Rule, m *match.Result) error {
	// Step 2: propagate resolved source variables into a target-side
	// phase.Bindings, keyed by their VariableMap counterpart.
	targetPhases := phase.NewBindings()
	for srcVar, tgtVar := range r.VariableMap {
		if v, ok := m.Phases.Resolved(srcVar); ok {
			targetPhases.Resolve(tgtVar, v)
		}
	}

	// Step 3: resolve unknown (White/Black) colors; a single bound unknown
	// determines its partner as the opposite literal color.
	colorBindings := make(map[rule.ColorClass]diagram.Color, len(m.ColorBindings))
	for class, color := range m.ColorBindings {
		colorBindings[class] = color
	}
	if white, ok := colorBindings[rule.ClassWhite]; ok {
		if _, ok2 := colorBindings[rule.ClassBlack]; !ok2 {
			colorBindings[rule.ClassBlack] = white.Opposite()
		}
	}
	if black, ok := colorBindings[rule.ClassBlack]; ok {
		if _, ok2 := colorBindings[rule.ClassWhite]; !ok2 {
			colorBindings[rule.ClassWhite] = black.Opposite()
		}
	}

	// Step 4: build every target vertex before touching the source.
	targetImage := make(map[string]diagram.VertexID, len(r.Target.Vertices()))
	for _, tid := range r.Target.Vertices() {
		tv, _ := r.Target.Vertex(tid)

		phaseVal, err := phase.Evaluate(tv.Phase, targetPhases)
		if err != nil {
			return zxerr.Wrap("rewrite.Rewrite", err)
		}

		color, err := resolveTargetColor(tv.ColorClass, colorBindings)
		if err != nil {
			return zxerr.Wrap("rewrite.Rewrite", err)
		}

		targetImage[tid] = d.AddSpider(color, phaseVal)
	}

	// Step 5: interior target wires, preserving the Hadamard flag.
	for _, e := range r.Target.Edges() {
		if _, err := d.AddWire(targetImage[e.A], targetImage[e.B], e.Hadamard); err != nil {
			return zxerr.Wrap("rewrite.Rewrite", err)
		}
	}

	// Step 6: reconnect externals per the connecting-wires map.
	for _, sid := range r.Source.Vertices() {
		neighbors := m.Connecting[sid]
		ct := r.ConnectingWiresMap[sid]

		switch {
		case ct.None():
			if err := reconnectPairwise(d, neighbors); err != nil {
				return zxerr.Wrap("rewrite.Rewrite", err)
			}
		case len(ct) == 1:
			if err := reconnectSingle(d, targetImage[ct[0]], neighbors); err != nil {
				return zxerr.Wrap("rewrite.Rewrite", err)
			}
		default:
			if err := reconnectRoundRobin(d, targetImage, ct, neighbors); err != nil {
				return zxerr.Wrap("rewrite.Rewrite", err)
			}
		}
	}

	// Step 7: delete the matched diagram vertices (and, transitively, every
	// remaining wire touching them — interior or already-consumed external).
	matched := make([]diagram.VertexID, 0, len(m.Assignment))
	for _, id := range m.Assignment {
		matched = append(matched, id)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })
	if err := d.RemoveVertices(matched); err != nil {
		return zxerr.Wrap("rewrite.Rewrite", err)
	}

	if err := d.Validate(); err != nil {
		return zxerr.Wrap("rewrite.Rewrite", err)
	}

	return nil
}

func resolveTargetColor(class rule.ColorClass, bindings map[rule.ColorClass]diagram.Color) (diagram.Color, error) {
	switch class {
	case rule.ClassGreen:
		return diagram.Green, nil
	case rule.ClassRed:
		return diagram.Red, nil
	case rule.ClassGrey:
		// Unconstrained by definition; no built-in rule leaves a target
		// vertex's color fully free, but a deterministic default keeps
		// this total rather than panicking on a future rule that does.
		return diagram.Green, nil
	case rule.ClassWhite, rule.ClassBlack:
		c, ok := bindings[class]
		if !ok {
			return 0, zxerr.ErrInvariantViolation
		}

		return c, nil
	default:
		return 0, zxerr.ErrInvalidColorClass
	}
}

func flag(n match.ConnectingNeighbor) bool { return n.WasHadamard != n.ShouldFlip }

func reconnectSingle(d *diagram.Diagram, target diagram.VertexID, neighbors []match.ConnectingNeighbor) error {
	for _, n := range neighbors {
		if _, err := d.AddWire(target, n.Outer, flag(n)); err != nil {
			return err
		}
	}

	return nil
}

func reconnectRoundRobin(d *diagram.Diagram, targetImage map[string]diagram.VertexID, ct rule.ConnectingTarget, neighbors []match.ConnectingNeighbor) error {
	for i, n := range neighbors {
		tid := ct[i%len(ct)]
		if _, err := d.AddWire(targetImage[tid], n.Outer, flag(n)); err != nil {
			return err
		}
	}

	return nil
}

// reconnectPairwise realizes spec.md §4.4 step 6's "none" case: for every
// unordered pair of distinct recorded neighbors, add one wire between their
// outer endpoints, Hadamard = XOR of all four flip/flag bits. For exactly
// two neighbors (the common identity-removal shape) this adds exactly one
// fused wire; for more than two it generalizes to a Hopf-like complete
// reconnection, as spec.md's design notes call out explicitly.
func reconnectPairwise(d *diagram.Diagram, neighbors []match.ConnectingNeighbor) error {
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			a, b := neighbors[i], neighbors[j]
			hadamard := flag(a) != flag(b)
			if _, err := d.AddWire(a.Outer, b.Outer, hadamard); err != nil {
				return err
			}
		}
	}

	return nil
}
