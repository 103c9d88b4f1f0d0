// File: structural.go
// Role: Backtracking enumeration of injective vertex assignments
//       (subgraph monomorphisms) from a rule.Structure's pattern vertices
//       into a diagram.Diagram's spiders, honoring edge-label (Hadamard)
//       constraints exactly (spec.md §4.3 step 2).
// AI-HINT (file):
//   - Only wire *counts* per (pattern-vertex-pair, Hadamard flag) are
//     checked here, not specific wire identity: which diagram wire ends up
//     "serving" which pattern edge doesn't matter, because the later
//     connecting-wires pass (algebra.go) classifies wires as interior or
//     exterior purely from endpoint images, never from a pattern-edge
//     correspondence.
package match

import (
	"sort"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/rule"
)

// walker holds the fixed inputs to one structural search and the
// accumulating assignment, mirroring the teacher corpus's
// graph-plus-options-plus-result walker shape (generalized to two graphs).
type walker struct {
	diagram    *diagram.Diagram
	source     *rule.Structure
	ids        []string
	candidates []diagram.VertexID
}

// enumerateStructural walks every injective, edge-consistent assignment of
// w.ids into w.candidates depth-first, calling yield on each complete
// assignment. It stops and returns true as soon as yield returns true.
//
// Complexity: worst case exponential in len(ids); acceptable for the small
// (2-6 vertex) rule patterns the rule library defines, per spec.md §9's lazy
// enumeration guidance — this is a streaming, one-candidate-at-a-time
// search, not a materialized list.
func (w *walker) enumerateStructural(yield func(map[string]diagram.VertexID) bool) bool {
	assignment := make(map[string]diagram.VertexID, len(w.ids))
	used := make(map[diagram.VertexID]bool, len(w.ids))

	return w.step(0, assignment, used, yield)
}

func (w *walker) step(idx int, assignment map[string]diagram.VertexID, used map[diagram.VertexID]bool, yield func(map[string]diagram.VertexID) bool) bool {
	if idx == len(w.ids) {
		snapshot := make(map[string]diagram.VertexID, len(assignment))
		for k, v := range assignment {
			snapshot[k] = v
		}

		return yield(snapshot)
	}

	v := w.ids[idx]
	for _, cand := range w.candidates {
		if used[cand] {
			continue
		}
		if !w.consistent(v, cand, assignment) {
			continue
		}
		assignment[v] = cand
		used[cand] = true
		if w.step(idx+1, assignment, used, yield) {
			return true
		}
		delete(assignment, v)
		used[cand] = false
	}

	return false
}

// consistent reports whether assigning v -> cand keeps every pattern edge
// between v and an already-assigned vertex (including a self-loop at v)
// satisfied by distinct diagram wires of the matching Hadamard flag.
func (w *walker) consistent(v string, cand diagram.VertexID, assignment map[string]diagram.VertexID) bool {
	edges := w.source.IncidentEdges(v)

	if needed := patternEdgeCounts(edges, v, v); len(needed) > 0 {
		if !satisfiesCounts(w.diagram.WiresBetween(cand, cand), needed) {
			return false
		}
	}

	for other, otherImg := range assignment {
		if other == v {
			continue
		}
		needed := patternEdgeCounts(edges, v, other)
		if len(needed) == 0 {
			continue
		}
		if !satisfiesCounts(w.diagram.WiresBetween(cand, otherImg), needed) {
			return false
		}
	}

	return true
}

// patternEdgeCounts counts edges of src between pattern vertices a and b
// (order-independent), grouped by Hadamard flag.
func patternEdgeCounts(edges []*rule.StructEdge, a, b string) map[bool]int {
	counts := make(map[bool]int)
	for _, e := range edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			counts[e.Hadamard]++
		}
	}

	return counts
}

// wireFlagCounts groups wires by Hadamard flag.
func wireFlagCounts(wires []*diagram.Wire) map[bool]int {
	counts := make(map[bool]int)
	for _, w := range wires {
		counts[w.Hadamard]++
	}

	return counts
}

// satisfiesCounts reports whether available has at least as many wires of
// each required Hadamard flag as needed demands.
func satisfiesCounts(available []*diagram.Wire, needed map[bool]int) bool {
	have := wireFlagCounts(available)
	for flag, n := range needed {
		if have[flag] < n {
			return false
		}
	}

	return true
}

// spiderCandidates returns every spider vertex of d, sorted, for use as the
// candidate pool in structural enumeration (spec.md §4.3 step 1's
// is_spider label constraint).
func spiderCandidates(d *diagram.Diagram) []diagram.VertexID {
	all := d.Vertices()
	out := make([]diagram.VertexID, 0, len(all))
	for _, id := range all {
		if d.IsSpider(id) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
