// File: algebra.go
// Role: The three algebraic passes spec.md §4.3 step 3 runs against a
//       candidate structural assignment — color, phase, connecting-wires —
//       plus flip marking. All state here is local to one candidate
//       (colorBindings, phase.Bindings); nothing is written back onto the
//       Rule or its Structures, per the match-context design (spec.md §9).
package match

import (
	"sort"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rule"
)

// colorPass checks every source vertex's ColorClass against the diagram
// color it was assigned, threading White/Black bindings through
// colorBindings. Returns false on the first violation.
func colorPass(src *rule.Structure, assignment map[string]diagram.VertexID, d *diagram.Diagram, colorBindings map[rule.ColorClass]diagram.Color) bool {
	for _, id := range src.Vertices() {
		sv, _ := src.Vertex(id)
		dv, err := d.GetVertex(assignment[id])
		if err != nil {
			return false
		}

		switch sv.ColorClass {
		case rule.ClassGreen:
			if dv.Color != diagram.Green {
				return false
			}
		case rule.ClassRed:
			if dv.Color != diagram.Red {
				return false
			}
		case rule.ClassGrey:
			// unconstrained
		case rule.ClassWhite, rule.ClassBlack:
			bound, ok := colorBindings[sv.ColorClass]
			if !ok {
				colorBindings[sv.ColorClass] = dv.Color
			} else if bound != dv.Color {
				return false
			}
			partner := sv.ColorClass.Partner()
			if pBound, ok := colorBindings[partner]; ok && pBound == dv.Color {
				return false
			}
		}
	}

	return true
}

// phasePass runs phase.Match for every source vertex's phase expression
// against its assigned diagram vertex's phase, threading resolutions
// through a single shared phase.Bindings. Returns false on the first
// mismatch.
func phasePass(src *rule.Structure, assignment map[string]diagram.VertexID, d *diagram.Diagram, bindings *phase.Bindings) bool {
	for _, id := range src.Vertices() {
		sv, _ := src.Vertex(id)
		dv, err := d.GetVertex(assignment[id])
		if err != nil {
			return false
		}
		if !phase.Match(sv.Phase, dv.Phase, bindings) {
			return false
		}
	}

	return true
}

// connectingWiresPass scans, for each source vertex, every incident
// diagram wire and classifies it interior (the other endpoint is the image
// of some other source vertex) or exterior (anything else, including
// boundaries). It rejects a candidate whose exterior count at any vertex
// exceeds that vertex's WireBound, and otherwise records the exterior wires
// as ConnectingNeighbors with the flip marking resolved from FlipCount.
func connectingWiresPass(src *rule.Structure, assignment map[string]diagram.VertexID, d *diagram.Diagram) (map[string][]ConnectingNeighbor, bool) {
	images := make(map[diagram.VertexID]bool, len(assignment))
	for _, v := range assignment {
		images[v] = true
	}

	out := make(map[string][]ConnectingNeighbor, len(src.Vertices()))
	for _, id := range src.Vertices() {
		sv, _ := src.Vertex(id)
		img := assignment[id]

		wires, err := d.IncidentWires(img)
		if err != nil {
			return nil, false
		}

		var exterior []ConnectingNeighbor
		for _, w := range wires {
			other := w.OtherEnd(img)
			if other == img {
				// A diagram self-loop: both ends are img, the image of
				// this very source vertex, so it is interior by spec.md's
				// "image of some other rule vertex" definition extended
				// to include the vertex's own pattern self-loop.
				continue
			}
			if images[other] {
				continue // interior: other endpoint is a matched image.
			}
			exterior = append(exterior, ConnectingNeighbor{
				Wire:        w.ID,
				Outer:       other,
				WasHadamard: w.Hadamard,
			})
		}
		sort.Slice(exterior, func(i, j int) bool { return exterior[i].Wire < exterior[j].Wire })

		if !sv.WireBound.Allows(len(exterior)) {
			return nil, false
		}

		flips := sv.Flip.Resolve(len(exterior))
		for i := 0; i < flips; i++ {
			exterior[i].ShouldFlip = true
		}

		out[id] = exterior
	}

	return out, true
}
