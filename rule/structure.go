// File: structure.go
// Role: Structure — a rule-side pattern graph: vertices with ColorClass/
//       Phase/WireBound/FlipCount, and Hadamard-flagged edges, plus the
//       precomputed adjacency index the matcher walks.
// AI-HINT (file):
//   - Structure is built once by a rule-library constructor and never
//     mutated afterward; all matcher-side mutable state lives in per-candidate
//     bindings local to match.Match (returned in match.Result), never here
//     (spec.md §9 design note).
package rule

import (
	"sort"

	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/zxerr"
)

// StructVertex is one pattern vertex of a Structure. ID is a rule-local
// identifier (e.g. "s0"), meaningful only within its own Structure.
type StructVertex struct {
	ID        string
	ColorClass ColorClass
	Phase     phase.Expr
	WireBound WireBound
	Flip      FlipCount
}

// StructEdge is one pattern edge of a Structure, matched exactly against a
// diagram wire's Hadamard flag (spec.md §3: "Rule-structure edges carry a
// Hadamard flag exactly like diagram edges and must match it exactly").
type StructEdge struct {
	A, B     string
	Hadamard bool
}

// Structure is a rule-side pattern graph, isomorphic in form to a diagram
// but carrying the richer per-vertex labels spec.md §3 describes.
type Structure struct {
	vertices map[string]*StructVertex
	edges    []*StructEdge
	adjacent map[string][]*StructEdge
}

// NewStructure validates and builds a Structure from its vertex and edge
// lists. Every edge endpoint must name a known vertex, and every vertex's
// ColorClass must be one of the five defined classes; both are
// construction-time checks per spec.md §7 (InvalidColorClass is fatal).
func NewStructure(vertices []*StructVertex, edges []*StructEdge) (*Structure, error) {
	s := &Structure{
		vertices: make(map[string]*StructVertex, len(vertices)),
		adjacent: make(map[string][]*StructEdge, len(vertices)),
	}
	for _, v := range vertices {
		if !v.ColorClass.Valid() {
			return nil, zxerr.Wrap("rule.NewStructure", zxerr.ErrInvalidColorClass)
		}
		s.vertices[v.ID] = v
	}
	for _, e := range edges {
		if _, ok := s.vertices[e.A]; !ok {
			return nil, zxerr.Wrap("rule.NewStructure", zxerr.ErrVertexNotFound)
		}
		if _, ok := s.vertices[e.B]; !ok {
			return nil, zxerr.Wrap("rule.NewStructure", zxerr.ErrVertexNotFound)
		}
		s.edges = append(s.edges, e)
		s.adjacent[e.A] = append(s.adjacent[e.A], e)
		if e.A != e.B {
			s.adjacent[e.B] = append(s.adjacent[e.B], e)
		}
	}

	return s, nil
}

// Vertex returns the pattern vertex with the given local ID.
func (s *Structure) Vertex(id string) (*StructVertex, bool) {
	v, ok := s.vertices[id]

	return v, ok
}

// Vertices returns all local vertex IDs, sorted for deterministic
// enumeration order in the matcher's backtracking search.
func (s *Structure) Vertices() []string {
	out := make([]string, 0, len(s.vertices))
	for id := range s.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every pattern edge, in construction order.
func (s *Structure) Edges() []*StructEdge { return s.edges }

// IncidentEdges returns the pattern edges touching the local vertex id.
func (s *Structure) IncidentEdges(id string) []*StructEdge { return s.adjacent[id] }

// Invertible reports whether every vertex phase in s is a literal constant
// or a bare variable — never a BinOp — which is the condition under which
// phase.Match can resolve the expression against an arbitrary target value
// (spec.md §4.2, §4.6: BinOps over unresolved variables cannot be inverted).
func (s *Structure) Invertible() bool {
	for _, v := range s.vertices {
		if !invertiblePhase(v.Phase) {
			return false
		}
	}

	return true
}

func invertiblePhase(e phase.Expr) bool {
	switch e.(type) {
	case phase.Const, phase.Var:
		return true
	default:
		return false
	}
}
