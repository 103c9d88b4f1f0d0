// Package rule implements the rule-structure and rewrite-rule types of
// spec.md §3–§4: a small pattern graph isomorphic in form to a diagram but
// with richer per-vertex constraints, and a pair of such structures (source,
// target) plus the mappings a rewrite needs to splice one for the other.
//
// A Structure's vertices carry:
//
//   - ColorClass: a literal color, an unknown (White/Black, which must bind
//     to a single color each and to different colors from each other), or
//     Grey (unconstrained).
//   - Phase: a phase.Expr.
//   - WireBound: "any" or a non-negative integer cap on connecting wires
//     (spec.md's "connecting-wires bound").
//   - FlipCount: how many of a vertex's connecting wires must flip
//     plain<->Hadamard during rewriting (the color-change rule's mechanism).
//
// A Rule pairs a Source and Target Structure with a VariableMap (source
// phase.Var name -> target phase.Var name) and a ConnectingWiresMap
// (source vertex -> target vertex(es), or None to fuse pairwise). Rule.Inverse
// builds the swapped, inverted rule lazily and caches it; construction is
// pure, so the rule<->inverse reference cycle never observes partially
// built state (spec.md §9).
package rule
