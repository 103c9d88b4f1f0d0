// Package match implements the subgraph-matching engine of spec.md §4.3: it
// finds an occurrence of a rule's Source structure inside a Diagram,
// resolving the algebraic side-conditions (color class, phase expression,
// connecting-wire bound) along the way.
//
// Match performs a backtracking search, grounded in the same
// walker-plus-options shape the teacher corpus uses for graph traversal
// (a small struct carrying the diagram, the pattern, and accumulating
// result state, driven by a recursive step method), generalized from
// single-graph traversal to simultaneous traversal of two graphs with
// label-consistent pairing at each step (a VF2-style monomorphism search).
//
// Per spec.md §9's design note, no mutable state is kept on the Rule or its
// Structures between match attempts: each candidate gets fresh
// phase.Bindings and color-class bindings, discarded on rejection and
// returned to the caller as part of Result on acceptance. This removes the
// explicit reset() spec.md §4.2 otherwise requires.
package match
