// Package diagram implements the ZX-diagram data model described in spec.md
// §3: an undirected, labelled multigraph whose vertices are boundaries
// (degree-1 external ports) and spiders (colored, phased, unbounded degree),
// connected by wires that may carry a Hadamard flag.
//
// Diagram G = (V, E) supports:
//
//   - Boundary vertices: Direction (Input/Output) + PortIndex, degree 1.
//   - Spider vertices: Color (Green/Red) + Phase (mod 2π), any degree,
//     self-loops and parallel wires allowed.
//   - Wires: plain or Hadamard, always permitting multi-edges and loops —
//     a ZX-diagram has no "simple graph" mode, unlike a general-purpose
//     graph library.
//   - Constant-time edge operations via nested maps:
//     adjacency[a][b][wireID] = struct{}{}
//   - Collision-free, monotonic textual Vertex/Wire ID generation ("v1",
//     "w1", …) so identifiers remain stable across unrelated removals
//     (spec.md §3's "vertex identifiers remain stable" invariant) — ids are
//     never reused by a delete-then-insert.
//   - Separate sync.RWMutex for vertices (muVert) and wires+adjacency
//     (muEdgeAdj), minimizing lock contention and letting independent
//     Diagram values be mutated from independent goroutines concurrently
//     (spec.md §5).
//   - Clone support for the Denotation oracle, which must observe a diagram
//     without risk of mutating the live one (spec.md §6).
//
// Diagram never itself decides whether a boundary degree-1 invariant holds
// mid-rewrite; Validate reports invariant violations so the Rewriter and
// Optimizer can treat them as spec.md §7 InvariantViolation conditions.
package diagram
