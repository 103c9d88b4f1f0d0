// Package rewrite implements the Rewriter (C6) of spec.md §4.4: given a
// resolved match.Result, it excises the matched subgraph and splices in the
// rule's Target structure, preserving the diagram's denotation.
//
// The algorithm follows spec.md §4.4's seven steps in order, and in
// particular honors "build target vertices before deleting source
// vertices" as a hard ordering requirement — exactly the staging
// discipline the teacher corpus documents for its own heavier vertex
// operations ("Stage 4: scan...", "Stage 5: delete...", never interleaved).
// This is also what makes every match.ConnectingNeighbor.Outer handle still
// valid when wires are added to it: the original vertices it was collected
// against have not been touched yet.
//
// Rewriter implements match.Applier so package match can delegate to it
// when Match is called with apply=true, without match importing rewrite.
package rewrite
