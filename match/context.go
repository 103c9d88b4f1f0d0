// File: context.go
// Role: ConnectingNeighbor, Result, and Applier — the shapes the matcher
//       produces and the interface it delegates to when apply=true.
// AI-HINT (file):
//   - Result is the "opaque match record" of spec.md §4.3: an assignment
//     from rule-local vertex IDs to diagram vertices, plus the collected
//     connecting neighbors per source vertex and the resolved algebraic
//     bindings the rewriter needs to propagate.
package match

import (
	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rule"
)

// ConnectingNeighbor is the ephemeral record spec.md §3 describes: one wire
// leaving the matched subgraph, the diagram vertex it leads to, whether it
// was a Hadamard wire, and whether the rewriter should flip that flag.
type ConnectingNeighbor struct {
	Wire       diagram.WireID
	Outer      diagram.VertexID
	WasHadamard bool
	ShouldFlip bool
}

// Result is the match record spec.md §4.3 returns on success: the
// source-to-diagram vertex assignment, the connecting neighbors collected
// per source vertex, and the resolved color/phase bindings the Rewriter
// (C6) needs to build the target structure.
type Result struct {
	Rule *rule.Rule

	// Assignment maps each Source vertex's local ID to the diagram vertex
	// it was matched to.
	Assignment map[string]diagram.VertexID

	// Connecting holds, for each source vertex ID, every wire leaving the
	// matched subgraph at that vertex (spec.md's "connecting wire").
	Connecting map[string][]ConnectingNeighbor

	// ColorBindings records which diagram color each unknown ColorClass
	// (White/Black) resolved to during the color pass.
	ColorBindings map[rule.ColorClass]diagram.Color

	// Phases holds every resolved phase.Var from the phase pass, keyed by
	// variable name.
	Phases *phase.Bindings
}

// Applier is implemented by package rewrite's Rewriter. Match delegates to
// it when called with apply=true (spec.md §4.3: "If apply is true and a
// match is found, delegate to the Rewriter").
type Applier interface {
	Apply(d *diagram.Diagram, r *rule.Rule, m *Result) error
}
