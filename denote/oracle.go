// File: oracle.go
// Role: Oracle contract (spec.md §6): denote a diagram into a LinearMap,
//       and compare two LinearMaps for equivalence up to a nonzero global
//       scalar.
package denote

import "github.com/zxlab/zxrewrite/diagram"

// LinearMap is the linear map a diagram denotes, expressed as its action on
// an input amplitude vector. The actual tensor-contraction math that builds
// one from a diagram's spiders and Hadamard wires is deliberately kept
// external to this package (spec.md §1 Non-goals): a LinearMap here is just
// "something you can apply a probe vector to," which is exactly what the
// Monte-Carlo equivalence check in spec.md §6 needs.
type LinearMap func(probe []complex128) []complex128

// DenoteFunc computes the LinearMap a diagram represents. Implementations
// live outside this module (a tensor-network contraction engine); this
// package only consumes one.
type DenoteFunc func(d *diagram.Diagram) (LinearMap, error)

// Oracle is the Denotation oracle spec.md §6 describes: Denote turns a
// diagram into its linear map, Equivalent compares two such maps up to a
// nonzero global scalar. Neither method may mutate its diagram argument.
type Oracle interface {
	Denote(d *diagram.Diagram) (LinearMap, error)
	Equivalent(a, b LinearMap) bool
}
