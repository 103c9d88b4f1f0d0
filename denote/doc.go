// Package denote provides the Denotation oracle contract (spec.md §6) used
// only for equivalence testing in this core: the Oracle interface and a
// MonteCarlo reference adapter performing the randomized probe-vector
// comparison described there. The actual tensor-contraction math that turns
// a diagram into a LinearMap stays an external collaborator, injected as a
// plain function — building a full tensor-network evaluator is explicitly
// out of scope (spec.md §1 Non-goals).
package denote
