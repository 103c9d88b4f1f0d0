// Package rules implements the concrete rewrite-rule library (C8): spider
// fusion, identity removal, bialgebra, π-commutation, color change, copy,
// Hopf, and parallel/self-loop cleanup. Every constructor builds a *rule.Rule
// from literal rule.NewStructure/rule.NewRule calls, grounded in the same way
// the teacher's builder package assembles literal topology via typed
// constructors rather than a generic graph DSL.
//
// Every rule returned here is a package-level constructor, not a singleton
// value, so callers (tests, strategy.Simplifier) can build independent rule
// sets without aliasing a shared *rule.Rule.
package rules
