// Package phase implements the symbolic phase-expression algebra that
// appears in rewrite-rule phases: a small tree of constants, named
// variables, and binary operators, together with the matching and
// evaluation semantics a rewrite rule needs.
//
// Expr is a closed tagged variant:
//
//	Const(c)        — a literal real value.
//	Var(name)       — a named variable; unresolved until a Bindings context
//	                  assigns it a value during matching.
//	BinOp(op, l, r) — one of +, -, *, / over two sub-expressions.
//
// Unlike a naive port of the source representation, variables here carry no
// state of their own (Var is just a name). Resolution lives entirely in a
// Bindings value created fresh per match attempt — see bindings.go. This
// means "reset" is simply discarding a Bindings map rather than walking the
// expression tree and clearing flags, which removes the main way stale state
// from a rejected candidate could leak into the next one (spec.md design
// note "Mutable-state-during-match").
//
// All phase arithmetic is modulo 2π; Normalize folds any real value into
// [0, 2π).
package phase
