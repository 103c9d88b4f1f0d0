// Package strategy implements the Strategy & Optimizer component (C7):
// Simplifier composition (SingleRule / Compound / RandomizedCompound),
// RankedStrategy's non-mutating find-next-rule probe, and the Optimizer
// loop that drives match-and-rewrite to a fixed point while validating
// every step against a denote.Oracle (spec.md §4.5).
package strategy
