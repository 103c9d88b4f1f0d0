// File: simplifier.go
// Role: Simplifier composition (spec.md §4.5): SingleRule, Compound, and
//       RandomizedCompound, each producing an ordered []*rule.Rule.
package strategy

import (
	"math/rand"

	"github.com/zxlab/zxrewrite/rule"
)

// Simplifier produces an ordered list of rules for RankedStrategy to try in
// turn.
type Simplifier interface {
	Rules() []*rule.Rule
}

// singleRule is the trivial Simplifier: one rule, tried alone.
type singleRule struct{ r *rule.Rule }

// SingleRule wraps a single rule as a Simplifier yielding [r].
func SingleRule(r *rule.Rule) Simplifier { return singleRule{r: r} }

func (s singleRule) Rules() []*rule.Rule { return []*rule.Rule{s.r} }

// compound concatenates its children's rule lists, in order.
type compound struct{ children []Simplifier }

// Compound concatenates the rule lists of every child Simplifier, preserving
// each child's internal order and the order of the children themselves.
func Compound(children []Simplifier) Simplifier { return compound{children: children} }

func (c compound) Rules() []*rule.Rule {
	var out []*rule.Rule
	for _, child := range c.children {
		out = append(out, child.Rules()...)
	}

	return out
}

// randomizedCompound concatenates its children's rule lists and reshuffles
// them on every call to Rules(). spec.md §4.5 leaves the choice between
// "reshuffle every call" and "shuffle once at construction" to the
// implementation and asks only that it be documented; this type reshuffles
// every call, so a RankedStrategy built around it explores a fresh rule
// order on every probe rather than committing to one ordering for the whole
// optimizer run.
type randomizedCompound struct {
	children []Simplifier
	rng      *rand.Rand
}

// RandomizedCompound concatenates the rule lists of every child Simplifier
// and shuffles the result anew on every Rules() call, using rng.
func RandomizedCompound(children []Simplifier, rng *rand.Rand) Simplifier {
	return randomizedCompound{children: children, rng: rng}
}

func (c randomizedCompound) Rules() []*rule.Rule {
	var out []*rule.Rule
	for _, child := range c.children {
		out = append(out, child.Rules()...)
	}
	c.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
