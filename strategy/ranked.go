// File: ranked.go
// Role: RankedStrategy — scans a Simplifier's rule list in order and
//       returns the first rule with at least one match (spec.md §4.5).
package strategy

import (
	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/match"
	"github.com/zxlab/zxrewrite/rule"
	"github.com/zxlab/zxrewrite/zxerr"
)

// RankedStrategy tries a Simplifier's rules in order and commits to the
// first that matches anywhere in the diagram.
type RankedStrategy struct {
	simplifier Simplifier
}

// NewRankedStrategy builds a RankedStrategy around simplifier.
func NewRankedStrategy(simplifier Simplifier) *RankedStrategy {
	return &RankedStrategy{simplifier: simplifier}
}

// FindNextRule scans rs.simplifier.Rules() in order and returns the first
// rule with at least one match in d. The probe never mutates d: Match is
// called with apply=false. It also never leaves any rule-owned state behind
// to "reset" — per the match-context design (spec.md §9), the matcher's
// resolved-variable and color-class bindings live on a value scoped to one
// candidate, never on the *rule.Rule itself, so there is nothing for a
// caller to reset between probes.
//
// Returns (nil, false, nil) once every rule has been tried with no match.
func (rs *RankedStrategy) FindNextRule(d *diagram.Diagram) (*rule.Rule, bool, error) {
	for _, r := range rs.simplifier.Rules() {
		_, ok, err := match.Match(d, r, false, nil)
		if err != nil {
			return nil, false, zxerr.Wrap("strategy.RankedStrategy.FindNextRule", err)
		}
		if ok {
			return r, true, nil
		}
	}

	return nil, false, nil
}
