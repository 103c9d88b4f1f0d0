// File: rewrite_rule.go
// Role: Rule (C4) — a Source/Target Structure pair plus VariableMap and
//       ConnectingWiresMap, and lazy inverse construction (spec.md §4.6).
// AI-HINT (file):
//   - ConnectingTarget encodes "single target / list / none" as a plain
//     []string: len==0 is None (pairwise fuse), len==1 is the single-target
//     case, len>1 is round-robin distribution. No separate sum type needed.
//   - Inverse() is pure and memoized with sync.Once; the rule<->inverse
//     reference never observes a half-built value (spec.md §9).
package rule

import (
	"sort"
	"sync"

	"github.com/zxlab/zxrewrite/zxerr"
)

// ConnectingTarget is where a source vertex's external (connecting) wires
// are re-homed in the target structure during a rewrite (spec.md §3):
//
//	nil / empty   -> None: the source vertex is absorbed; its externals are
//	                 reconnected pairwise to each other.
//	len() == 1    -> Single: all externals re-homed to that one target vertex.
//	len() > 1     -> List: externals distributed round-robin across the list.
type ConnectingTarget []string

// None reports whether t denotes the "none" case.
func (t ConnectingTarget) None() bool { return len(t) == 0 }

// Rule pairs a Source and Target Structure with the mappings a rewrite
// needs to excise an occurrence of Source and splice in Target.
type Rule struct {
	Name   string
	Source *Structure
	Target *Structure

	// VariableMap sends each source phase.Var name to its target
	// counterpart. On a successful match, every resolved source variable's
	// value is assigned to its target counterpart before target phases are
	// evaluated (spec.md §3).
	VariableMap map[string]string

	// ConnectingWiresMap gives, for every source vertex ID, where its
	// external connections go in the target.
	ConnectingWiresMap map[string]ConnectingTarget

	// PlaceholderInverse marks a Rule value that was produced by Inverse()
	// for a non-invertible rule; match.Match refuses to match such a rule
	// unconditionally (spec.md §4.6).
	PlaceholderInverse bool

	inverseOnce sync.Once
	inverse     *Rule
}

// NewRule validates and constructs a Rule. Every source vertex must have a
// ConnectingWiresMap entry (possibly None), and every target named there
// must exist in Target.
func NewRule(name string, source, target *Structure, variableMap map[string]string, connectingWiresMap map[string]ConnectingTarget) (*Rule, error) {
	for _, id := range source.Vertices() {
		targets, ok := connectingWiresMap[id]
		if !ok {
			return nil, zxerr.Wrap("rule.NewRule", zxerr.ErrVertexNotFound)
		}
		for _, tid := range targets {
			if _, ok := target.Vertex(tid); !ok {
				return nil, zxerr.Wrap("rule.NewRule", zxerr.ErrVertexNotFound)
			}
		}
	}

	return &Rule{
		Name:               name,
		Source:             source,
		Target:             target,
		VariableMap:        variableMap,
		ConnectingWiresMap: connectingWiresMap,
	}, nil
}

// Invertible reports whether this rule's source phases are all literal
// constants or bare variables, the condition spec.md §4.6 requires for a
// sound inverse to exist.
func (r *Rule) Invertible() bool { return r.Source.Invertible() }

// Inverse returns r's inverse rule, building and memoizing it on first
// call. If r is not algebraically invertible (spec.md §4.6), the returned
// Rule has PlaceholderInverse set and its Source structure is r's original
// Source unchanged — the match package refuses to match any rule with
// PlaceholderInverse set, per spec.md's "return a placeholder that refuses
// to match".
//
// Complexity: O(V + E) on first call; O(1) thereafter.
func (r *Rule) Inverse() *Rule {
	r.inverseOnce.Do(func() {
		if !r.Invertible() {
			r.inverse = &Rule{
				Name:               r.Name + ".inverse",
				Source:             r.Source,
				Target:             r.Target,
				VariableMap:        r.VariableMap,
				ConnectingWiresMap: r.ConnectingWiresMap,
				PlaceholderInverse: true,
			}

			return
		}

		r.inverse = &Rule{
			Name:               r.Name + ".inverse",
			Source:             r.Target,
			Target:             r.Source,
			VariableMap:        invertVariableMap(r.VariableMap),
			ConnectingWiresMap: invertConnectingWiresMap(r.Source, r.Target, r.ConnectingWiresMap),
		}
	})

	return r.inverse
}

// invertVariableMap swaps a source->target variable map into its
// target->source counterpart (spec.md §4.6 "Invert the variable map").
func invertVariableMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}

	return out
}

// invertConnectingWiresMap builds the inverse direction's map: for every
// target vertex w (becoming a source vertex in the inverse), collect every
// source vertex whose map entry names w. Exactly one preimage -> Single;
// several -> List (sorted for determinism); none -> None.
func invertConnectingWiresMap(source, target *Structure, m map[string]ConnectingTarget) map[string]ConnectingTarget {
	preimages := make(map[string][]string)
	for _, tid := range target.Vertices() {
		preimages[tid] = nil
	}
	for _, sid := range source.Vertices() {
		for _, tid := range m[sid] {
			preimages[tid] = append(preimages[tid], sid)
		}
	}
	out := make(map[string]ConnectingTarget, len(preimages))
	for tid, pre := range preimages {
		sort.Strings(pre)
		out[tid] = ConnectingTarget(pre)
	}

	return out
}
