// SPDX-License-Identifier: MIT
package rule_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/match"
	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rule"
	"github.com/zxlab/zxrewrite/rewrite"
)

// buildRecolorRule recolors a single spider of any degree from green to red,
// leaving its phase untouched. Unlike the library's ColorChange, it sets
// AnyWireBound on the target vertex too, so its Inverse (whose Source is
// this rule's Target) accepts a vertex with any number of external wires —
// the condition spec.md §4.6 requires for a forward/backward round trip to
// actually re-match, not merely to be flagged Invertible.
func buildRecolorRule(t *rapid.T) *rule.Rule {
	source, err := rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "s", ColorClass: rule.ClassGreen, Phase: phase.Var("p"), WireBound: rule.AnyWireBound()},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("NewStructure(source): %v", err)
	}
	target, err := rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "t", ColorClass: rule.ClassRed, Phase: phase.Var("p2"), WireBound: rule.AnyWireBound()},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("NewStructure(target): %v", err)
	}
	r, err := rule.NewRule("recolor", source, target,
		map[string]string{"p": "p2"},
		map[string]rule.ConnectingTarget{"s": {"t"}})
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}

	return r
}

// TestRecolorRule_ForwardThenInverse_RoundTripsColorAndPhase checks the
// round-trip property for a rule whose Source and Target phases are both
// bare variables: applying it and then its Inverse restores the diagram's
// original color and phase on a spider with an arbitrary number of external
// boundary wires.
func TestRecolorRule_ForwardThenInverse_RoundTripsColorAndPhase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		degree := rapid.IntRange(0, 4).Draw(t, "degree")
		p := rapid.Float64Range(-10, 10).Draw(t, "phase")

		d := diagram.NewDiagram()
		s := d.AddSpider(diagram.Green, p)
		for i := 0; i < degree; i++ {
			b := d.AddBoundary(diagram.Input, i)
			if _, err := d.AddWire(b, s, false); err != nil {
				t.Fatalf("AddWire: %v", err)
			}
		}
		before := d.VertexCount()

		r := buildRecolorRule(t)
		if !r.Invertible() {
			t.Fatalf("recolor rule must be invertible (both phases are bare variables)")
		}

		_, ok, err := match.Match(d, r, true, rewrite.Rewriter{})
		if err != nil {
			t.Fatalf("forward Match error: %v", err)
		}
		if !ok {
			t.Fatalf("forward Match expected to succeed")
		}
		if got := len(d.SpidersByColor(diagram.Red)); got != 1 {
			t.Fatalf("expected one red spider after the forward rewrite, got %d", got)
		}

		_, ok, err = match.Match(d, r.Inverse(), true, rewrite.Rewriter{})
		if err != nil {
			t.Fatalf("inverse Match error: %v", err)
		}
		if !ok {
			t.Fatalf("inverse Match expected to succeed on the recolored spider")
		}
		if got := d.VertexCount(); got != before {
			t.Fatalf("round trip vertex count = %d, want %d", got, before)
		}
		greens := d.SpidersByColor(diagram.Green)
		if len(greens) != 1 {
			t.Fatalf("expected one green spider after the round trip, got %d", len(greens))
		}
		v, err := d.GetVertex(greens[0])
		if err != nil {
			t.Fatalf("GetVertex: %v", err)
		}
		if got, want := v.Phase, phase.Normalize(p); math.Abs(got-want) > 1e-9 {
			t.Fatalf("phase after round trip = %v, want %v", got, want)
		}
		if err := d.Validate(); err != nil {
			t.Fatalf("Validate failed after round trip: %v", err)
		}
	})
}
