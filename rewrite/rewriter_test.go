// SPDX-License-Identifier: MIT
// Package rewrite_test verifies Rewrite against the spec.md §8 concrete
// scenarios, driven through match.Match(..., apply=true, ...) exactly as the
// Optimizer (C7) calls it.
package rewrite_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/match"
	"github.com/zxlab/zxrewrite/phase"
	"github.com/zxlab/zxrewrite/rewrite"
	"github.com/zxlab/zxrewrite/rule"
)

// fusionRule mirrors spec.md §8 Spider-1: two adjacent same-colored spiders,
// connected by a plain wire, fuse into one spider whose phase is their sum
// and which inherits both endpoints' external connections.
func fusionRule(t *testing.T) *rule.Rule {
	t.Helper()
	source, err := rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "a", ColorClass: rule.ClassGreen, Phase: phase.Var("alpha"), WireBound: rule.AnyWireBound()},
			{ID: "b", ColorClass: rule.ClassGreen, Phase: phase.Var("beta"), WireBound: rule.AnyWireBound()},
		},
		[]*rule.StructEdge{{A: "a", B: "b", Hadamard: false}},
	)
	require.NoError(t, err)
	target, err := rule.NewStructure(
		[]*rule.StructVertex{{ID: "c", ColorClass: rule.ClassGreen, Phase: phase.Add(phase.Var("gamma1"), phase.Var("gamma2"))}},
		nil,
	)
	require.NoError(t, err)
	r, err := rule.NewRule("spider-fusion", source, target,
		map[string]string{"alpha": "gamma1", "beta": "gamma2"},
		map[string]rule.ConnectingTarget{"a": {"c"}, "b": {"c"}})
	require.NoError(t, err)

	return r
}

// identityRemovalRule mirrors spec.md §8 Spider-2: an interior degree-2
// green spider with phase 0 is absorbed, its two neighbors fused directly.
func identityRemovalRule(t *testing.T) *rule.Rule {
	t.Helper()
	source, err := rule.NewStructure(
		[]*rule.StructVertex{
			{ID: "s0", ColorClass: rule.ClassGreen, Phase: phase.Const(0), WireBound: rule.MaxWires(2)},
		},
		nil,
	)
	require.NoError(t, err)
	target, err := rule.NewStructure(nil, nil)
	require.NoError(t, err)
	r, err := rule.NewRule("identity-removal", source, target, nil,
		map[string]rule.ConnectingTarget{"s0": nil})
	require.NoError(t, err)

	return r
}

func TestRewrite_SpiderFusion(t *testing.T) {
	d := diagram.NewDiagram()
	in := d.AddBoundary(diagram.Input, 0)
	out := d.AddBoundary(diagram.Output, 0)
	g1 := d.AddSpider(diagram.Green, math.Pi)
	g2 := d.AddSpider(diagram.Green, math.Pi/2)
	_, err := d.AddWire(in, g1, false)
	require.NoError(t, err)
	_, err = d.AddWire(g1, g2, false)
	require.NoError(t, err)
	_, err = d.AddWire(g2, out, false)
	require.NoError(t, err)

	r := fusionRule(t)
	_, ok, err := match.Match(d, r, true, rewrite.Rewriter{})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.Validate())
	assert.Equal(t, 3, d.VertexCount()) // in, out, fused spider
	assert.Equal(t, 2, d.WireCount())   // in-fused, fused-out

	fused := d.SpidersByColor(diagram.Green)
	require.Len(t, fused, 1)
	fv, err := d.GetVertex(fused[0])
	require.NoError(t, err)
	assert.InDelta(t, phase.Normalize(math.Pi+math.Pi/2), fv.Phase, 1e-9)
}

func TestRewrite_IdentityRemoval(t *testing.T) {
	d := diagram.NewDiagram()
	in := d.AddBoundary(diagram.Input, 0)
	out := d.AddBoundary(diagram.Output, 0)
	s0 := d.AddSpider(diagram.Green, 0)
	_, err := d.AddWire(in, s0, false)
	require.NoError(t, err)
	_, err = d.AddWire(s0, out, true)
	require.NoError(t, err)

	r := identityRemovalRule(t)
	_, ok, err := match.Match(d, r, true, rewrite.Rewriter{})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.Validate())
	assert.Equal(t, 2, d.VertexCount()) // only the two boundaries remain
	assert.Equal(t, 1, d.WireCount())

	assert.True(t, d.HasWire(in, out))
	w := d.Wires()[0]
	assert.True(t, w.Hadamard) // the single Hadamard flag on s0's neighborhood carries through
}

func TestRewrite_IdentityRemoval_NoMatchOnNonZeroPhase(t *testing.T) {
	d := diagram.NewDiagram()
	in := d.AddBoundary(diagram.Input, 0)
	out := d.AddBoundary(diagram.Output, 0)
	s0 := d.AddSpider(diagram.Green, math.Pi)
	_, err := d.AddWire(in, s0, false)
	require.NoError(t, err)
	_, err = d.AddWire(s0, out, false)
	require.NoError(t, err)

	r := identityRemovalRule(t)
	_, ok, err := match.Match(d, r, true, rewrite.Rewriter{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, d.VertexCount()) // diagram left untouched
}
