// SPDX-License-Identifier: MIT
// Package diagram_test verifies Diagram lifecycle and invariant contracts.
package diagram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxlab/zxrewrite/diagram"
)

// buildSeries builds (in)--(green pi)--(red pi/2)--(out), a 2-spider chain
// with two boundaries, mirroring the spec.md §8 Spider-1 fixture shape.
func buildSeries(t *testing.T) (*diagram.Diagram, diagram.VertexID, diagram.VertexID, diagram.VertexID, diagram.VertexID) {
	t.Helper()
	d := diagram.NewDiagram()
	in := d.AddBoundary(diagram.Input, 0)
	out := d.AddBoundary(diagram.Output, 0)
	g := d.AddSpider(diagram.Green, math.Pi)
	r := d.AddSpider(diagram.Red, math.Pi/2)
	_, err := d.AddWire(in, g, false)
	require.NoError(t, err)
	_, err = d.AddWire(g, r, false)
	require.NoError(t, err)
	_, err = d.AddWire(r, out, false)
	require.NoError(t, err)

	return d, in, g, r, out
}

func TestDiagram_BoundaryDegreeInvariant(t *testing.T) {
	d, _, _, _, _ := buildSeries(t)
	assert.NoError(t, d.Validate())
}

func TestDiagram_RemoveVertexRemovesIncidentWires(t *testing.T) {
	d, _, g, r, _ := buildSeries(t)
	require.NoError(t, d.RemoveVertex(g))
	assert.False(t, d.HasVertex(g))
	deg, err := d.Degree(r)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestDiagram_RemoveVerticesIsAtomic(t *testing.T) {
	d, in, g, r, out := buildSeries(t)
	require.NoError(t, d.RemoveVertices([]diagram.VertexID{g, r}))
	assert.True(t, d.HasVertex(in))
	assert.True(t, d.HasVertex(out))
	assert.False(t, d.HasVertex(g))
	assert.False(t, d.HasVertex(r))
	assert.Equal(t, 0, d.WireCount())
}

func TestDiagram_SelfLoopDoublesDegree(t *testing.T) {
	d := diagram.NewDiagram()
	s := d.AddSpider(diagram.Green, 0)
	_, err := d.AddWire(s, s, false)
	require.NoError(t, err)
	deg, err := d.Degree(s)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	wires, err := d.IncidentWires(s)
	require.NoError(t, err)
	assert.Len(t, wires, 1)
}

func TestDiagram_ParallelWiresAllowed(t *testing.T) {
	d := diagram.NewDiagram()
	a := d.AddSpider(diagram.Green, 0)
	b := d.AddSpider(diagram.Red, 0)
	_, err := d.AddWire(a, b, false)
	require.NoError(t, err)
	_, err = d.AddWire(a, b, true)
	require.NoError(t, err)
	wires, err := d.IncidentWires(a)
	require.NoError(t, err)
	assert.Len(t, wires, 2)
}

func TestDiagram_PhaseAlwaysNormalized(t *testing.T) {
	d := diagram.NewDiagram()
	s := d.AddSpider(diagram.Green, -math.Pi/2)
	v, err := d.GetVertex(s)
	require.NoError(t, err)
	assert.True(t, v.Phase >= 0 && v.Phase < 2*math.Pi)
	assert.InDelta(t, 2*math.Pi-math.Pi/2, v.Phase, 1e-9)
}

func TestDiagram_Clone_IsIndependent(t *testing.T) {
	d, _, g, _, _ := buildSeries(t)
	clone := d.Clone()
	require.NoError(t, clone.SetColor(g, diagram.Red))
	orig, err := d.GetVertex(g)
	require.NoError(t, err)
	assert.Equal(t, diagram.Green, orig.Color)
	cloned, err := clone.GetVertex(g)
	require.NoError(t, err)
	assert.Equal(t, diagram.Red, cloned.Color)
}

func TestDiagram_InputsOutputsOrderedByPortIndex(t *testing.T) {
	d := diagram.NewDiagram()
	i1 := d.AddBoundary(diagram.Input, 1)
	i0 := d.AddBoundary(diagram.Input, 0)
	assert.Equal(t, []diagram.VertexID{i0, i1}, d.Inputs())
}

func TestDiagram_RemoveVertices_UnknownIDFails(t *testing.T) {
	d := diagram.NewDiagram()
	err := d.RemoveVertices([]diagram.VertexID{"v999"})
	assert.Error(t, err)
}
