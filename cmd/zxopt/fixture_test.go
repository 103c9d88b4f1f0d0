// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxlab/zxrewrite/diagram"
)

func TestLoadDiagram_BuildsExpectedShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.json")
	contents := []byte(`{
		"vertices": [
			{"id": "in", "kind": "boundary", "direction": "input", "portIndex": 0},
			{"id": "out", "kind": "boundary", "direction": "output", "portIndex": 0},
			{"id": "s0", "kind": "spider", "color": "green", "phase": 1.5707963267948966}
		],
		"wires": [
			{"a": "in", "b": "s0"},
			{"a": "s0", "b": "out", "hadamard": true}
		]
	}`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	d, err := loadDiagram(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.VertexCount())
	assert.Equal(t, 2, d.WireCount())
	assert.Len(t, d.Inputs(), 1)
	assert.Len(t, d.Outputs(), 1)
	assert.Len(t, d.SpidersByColor(diagram.Green), 1)
}

func TestLoadDiagram_UnknownVertexInWire(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.json")
	contents := []byte(`{"vertices": [{"id": "a", "kind": "spider"}], "wires": [{"a": "a", "b": "missing"}]}`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	_, err := loadDiagram(path)
	assert.Error(t, err)
}

func TestLoadDiagram_MissingFile(t *testing.T) {
	_, err := loadDiagram("/nonexistent/diagram.json")
	assert.Error(t, err)
}
