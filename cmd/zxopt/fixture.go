// File: fixture.go
// Role: Minimal JSON diagram fixture loader, so the CLI is exercisable
//       without the external OpenQASM translator (spec.md §1 keeps that
//       translator out of scope).
package main

import (
	"encoding/json"
	"os"

	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/zxerr"
)

type fixtureVertex struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"` // "boundary" or "spider"
	Color     string  `json:"color,omitempty"`
	Phase     float64 `json:"phase,omitempty"`
	Direction string  `json:"direction,omitempty"` // "input" or "output"
	PortIndex int     `json:"portIndex,omitempty"`
}

type fixtureWire struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Hadamard bool   `json:"hadamard,omitempty"`
}

type fixture struct {
	Vertices []fixtureVertex `json:"vertices"`
	Wires    []fixtureWire   `json:"wires"`
}

// loadDiagram reads a JSON fixture file and builds the Diagram it describes.
func loadDiagram(path string) (*diagram.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zxerr.Wrap("zxopt.loadDiagram", err)
	}

	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, zxerr.Wrap("zxopt.loadDiagram", err)
	}

	d := diagram.NewDiagram()
	ids := make(map[string]diagram.VertexID, len(f.Vertices))
	for _, v := range f.Vertices {
		switch v.Kind {
		case "boundary":
			dir := diagram.Input
			if v.Direction == "output" {
				dir = diagram.Output
			}
			ids[v.ID] = d.AddBoundary(dir, v.PortIndex)
		case "spider":
			color := diagram.Green
			if v.Color == "red" {
				color = diagram.Red
			}
			ids[v.ID] = d.AddSpider(color, v.Phase)
		default:
			return nil, zxerr.Wrap("zxopt.loadDiagram", zxerr.ErrInvariantViolation)
		}
	}
	for _, w := range f.Wires {
		a, ok := ids[w.A]
		if !ok {
			return nil, zxerr.Wrap("zxopt.loadDiagram", zxerr.ErrVertexNotFound)
		}
		b, ok := ids[w.B]
		if !ok {
			return nil, zxerr.Wrap("zxopt.loadDiagram", zxerr.ErrVertexNotFound)
		}
		if _, err := d.AddWire(a, b, w.Hadamard); err != nil {
			return nil, zxerr.Wrap("zxopt.loadDiagram", err)
		}
	}

	return d, nil
}
