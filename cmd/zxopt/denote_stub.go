// File: denote_stub.go
// Role: A structural placeholder DenoteFunc for the CLI. The real
//       tensor-contraction evaluator (assign Z/X tensors to spiders,
//       Hadamards to edges, contract) is an external collaborator and out
//       of scope for this module (spec.md §1); this stub only has to be
//       stable enough to drive the Optimizer loop and its validation
//       logging end to end from the command line.
package main

import (
	"github.com/zxlab/zxrewrite/denote"
	"github.com/zxlab/zxrewrite/diagram"
)

// structuralDenote maps a diagram to a 1-dimensional LinearMap whose single
// output component folds in vertex count and the sum of spider phases. It
// is intentionally coarse: a one-component output differs between diagrams
// only by a scalar, so denote.MonteCarlo (which compares up to a nonzero
// global scalar) judges any two non-empty diagrams equivalent, and only an
// empty diagram (output 0) compares as not equivalent. Wiring in a real
// contraction engine only requires swapping this function out for one
// matching denote.DenoteFunc.
func structuralDenote(d *diagram.Diagram) (denote.LinearMap, error) {
	var phaseSum float64
	for _, id := range d.Vertices() {
		v, err := d.GetVertex(id)
		if err != nil {
			return nil, err
		}
		if v.Kind == diagram.KindSpider {
			phaseSum += v.Phase
		}
	}
	n := float64(d.VertexCount())

	return func([]complex128) []complex128 {
		return []complex128{complex(n, phaseSum)}
	}, nil
}
