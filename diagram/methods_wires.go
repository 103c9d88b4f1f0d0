// File: methods_wires.go
// Role: Wire lifecycle & queries: AddWire/RemoveWire/HasWire/GetWire/Wires/
//       WireCount, plus IncidentWires and the nextWireID generator.
// Determinism:
//   - Wires() and IncidentWires() return wires sorted by Wire.ID asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; reads under its read lock.
// AI-HINT (file):
//   - A ZX-diagram always permits self-loops and parallel wires; there is no
//     opt-out flag the way core.Graph has WithLoops/WithMultiEdges, because
//     spec.md §3 makes both unconditional.
package diagram

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/zxlab/zxrewrite/zxerr"
)

func nextWireID(d *Diagram) WireID {
	n := atomic.AddUint64(&d.nextWireID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, 'w')
	buf = strconv.AppendUint(buf, n, 10)

	return WireID(buf)
}

func ensureAdjacency(d *Diagram, a, b VertexID) {
	if d.adjacency[a] == nil {
		d.adjacency[a] = make(map[VertexID]map[WireID]struct{})
	}
	if d.adjacency[a][b] == nil {
		d.adjacency[a][b] = make(map[WireID]struct{})
	}
}

// removeWireAdjacencyLocked removes w's adjacency entries. Caller must hold
// muEdgeAdj for writing.
func removeWireAdjacencyLocked(d *Diagram, w *Wire) {
	if bucket, ok := d.adjacency[w.A][w.B]; ok {
		delete(bucket, w.ID)
	}
	if w.A != w.B {
		if bucket, ok := d.adjacency[w.B][w.A]; ok {
			delete(bucket, w.ID)
		}
	}
}

// AddWire connects a and b with a new wire, optionally a Hadamard wire, and
// returns its ID. Both endpoints must already exist.
//
// Complexity: O(1) amortized.
func (d *Diagram) AddWire(a, b VertexID, hadamard bool) (WireID, error) {
	if !d.HasVertex(a) || !d.HasVertex(b) {
		return "", zxerr.ErrVertexNotFound
	}

	d.muEdgeAdj.Lock()
	defer d.muEdgeAdj.Unlock()

	id := nextWireID(d)
	w := &Wire{ID: id, A: a, B: b, Hadamard: hadamard}
	d.wires[id] = w
	ensureAdjacency(d, a, b)
	d.adjacency[a][b][id] = struct{}{}
	if a != b {
		ensureAdjacency(d, b, a)
		d.adjacency[b][a][id] = struct{}{}
	} else {
		// Self-loop: the wire has a single entry in adjacency[a][a] (setting
		// the same key again is a no-op); Degree counts it twice through its
		// own other == id case.
		d.adjacency[a][a][id] = struct{}{}
	}

	return id, nil
}

// RemoveWire deletes one wire by ID.
func (d *Diagram) RemoveWire(id WireID) error {
	d.muEdgeAdj.Lock()
	defer d.muEdgeAdj.Unlock()
	w, ok := d.wires[id]
	if !ok {
		return zxerr.ErrEdgeNotFound
	}
	delete(d.wires, id)
	removeWireAdjacencyLocked(d, w)

	return nil
}

// HasWire reports whether at least one wire connects a and b.
func (d *Diagram) HasWire(a, b VertexID) bool {
	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()

	return len(d.adjacency[a][b]) > 0
}

// WiresBetween returns every wire connecting a and b (both directions;
// order of a/b does not matter), sorted by Wire.ID asc. For a self-loop
// (a == b) each loop wire appears once. Used by the matcher to count
// available plain/Hadamard wires between two already-assigned vertices
// without caring which specific wire serves which pattern edge.
//
// Complexity: O(deg log deg).
func (d *Diagram) WiresBetween(a, b VertexID) []*Wire {
	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()

	seen := make(map[WireID]bool)
	var out []*Wire
	for wid := range d.adjacency[a][b] {
		if !seen[wid] {
			seen[wid] = true
			out = append(out, d.wires[wid])
		}
	}
	if a != b {
		for wid := range d.adjacency[b][a] {
			if !seen[wid] {
				seen[wid] = true
				out = append(out, d.wires[wid])
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// GetWire returns a read-only pointer to the wire with the given id.
func (d *Diagram) GetWire(id WireID) (*Wire, error) {
	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()
	w, ok := d.wires[id]
	if !ok {
		return nil, zxerr.ErrEdgeNotFound
	}

	return w, nil
}

// SetHadamard updates a wire's Hadamard flag.
func (d *Diagram) SetHadamard(id WireID, hadamard bool) error {
	d.muEdgeAdj.Lock()
	defer d.muEdgeAdj.Unlock()
	w, ok := d.wires[id]
	if !ok {
		return zxerr.ErrEdgeNotFound
	}
	w.Hadamard = hadamard

	return nil
}

// Wires returns all wires sorted by ID ascending.
//
// Complexity: O(E log E).
func (d *Diagram) Wires() []*Wire {
	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()
	out := make([]*Wire, 0, len(d.wires))
	for _, w := range d.wires {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// WireCount returns the total number of wires.
func (d *Diagram) WireCount() int {
	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()

	return len(d.wires)
}

// IncidentWires returns every wire touching id, sorted by Wire.ID asc. A
// self-loop appears once, regardless of it occupying two adjacency slots
// internally.
//
// Complexity: O(deg(v) log deg(v)).
func (d *Diagram) IncidentWires(id VertexID) ([]*Wire, error) {
	if !d.HasVertex(id) {
		return nil, zxerr.ErrVertexNotFound
	}

	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()

	seen := make(map[WireID]bool)
	var out []*Wire
	for _, bucket := range d.adjacency[id] {
		for wid := range bucket {
			if seen[wid] {
				continue
			}
			seen[wid] = true
			out = append(out, d.wires[wid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
