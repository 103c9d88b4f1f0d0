// File: methods_vertices.go
// Role: Vertex lifecycle (AddBoundary/AddSpider/RemoveVertex/RemoveVertices)
//       and vertex queries (GetVertex, Vertices, SpidersByColor, Inputs,
//       Outputs, IsSpider, IsBoundary, SetColor, SetPhase, Degree).
// Determinism:
//   - Vertices()/SpidersByColor()/Inputs()/Outputs() return stably ordered
//     slices (by ID, or by PortIndex for the boundary enumerators).
// Concurrency:
//   - Vertex catalog under muVert; adjacency bootstrap under muEdgeAdj.
// AI-HINT (file):
//   - RemoveVertices is the atomic batch form spec.md §4.1 requires: callers
//     computing a removal set from vertex handles must submit them together
//     rather than calling RemoveVertex in a loop with intervening reads.
package diagram

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/zxlab/zxrewrite/zxerr"
)

func nextVertexID(d *Diagram) VertexID {
	n := atomic.AddUint64(&d.nextVertexID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, 'v')
	buf = strconv.AppendUint(buf, n, 10)

	return VertexID(buf)
}

// AddBoundary inserts a new boundary vertex with the given direction and
// port index and returns its ID.
//
// Complexity: O(1) amortized.
func (d *Diagram) AddBoundary(dir Direction, portIndex int) VertexID {
	d.muVert.Lock()
	id := nextVertexID(d)
	d.vertices[id] = &Vertex{ID: id, Kind: KindBoundary, Direction: dir, PortIndex: portIndex}
	d.muVert.Unlock()

	d.muEdgeAdj.Lock()
	d.adjacency[id] = make(map[VertexID]map[WireID]struct{})
	d.muEdgeAdj.Unlock()

	return id
}

// AddSpider inserts a new spider vertex with the given color and phase
// (normalized into [0, 2*Pi)) and returns its ID.
//
// Complexity: O(1) amortized.
func (d *Diagram) AddSpider(color Color, phase float64) VertexID {
	d.muVert.Lock()
	id := nextVertexID(d)
	d.vertices[id] = &Vertex{ID: id, Kind: KindSpider, Color: color, Phase: normalize(phase)}
	d.muVert.Unlock()

	d.muEdgeAdj.Lock()
	d.adjacency[id] = make(map[VertexID]map[WireID]struct{})
	d.muEdgeAdj.Unlock()

	return id
}

// HasVertex reports whether id is present.
func (d *Diagram) HasVertex(id VertexID) bool {
	d.muVert.RLock()
	defer d.muVert.RUnlock()
	_, ok := d.vertices[id]

	return ok
}

// GetVertex returns a read-only pointer to the vertex id, or
// zxerr.ErrVertexNotFound.
func (d *Diagram) GetVertex(id VertexID) (*Vertex, error) {
	d.muVert.RLock()
	defer d.muVert.RUnlock()
	v, ok := d.vertices[id]
	if !ok {
		return nil, zxerr.ErrVertexNotFound
	}

	return v, nil
}

// IsSpider reports whether id names a spider vertex (false for boundaries
// and for absent ids). Used by the matcher's label constraint (spec.md
// §4.3 step 1): rule-interior vertices are always spiders, so a diagram
// boundary can never be matched to one.
func (d *Diagram) IsSpider(id VertexID) bool {
	v, err := d.GetVertex(id)

	return err == nil && v.Kind == KindSpider
}

// IsBoundary reports whether id names a boundary vertex.
func (d *Diagram) IsBoundary(id VertexID) bool {
	v, err := d.GetVertex(id)

	return err == nil && v.Kind == KindBoundary
}

// SetColor updates a spider's color. Returns zxerr.ErrNotSpider for a
// boundary id.
func (d *Diagram) SetColor(id VertexID, c Color) error {
	d.muVert.Lock()
	defer d.muVert.Unlock()
	v, ok := d.vertices[id]
	if !ok {
		return zxerr.ErrVertexNotFound
	}
	if v.Kind != KindSpider {
		return zxerr.ErrNotSpider
	}
	v.Color = c

	return nil
}

// SetPhase updates a spider's phase, normalizing into [0, 2*Pi). Returns
// zxerr.ErrNotSpider for a boundary id.
func (d *Diagram) SetPhase(id VertexID, phase float64) error {
	d.muVert.Lock()
	defer d.muVert.Unlock()
	v, ok := d.vertices[id]
	if !ok {
		return zxerr.ErrVertexNotFound
	}
	if v.Kind != KindSpider {
		return zxerr.ErrNotSpider
	}
	v.Phase = normalize(phase)

	return nil
}

// RemoveVertex deletes one vertex and all of its incident wires.
//
// Complexity: O(E), via RemoveVertices' single scan of the wire catalog.
func (d *Diagram) RemoveVertex(id VertexID) error {
	return d.RemoveVertices([]VertexID{id})
}

// RemoveVertices deletes a set of vertices, and every wire incident to any
// of them, as a single atomic step. This is the batch form spec.md §4.1
// requires: a caller that computed the removal set from vertex handles
// (e.g. the Rewriter excising a matched subgraph) must not interleave
// removal with further handle use — submitting the whole set here is what
// makes that safe.
//
// Complexity: O(V_removed + E) to scan the wire catalog once.
func (d *Diagram) RemoveVertices(ids []VertexID) error {
	d.muVert.Lock()
	defer d.muVert.Unlock()
	d.muEdgeAdj.Lock()
	defer d.muEdgeAdj.Unlock()

	doomed := make(map[VertexID]bool, len(ids))
	for _, id := range ids {
		if _, ok := d.vertices[id]; !ok {
			return zxerr.ErrVertexNotFound
		}
		doomed[id] = true
	}

	for wid, w := range d.wires {
		if doomed[w.A] || doomed[w.B] {
			removeWireAdjacencyLocked(d, w)
			delete(d.wires, wid)
		}
	}
	for id := range doomed {
		delete(d.vertices, id)
		delete(d.adjacency, id)
	}
	for _, inner := range d.adjacency {
		for id := range doomed {
			delete(inner, id)
		}
	}

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Complexity: O(V log V).
func (d *Diagram) Vertices() []VertexID {
	d.muVert.RLock()
	defer d.muVert.RUnlock()

	out := make([]VertexID, 0, len(d.vertices))
	for id := range d.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns the number of vertices currently in the diagram.
func (d *Diagram) VertexCount() int {
	d.muVert.RLock()
	defer d.muVert.RUnlock()

	return len(d.vertices)
}

// SpidersByColor returns all spider IDs of the given color, sorted
// ascending. Used by rule libraries that need to enumerate candidate
// anchors of a known literal color.
func (d *Diagram) SpidersByColor(c Color) []VertexID {
	d.muVert.RLock()
	defer d.muVert.RUnlock()

	var out []VertexID
	for id, v := range d.vertices {
		if v.Kind == KindSpider && v.Color == c {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Inputs returns boundary IDs with Direction == Input, ordered by
// PortIndex ascending.
func (d *Diagram) Inputs() []VertexID { return d.boundariesByDirection(Input) }

// Outputs returns boundary IDs with Direction == Output, ordered by
// PortIndex ascending.
func (d *Diagram) Outputs() []VertexID { return d.boundariesByDirection(Output) }

func (d *Diagram) boundariesByDirection(dir Direction) []VertexID {
	d.muVert.RLock()
	defer d.muVert.RUnlock()

	var out []VertexID
	for id, v := range d.vertices {
		if v.Kind == KindBoundary && v.Direction == dir {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return d.vertices[out[i]].PortIndex < d.vertices[out[j]].PortIndex
	})

	return out
}

// Degree returns the number of wire-endpoints incident to id (a self-loop
// counts twice, matching classic undirected graph-theory convention).
//
// Complexity: O(deg(v)).
func (d *Diagram) Degree(id VertexID) (int, error) {
	d.muEdgeAdj.RLock()
	defer d.muEdgeAdj.RUnlock()
	if !d.HasVertex(id) {
		return 0, zxerr.ErrVertexNotFound
	}

	deg := 0
	for other, bucket := range d.adjacency[id] {
		if other == id {
			deg += 2 * len(bucket)
		} else {
			deg += len(bucket)
		}
	}

	return deg, nil
}
