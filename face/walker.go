// SPDX-License-Identifier: MIT
//
// File: walker.go
// Role: Lazy boundary walk around a sub-structure given by an edge mask.
// Determinism:
//   - Edges are produced in rotation order along the walk; the walk is a pure
//     function of the graph, the masks and the start position.
// Termination:
//   - One step maps (edge, vertex) to (next edge, vertex or its opposite); this map is a
//     bijection on the 2E corners, so the walk always returns to its start state.

package face

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/planarsep/core"
)

const methodNewIncidenceWalker = "NewIncidenceWalker"

// IncidenceWalker lists, in cyclic order, the edges incident to the boundary
// of a sub-structure from the outside.
//
// Starting just after startEdge in startVertex's rotation, the walker moves
// forward through the full graph's rotation at the current vertex. An edge in
// the subgraph mask is crossed (its other endpoint becomes current); an edge
// only in the possible-incidences mask is produced without crossing; any
// other edge is skipped. The walk ends when the next step would resume at
// the start position.
//
// An IncidenceWalker is single-use: once exhausted, it stays exhausted.
type IncidenceWalker struct {
	g        *core.Graph
	subgraph []bool
	possible []bool

	startVertex, startEdge int
	vertex, edge           int
	done                   bool
}

// NewIncidenceWalker prepares a boundary walk from (startVertex, startEdge).
// startEdge must be incident to startVertex, typically a subgraph edge on the
// boundary rotation.
//
// Errors:
//   - ErrGraphNil, ErrNotIncident.
//   - core.ErrMaskLength if a mask length differs from g.EdgesCount().
//   - core.ErrVertexOutOfRange / core.ErrEdgeOutOfRange for bad start indices.
//
// Complexity: O(1); the masks are not copied and must not change during the walk.
func NewIncidenceWalker(g *core.Graph, subgraphMask, possibleMask []bool, startVertex, startEdge int) (*IncidenceWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(subgraphMask) != g.EdgesCount() || len(possibleMask) != g.EdgesCount() {
		return nil, fmt.Errorf("%s: masks have %d and %d entries, graph has %d edges: %w",
			methodNewIncidenceWalker, len(subgraphMask), len(possibleMask), g.EdgesCount(), core.ErrMaskLength)
	}
	if startVertex < 0 || startVertex >= g.Size() {
		return nil, fmt.Errorf("%s: vertex %d: %w", methodNewIncidenceWalker, startVertex, core.ErrVertexOutOfRange)
	}
	if startEdge < 0 || startEdge >= g.EdgesCount() {
		return nil, fmt.Errorf("%s: edge %d: %w", methodNewIncidenceWalker, startEdge, core.ErrEdgeOutOfRange)
	}
	if g.Vertex1(startEdge) != startVertex && g.Vertex2(startEdge) != startVertex {
		return nil, fmt.Errorf("%s: edge %d at vertex %d: %w", methodNewIncidenceWalker, startEdge, startVertex, ErrNotIncident)
	}

	return &IncidenceWalker{
		g:           g,
		subgraph:    subgraphMask,
		possible:    possibleMask,
		startVertex: startVertex,
		startEdge:   startEdge,
		vertex:      startVertex,
		edge:        g.NextEdge(startEdge, startVertex),
	}, nil
}

// Next returns the next incident edge, or (core.NoEdge, false) once the walk
// is back at its start.
//
// Complexity: amortized O(1); a full walk is O(E).
func (w *IncidenceWalker) Next() (int, bool) {
	for !w.done {
		e := w.edge
		crossed := w.subgraph[e]

		after := w.vertex
		if crossed {
			after = w.g.OppositeVertex(e, w.vertex)
		}
		if e == w.startEdge && after == w.startVertex {
			w.done = true
			break
		}

		w.vertex = after
		w.edge = w.g.NextEdge(e, after)
		if !crossed && w.possible[e] {
			return e, true
		}
	}
	return core.NoEdge, false
}

// All adapts the walker to a range-over-func sequence. It shares the
// walker's state: breaking out of the loop and ranging again resumes where
// the previous loop stopped.
func (w *IncidenceWalker) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			e, ok := w.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// SubgraphIncidences runs a whole boundary walk and collects its edges.
//
// Complexity: O(E).
func SubgraphIncidences(g *core.Graph, subgraphMask, possibleMask []bool, startVertex, startEdge int) ([]int, error) {
	w, err := NewIncidenceWalker(g, subgraphMask, possibleMask, startVertex, startEdge)
	if err != nil {
		return nil, err
	}
	var out []int
	for e := range w.All() {
		out = append(out, e)
	}
	return out, nil
}
