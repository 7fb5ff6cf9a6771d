// SPDX-License-Identifier: MIT
//
// File: methods_subgraph.go
// Role: Induced subgraph extraction with index remapping.
// Determinism:
//   - Surviving vertices and edges keep their relative index order.
//   - Every surviving vertex keeps the cyclic order of its surviving edges.

package core

import "fmt"

const methodSubgraph = "Subgraph"

// Subgraph builds the sub-structure holding the vertices with vertexMask[v]
// set and the edges with edgeMask[e] set whose endpoints both survive.
//
// Implementation:
//   - Stage 1: compact surviving vertices into [0, n'), recording old → new.
//   - Stage 2: compact surviving edges into [0, m'), recording old → new.
//   - Stage 3: re-emit surviving edges with remapped endpoints.
//   - Stage 4: walk each surviving vertex's original rotation once and relink its
//     surviving edges in the same cyclic order; the first one becomes the example.
//
// Returns:
//   - Mapping: old → new indices, NoVertex/NoEdge for dropped entries.
//   - *Graph: the new, independent subgraph.
//
// Errors:
//   - ErrMaskLength if a mask length disagrees with the graph.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Subgraph(vertexMask, edgeMask []bool) (Mapping, *Graph, error) {
	if len(vertexMask) != g.Size() {
		return Mapping{}, nil, fmt.Errorf("%s: vertex mask has %d entries, graph has %d vertices: %w",
			methodSubgraph, len(vertexMask), g.Size(), ErrMaskLength)
	}
	if len(edgeMask) != g.EdgesCount() {
		return Mapping{}, nil, fmt.Errorf("%s: edge mask has %d entries, graph has %d edges: %w",
			methodSubgraph, len(edgeMask), g.EdgesCount(), ErrMaskLength)
	}

	// 1) Vertices.
	vertexMap := Filled(NoVertex, g.Size())
	costs := make([]float64, 0, g.Size())
	for v, keep := range vertexMask {
		if keep {
			vertexMap[v] = len(costs)
			costs = append(costs, g.costs[v])
		}
	}

	// 2) Edges.
	edgeMap := Filled(NoEdge, g.EdgesCount())
	kept := 0
	for e, keep := range edgeMask {
		if keep && vertexMask[g.edges.Vertex1(e)] && vertexMask[g.edges.Vertex2(e)] {
			edgeMap[e] = kept
			kept++
		}
	}

	// 3) Re-emit with remapped endpoints, in old index order.
	edges := NewEdgeStore(kept)
	for e, ne := range edgeMap {
		if ne != NoEdge {
			edges.Append(vertexMap[g.edges.Vertex1(e)], vertexMap[g.edges.Vertex2(e)])
		}
	}

	// 4) Relink rotations, preserving the original cyclic order.
	examples := Filled(NoEdge, len(costs))
	for v, nv := range vertexMap {
		if nv == NoVertex {
			continue
		}
		first, previous := NoEdge, NoEdge
		for e := range g.IncidentEdges(v) {
			ne := edgeMap[e]
			if ne == NoEdge {
				continue
			}
			if previous == NoEdge {
				examples[nv] = ne
				first = ne
			} else {
				edges.SetPreviousEdge(ne, nv, previous)
			}
			previous = ne
		}
		if first != NoEdge {
			// Close the cycle; a single surviving edge links to itself.
			edges.SetPreviousEdge(first, nv, previous)
		}
	}

	sub, err := NewGraph(costs, examples, edges)
	if err != nil {
		return Mapping{}, nil, fmt.Errorf("%s: %w", methodSubgraph, err)
	}
	return Mapping{Vertices: vertexMap, Edges: edgeMap}, sub, nil
}
