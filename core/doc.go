// Package core provides the rotation-system representation of planar graphs
// and the linear-time constructors built on it.
//
// A rotation system stores, for every vertex, the cyclic order of its
// incident edges. That order is a combinatorial encoding of a planar
// embedding: it determines which face lies on which side of every edge,
// without storing faces or coordinates.
//
// Representation:
//
//   - Vertices are dense indices [0, Size()), each with a float64 cost.
//   - Edges are dense indices [0, EdgesCount()), each with two endpoints
//     (Vertex1, Vertex2) and, per endpoint, a next and a previous edge.
//   - Each vertex keeps one example incident edge (NoEdge when isolated);
//     IncidentEdges walks NextEdge from it until it wraps around.
//
// The links live in flat index arrays inside EdgeStore, keyed by
// (edge, endpoint), so relinking during subgraph extraction is plain index
// arithmetic with no pointer ownership to untangle.
//
// Lifecycle:
//
//	EdgeStore (mutable)  ──NewGraph──▶  Graph (immutable)
//	                                     │
//	            Subgraph / Clone / WithVertexCosts / Normalized
//	                                     ▼
//	                                 new Graph
//
// Builders (FromOrderedAdjacencies here, random generators in package
// builder, the triangulator) assemble an EdgeStore and freeze it. A Graph
// never changes afterwards, so derived graphs may share storage with their
// source.
//
// Constructors:
//
//	FromOrderedAdjacencies(adj)     // neighbours per vertex in rotation order; O(V+E)
//	(*Graph).Subgraph(vMask, eMask) // induced sub-structure + index Mapping; O(V+E)
//	(*Graph).Clone()                // Subgraph with all-true masks; O(V+E)
//	(*Graph).Validate()             // rotation invariant check; O(V+E)
//
// Example:
//
//	g, _ := core.FromOrderedAdjacencies([][]int{{1, 2, 3, 4}, {0}, {0}, {0}, {0}})
//	for e := range g.IncidentEdges(0) {
//		fmt.Println(e, g.OppositeVertex(e, 0)) // 0 1, 1 2, 2 3, 3 4
//	}
//
// Concurrency:
//
//	A Graph is safe for concurrent reads. An EdgeStore is not safe for
//	concurrent use; it is meant to live inside a single construction call.
package core
