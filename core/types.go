// Package core defines the rotation-system Graph and its flat EdgeStore,
// and provides the linear-time constructors that build, copy and filter them.
//
// This file declares Graph, Mapping, the sentinel errors, and the NewGraph
// constructor that freezes builder output into an immutable Graph.
//
// Errors:
//
//	ErrMaskLength            - a mask or array length disagrees with the graph.
//	ErrVertexOutOfRange      - a vertex index is outside [0, Size()).
//	ErrEdgeOutOfRange        - an edge index is outside [-1, EdgesCount()).
//	ErrLoopNotAllowed        - an adjacency list names its own vertex.
//	ErrMultiEdgeNotAllowed   - an adjacency list repeats a neighbour.
//	ErrAsymmetricAdjacency   - a neighbour is listed on one side only.
//	ErrBrokenRotation        - a vertex's incident edges do not form one circular list.
//	ErrZeroCostSum           - vertex costs cannot be normalized.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrMaskLength indicates a mask or per-vertex array of the wrong length.
	ErrMaskLength = errors.New("core: length mismatch")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Size()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrEdgeOutOfRange indicates an edge index outside the edge store.
	ErrEdgeOutOfRange = errors.New("core: edge out of range")

	// ErrLoopNotAllowed indicates a self-adjacency in an ordered adjacency list.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a repeated neighbour in an ordered adjacency list.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAsymmetricAdjacency indicates that u lists w but w does not list u.
	ErrAsymmetricAdjacency = errors.New("core: asymmetric adjacency")

	// ErrBrokenRotation indicates that the rotation invariant does not hold.
	ErrBrokenRotation = errors.New("core: broken rotation system")

	// ErrZeroCostSum indicates vertex costs summing to zero.
	ErrZeroCostSum = errors.New("core: vertex costs sum to zero")
)

const (
	// NoEdge marks an isolated vertex's incident edge example and a dropped
	// edge in a Mapping.
	NoEdge = -1

	// NoVertex marks a dropped vertex in a Mapping.
	NoVertex = -1
)

// Graph is an immutable planar graph stored as a rotation system.
//
// Vertices are dense indices in [0, Size()); each carries a cost. Every
// non-isolated vertex keeps one example incident edge, from which its whole
// cyclic incidence order is reachable through the EdgeStore links.
//
// Graph exposes read accessors only. Transformations (Subgraph, Clone,
// WithVertexCosts) return new values; the edge storage may be shared between
// a graph and a derived graph because neither can mutate it.
type Graph struct {
	costs            []float64  // vertex → cost
	incidentExamples []int      // vertex → some incident edge, or NoEdge
	edges            *EdgeStore // endpoints and per-endpoint rotation links
}

// Mapping records where a Subgraph call moved each vertex and edge.
// Dropped vertices hold NoVertex and dropped edges hold NoEdge.
type Mapping struct {
	// Vertices maps old vertex index → new vertex index.
	Vertices []int

	// Edges maps old edge index → new edge index.
	Edges []int
}

// Vertex returns the new index of old vertex v and whether it survived.
func (m Mapping) Vertex(v int) (int, bool) {
	nv := m.Vertices[v]
	return nv, nv != NoVertex
}

// Edge returns the new index of old edge e and whether it survived.
func (m Mapping) Edge(e int) (int, bool) {
	ne := m.Edges[e]
	return ne, ne != NoEdge
}

// NewGraph freezes builder output into a Graph. The graph takes ownership of
// all three arguments: costs, incidentExamples and edges must not be modified
// or linked again after the call, or the Graph changes under its readers.
// Callers that keep using their store should use NewGraphCopy.
//
// The rotation invariant is not re-checked here (that is O(V+E), see
// Validate); only the shapes and example indices are.
//
// Complexity: O(V).
func NewGraph(costs []float64, incidentExamples []int, edges *EdgeStore) (*Graph, error) {
	if len(costs) != len(incidentExamples) {
		return nil, fmt.Errorf("NewGraph: %d costs vs %d incident examples: %w",
			len(costs), len(incidentExamples), ErrMaskLength)
	}
	if edges == nil {
		edges = NewEdgeStore(0)
	}
	for v, e := range incidentExamples {
		if e < NoEdge || e >= edges.Size() {
			return nil, fmt.Errorf("NewGraph: vertex %d example edge %d: %w", v, e, ErrEdgeOutOfRange)
		}
	}

	return &Graph{costs: costs, incidentExamples: incidentExamples, edges: edges}, nil
}

// NewGraphCopy is NewGraph on private copies of its arguments; the caller
// keeps full use of costs, incidentExamples and edges.
//
// Complexity: O(V + E).
func NewGraphCopy(costs []float64, incidentExamples []int, edges *EdgeStore) (*Graph, error) {
	if edges != nil {
		edges = edges.Clone(0)
	}
	return NewGraph(append([]float64(nil), costs...), append([]int(nil), incidentExamples...), edges)
}

// Filled returns a slice of n copies of value.
func Filled[T any](value T, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = value
	}
	return s
}
