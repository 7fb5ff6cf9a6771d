// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only public facade over Graph: sizes, costs, endpoints, rotation links.
// Policy:
//   - No mutation and no hidden state; every getter is O(1) unless documented.
//   - Slice-returning getters return copies so the Graph stays immutable.
//   - Index misuse panics like a slice access would (caller contract violation).

package core

import "iter"

// Size returns the number of vertices.
func (g *Graph) Size() int { return len(g.costs) }

// EdgesCount returns the number of edges.
func (g *Graph) EdgesCount() int { return g.edges.Size() }

// VertexCost returns the cost of vertex v.
func (g *Graph) VertexCost(v int) float64 { return g.costs[v] }

// VertexCosts returns a copy of all vertex costs.
//
// Complexity: O(V).
func (g *Graph) VertexCosts() []float64 {
	out := make([]float64, len(g.costs))
	copy(out, g.costs)
	return out
}

// CostSum returns the sum of all vertex costs.
//
// Complexity: O(V).
func (g *Graph) CostSum() float64 {
	var sum float64
	for _, c := range g.costs {
		sum += c
	}
	return sum
}

// IncidentEdgeExample returns some edge incident to v, or NoEdge if v is isolated.
func (g *Graph) IncidentEdgeExample(v int) int { return g.incidentExamples[v] }

// IncidentEdgeExamples returns a copy of the per-vertex example edges.
//
// Complexity: O(V).
func (g *Graph) IncidentEdgeExamples() []int {
	out := make([]int, len(g.incidentExamples))
	copy(out, g.incidentExamples)
	return out
}

// Vertex1 returns the first endpoint of edge e.
func (g *Graph) Vertex1(e int) int { return g.edges.Vertex1(e) }

// Vertex2 returns the second endpoint of edge e.
func (g *Graph) Vertex2(e int) int { return g.edges.Vertex2(e) }

// OppositeVertex returns the endpoint of e that is not v.
func (g *Graph) OppositeVertex(e, v int) int { return g.edges.OppositeVertex(e, v) }

// NextEdge returns the edge following e in v's rotation.
func (g *Graph) NextEdge(e, v int) int { return g.edges.NextEdge(e, v) }

// PreviousEdge returns the edge preceding e in v's rotation.
func (g *Graph) PreviousEdge(e, v int) int { return g.edges.PreviousEdge(e, v) }

// IncidentEdges yields the edges incident to v in rotation order, starting
// from v's example edge. Isolated vertices yield nothing.
//
// Complexity: O(deg(v)) for a full iteration.
func (g *Graph) IncidentEdges(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		first := g.incidentExamples[v]
		if first == NoEdge {
			return
		}
		e := first
		for {
			if !yield(e) {
				return
			}
			e = g.edges.NextEdge(e, v)
			if e == first {
				return
			}
		}
	}
}

// Rotation returns v's incident edges in rotation order as a slice.
//
// Complexity: O(deg(v)).
func (g *Graph) Rotation(v int) []int {
	var out []int
	for e := range g.IncidentEdges(v) {
		out = append(out, e)
	}
	return out
}

// Degree returns the number of edges incident to v.
//
// Complexity: O(deg(v)).
func (g *Graph) Degree(v int) int {
	d := 0
	for range g.IncidentEdges(v) {
		d++
	}
	return d
}

// CopyEdges returns a mutable deep copy of the edge storage with room for
// extra more edges. Builders that extend an existing graph start from it.
//
// Complexity: O(E).
func (g *Graph) CopyEdges(extra int) *EdgeStore { return g.edges.Clone(extra) }
