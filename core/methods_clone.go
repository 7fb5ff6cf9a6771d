// File: methods_clone.go
// Role: Cloning and cost replacement.
// Determinism:
//   - Clone keeps vertex and edge indices; only the example edge per vertex may differ.

package core

import "fmt"

// Clone returns a structurally identical, independent copy of g.
// The copy's example incident edge of a vertex may differ from g's; any edge
// in the vertex's rotation is equally valid.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	_, clone, err := g.Subgraph(Filled(true, g.Size()), Filled(true, g.EdgesCount()))
	if err != nil {
		// Full masks always match the graph.
		panic(err)
	}
	return clone
}

// WithVertexCosts returns a graph with g's structure and the given costs.
// The edge storage is shared with g, which is safe because neither graph can
// mutate it; costs are copied.
//
// Errors:
//   - ErrMaskLength if len(costs) != g.Size().
//
// Complexity: O(V).
func (g *Graph) WithVertexCosts(costs []float64) (*Graph, error) {
	if len(costs) != g.Size() {
		return nil, fmt.Errorf("WithVertexCosts: %d costs for %d vertices: %w", len(costs), g.Size(), ErrMaskLength)
	}
	own := make([]float64, len(costs))
	copy(own, costs)
	return &Graph{costs: own, incidentExamples: g.incidentExamples, edges: g.edges}, nil
}

// Normalized returns a graph whose vertex costs are g's costs divided by
// their sum, so that they sum to 1.
//
// Errors:
//   - ErrZeroCostSum if the costs sum to zero.
//
// Complexity: O(V).
func (g *Graph) Normalized() (*Graph, error) {
	sum := g.CostSum()
	if sum == 0 {
		return nil, fmt.Errorf("Normalized: %d vertices: %w", g.Size(), ErrZeroCostSum)
	}
	costs := make([]float64, len(g.costs))
	for v, c := range g.costs {
		costs[v] = c / sum
	}
	return &Graph{costs: costs, incidentExamples: g.incidentExamples, edges: g.edges}, nil
}
