package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarsep/core"
)

// TestFromOrderedAdjacencies_Star covers the canonical star fixture.
func TestFromOrderedAdjacencies_Star(t *testing.T) {
	g := mustGraph(t, starAdjacency)

	require.Equal(t, 5, g.Size())
	require.Equal(t, 4, g.EdgesCount())
	for v := 0; v < g.Size(); v++ {
		require.InDelta(t, 0.2, g.VertexCost(v), 1e-12)
	}
	require.Equal(t, []int{1, 2, 3, 4}, neighbourRotation(g, 0))
	require.Equal(t, 4, g.Degree(0))
	for leaf := 1; leaf <= 4; leaf++ {
		require.Equal(t, []int{0}, neighbourRotation(g, leaf))
	}
	// Edges are created in first-met order with the lister as Vertex1.
	for e := 0; e < 4; e++ {
		require.Equal(t, 0, g.Vertex1(e))
		require.Equal(t, e+1, g.Vertex2(e))
	}
}

// TestFromOrderedAdjacencies_Octahedron checks every rotation of a
// triangulation round-trips in the given order.
func TestFromOrderedAdjacencies_Octahedron(t *testing.T) {
	g := mustGraph(t, octahedronAdjacency)

	require.Equal(t, 6, g.Size())
	require.Equal(t, 12, g.EdgesCount())
	for v, want := range octahedronAdjacency {
		require.Equal(t, want, neighbourRotation(g, v), "vertex %d", v)
	}
}

// TestFromOrderedAdjacencies_IsolatedVertices keeps isolated vertices with
// no example edge.
func TestFromOrderedAdjacencies_IsolatedVertices(t *testing.T) {
	g := mustGraph(t, [][]int{{2}, {}, {0}, {}})

	require.Equal(t, 4, g.Size())
	require.Equal(t, 1, g.EdgesCount())
	require.Equal(t, core.NoEdge, g.IncidentEdgeExample(1))
	require.Equal(t, core.NoEdge, g.IncidentEdgeExample(3))
	require.Empty(t, g.Rotation(1))
	require.Equal(t, 0, g.Degree(3))
}

// TestFromOrderedAdjacencies_Empty builds the graph with no vertices.
func TestFromOrderedAdjacencies_Empty(t *testing.T) {
	g := mustGraph(t, nil)
	require.Equal(t, 0, g.Size())
	require.Equal(t, 0, g.EdgesCount())
}

// TestFromOrderedAdjacencies_Errors rejects malformed lists.
func TestFromOrderedAdjacencies_Errors(t *testing.T) {
	tests := []struct {
		name      string
		adjacency [][]int
		want      error
	}{
		{"out of range", [][]int{{1}, {0, 2}}, core.ErrVertexOutOfRange},
		{"negative", [][]int{{-1}}, core.ErrVertexOutOfRange},
		{"self loop", [][]int{{0, 1}, {0}}, core.ErrLoopNotAllowed},
		{"repeated neighbour", [][]int{{1, 1}, {0, 0}}, core.ErrMultiEdgeNotAllowed},
		{"one-sided", [][]int{{1, 2}, {0}, {}}, core.ErrAsymmetricAdjacency},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.FromOrderedAdjacencies(tc.adjacency)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
