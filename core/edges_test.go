package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarsep/core"
)

// TestEdgeStore_AppendSelfLinked verifies that a fresh edge is a length-1
// rotation at both endpoints.
func TestEdgeStore_AppendSelfLinked(t *testing.T) {
	s := core.NewEdgeStore(1)
	e := s.Append(3, 7)

	require.Equal(t, 0, e)
	require.Equal(t, 1, s.Size())
	require.Equal(t, 3, s.Vertex1(e))
	require.Equal(t, 7, s.Vertex2(e))
	require.Equal(t, 7, s.OppositeVertex(e, 3))
	require.Equal(t, 3, s.OppositeVertex(e, 7))
	for _, v := range []int{3, 7} {
		require.Equal(t, e, s.NextEdge(e, v))
		require.Equal(t, e, s.PreviousEdge(e, v))
	}
}

// TestEdgeStore_SettersLinkBothDirections checks the setter convention:
// each setter also writes the inverse link.
func TestEdgeStore_SettersLinkBothDirections(t *testing.T) {
	s := core.NewEdgeStore(3)
	a := s.Append(0, 1)
	b := s.Append(0, 2)
	c := s.Append(3, 0)

	s.SetNextEdge(a, 0, b)
	s.SetNextEdge(b, 0, c)
	s.SetPreviousEdge(a, 0, c)

	require.Equal(t, b, s.NextEdge(a, 0))
	require.Equal(t, c, s.NextEdge(b, 0))
	require.Equal(t, a, s.NextEdge(c, 0))
	require.Equal(t, c, s.PreviousEdge(a, 0))
	require.Equal(t, a, s.PreviousEdge(b, 0))
	require.Equal(t, b, s.PreviousEdge(c, 0))

	// The other endpoints stay untouched.
	require.Equal(t, a, s.NextEdge(a, 1))
	require.Equal(t, c, s.NextEdge(c, 3))
}

// TestEdgeStore_InsertAfter splices edges one by one after the same head,
// which reverses their insertion order behind it.
func TestEdgeStore_InsertAfter(t *testing.T) {
	s := core.NewEdgeStore(4)
	head := s.Append(0, 1)
	for w := 2; w <= 4; w++ {
		s.InsertAfter(head, 0, s.Append(0, w))
	}

	var order []int
	e := head
	for i := 0; i < 4; i++ {
		order = append(order, s.OppositeVertex(e, 0))
		e = s.NextEdge(e, 0)
	}
	require.Equal(t, head, e)
	require.Equal(t, []int{1, 4, 3, 2}, order)
}

// TestEdgeStore_Clone checks deep copying and spare capacity.
func TestEdgeStore_Clone(t *testing.T) {
	s := core.NewEdgeStore(0)
	a := s.Append(0, 1)
	b := s.Append(1, 2)
	s.SetNextEdge(a, 1, b)
	s.SetNextEdge(b, 1, a)

	c := s.Clone(5)
	c.Append(2, 0)

	require.Equal(t, 2, s.Size())
	require.Equal(t, 3, c.Size())
	require.Equal(t, b, c.NextEdge(a, 1))

	c.SetNextEdge(a, 1, a)
	require.Equal(t, b, s.NextEdge(a, 1), "clone must not alias the source links")
}

// TestEdgeStore_NotAnEndpointPanics documents the loud failure on misuse.
func TestEdgeStore_NotAnEndpointPanics(t *testing.T) {
	s := core.NewEdgeStore(1)
	e := s.Append(0, 1)
	require.Panics(t, func() { s.NextEdge(e, 2) })
	require.Panics(t, func() { s.OppositeVertex(e, 5) })
	require.Panics(t, func() { s.NextEdge(4, 0) })
}
