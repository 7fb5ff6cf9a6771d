package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarsep/core"
)

// TestValidate_DetectsBrokenRotations builds stores by hand that violate the
// rotation invariant in different ways.
func TestValidate_DetectsBrokenRotations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*core.EdgeStore, []int)
		vertices int
	}{
		{
			name: "unlinked middle vertex",
			build: func() (*core.EdgeStore, []int) {
				s := core.NewEdgeStore(2)
				s.Append(0, 1)
				s.Append(1, 2)
				return s, []int{0, 0, 1}
			},
			vertices: 3,
		},
		{
			name: "missing example edge",
			build: func() (*core.EdgeStore, []int) {
				s := core.NewEdgeStore(1)
				s.Append(0, 1)
				return s, []int{0, core.NoEdge}
			},
			vertices: 2,
		},
		{
			name: "example not incident",
			build: func() (*core.EdgeStore, []int) {
				s := core.NewEdgeStore(2)
				s.Append(0, 1)
				s.Append(2, 3)
				return s, []int{1, 0, 1, 1}
			},
			vertices: 4,
		},
		{
			name: "self loop",
			build: func() (*core.EdgeStore, []int) {
				s := core.NewEdgeStore(1)
				s.Append(0, 0)
				return s, []int{0}
			},
			vertices: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, examples := tc.build()
			g, err := core.NewGraph(core.Filled(1.0, tc.vertices), examples, s)
			require.NoError(t, err)
			require.ErrorIs(t, g.Validate(), core.ErrBrokenRotation)
		})
	}
}

// TestNewGraph_Errors checks shape validation at freeze time.
func TestNewGraph_Errors(t *testing.T) {
	s := core.NewEdgeStore(1)
	s.Append(0, 1)

	_, err := core.NewGraph([]float64{1, 1}, []int{0}, s)
	require.ErrorIs(t, err, core.ErrMaskLength)

	_, err = core.NewGraph([]float64{1, 1}, []int{0, 3}, s)
	require.ErrorIs(t, err, core.ErrEdgeOutOfRange)

	g, err := core.NewGraph([]float64{1, 1}, []int{0, 0}, s)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
}

// TestNewGraphCopy_DetachesArguments checks that later writes to the caller's
// store and slices do not reach the frozen graph.
func TestNewGraphCopy_DetachesArguments(t *testing.T) {
	s := core.NewEdgeStore(2)
	s.Append(0, 1)
	costs := []float64{1, 1}
	examples := []int{0, 0}

	g, err := core.NewGraphCopy(costs, examples, s)
	require.NoError(t, err)

	costs[0] = 9
	examples[1] = core.NoEdge
	f := s.Append(0, 1)
	s.InsertAfter(0, 0, f)
	s.InsertAfter(0, 1, f)

	require.Equal(t, 1, g.EdgesCount())
	require.Equal(t, []int{0}, g.Rotation(0))
	require.Equal(t, 0, g.IncidentEdgeExample(1))
	require.Equal(t, 1.0, g.VertexCost(0))
	require.NoError(t, g.Validate())
	require.Equal(t, 2, s.Size())
}
