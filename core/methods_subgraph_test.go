package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/planarsep/core"
)

// SubgraphSuite exercises Subgraph against the octahedron fixture.
type SubgraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *SubgraphSuite) SetupTest() {
	g, err := core.FromOrderedAdjacencies(octahedronAdjacency)
	s.Require().NoError(err)
	s.g = g
}

// subgraphCases returns a spread of vertex/edge masks over the fixture.
func (s *SubgraphSuite) subgraphCases() map[string][2][]bool {
	n, m := s.g.Size(), s.g.EdgesCount()
	noTop := core.Filled(true, n)
	noTop[0] = false
	noEquator := core.Filled(true, n)
	noEquator[1], noEquator[3] = false, false
	return map[string][2][]bool{
		"all":             {core.Filled(true, n), core.Filled(true, m)},
		"drop top vertex": {noTop, core.Filled(true, m)},
		"every 3rd edge":  {core.Filled(true, n), alternatingMask(m, 3)},
		"mixed":           {noEquator, alternatingMask(m, 2)},
		"no edges":        {core.Filled(true, n), core.Filled(false, m)},
		"no vertices":     {core.Filled(false, n), core.Filled(true, m)},
	}
}

// TestRotationOrderPreserved checks that each surviving vertex keeps the
// original cyclic order restricted to surviving edges.
func (s *SubgraphSuite) TestRotationOrderPreserved() {
	for name, masks := range s.subgraphCases() {
		mapping, sub, err := s.g.Subgraph(masks[0], masks[1])
		s.Require().NoError(err, name)
		s.Require().NoError(sub.Validate(), name)

		for v := 0; v < s.g.Size(); v++ {
			nv, ok := mapping.Vertex(v)
			if !ok {
				continue
			}
			var want []int
			for e := range s.g.IncidentEdges(v) {
				if ne, kept := mapping.Edge(e); kept {
					want = append(want, ne)
				}
			}
			s.True(equalCyclic(want, sub.Rotation(nv)), "%s: vertex %d: want %v got %v", name, v, want, sub.Rotation(nv))
		}
	}
}

// TestMappingCorrectness checks injectivity of kept entries and NoVertex or
// NoEdge for dropped ones, plus endpoint and cost remapping.
func (s *SubgraphSuite) TestMappingCorrectness() {
	for name, masks := range s.subgraphCases() {
		mapping, sub, err := s.g.Subgraph(masks[0], masks[1])
		s.Require().NoError(err, name)

		seen := make(map[int]bool)
		for v, nv := range mapping.Vertices {
			if !masks[0][v] {
				s.Equal(core.NoVertex, nv, "%s: dropped vertex %d", name, v)
				_, ok := mapping.Vertex(v)
				s.False(ok, "%s: dropped vertex %d reported kept", name, v)
				continue
			}
			s.False(seen[nv], "%s: vertex image %d reused", name, nv)
			seen[nv] = true
			s.Equal(s.g.VertexCost(v), sub.VertexCost(nv))
		}
		s.Len(seen, sub.Size(), name)

		seen = make(map[int]bool)
		for e, ne := range mapping.Edges {
			survives := masks[1][e] && masks[0][s.g.Vertex1(e)] && masks[0][s.g.Vertex2(e)]
			if !survives {
				s.Equal(core.NoEdge, ne, "%s: dropped edge %d", name, e)
				continue
			}
			s.False(seen[ne], "%s: edge image %d reused", name, ne)
			seen[ne] = true
			s.Equal(mapping.Vertices[s.g.Vertex1(e)], sub.Vertex1(ne))
			s.Equal(mapping.Vertices[s.g.Vertex2(e)], sub.Vertex2(ne))
		}
		s.Len(seen, sub.EdgesCount(), name)
	}
}

// TestSourceUntouched checks that Subgraph does not mutate its input.
func (s *SubgraphSuite) TestSourceUntouched() {
	before := make([][]int, s.g.Size())
	for v := range before {
		before[v] = s.g.Rotation(v)
	}
	_, _, err := s.g.Subgraph(core.Filled(true, s.g.Size()), alternatingMask(s.g.EdgesCount(), 2))
	s.Require().NoError(err)
	for v := range before {
		s.Equal(before[v], s.g.Rotation(v))
	}
}

// TestMaskLength rejects masks that do not match the graph.
func (s *SubgraphSuite) TestMaskLength() {
	_, _, err := s.g.Subgraph(core.Filled(true, 2), core.Filled(true, s.g.EdgesCount()))
	s.True(errors.Is(err, core.ErrMaskLength))
	_, _, err = s.g.Subgraph(core.Filled(true, s.g.Size()), core.Filled(true, 3))
	s.True(errors.Is(err, core.ErrMaskLength))
}

func TestSubgraphSuite(t *testing.T) {
	suite.Run(t, new(SubgraphSuite))
}

// TestClone_RoundTrip checks sizes, costs and the endpoint multiset.
func TestClone_RoundTrip(t *testing.T) {
	g := mustGraph(t, octahedronAdjacency)
	c := g.Clone()

	require.NoError(t, c.Validate())
	require.Equal(t, g.Size(), c.Size())
	require.Equal(t, g.EdgesCount(), c.EdgesCount())
	require.Equal(t, g.VertexCosts(), c.VertexCosts())

	endpoints := func(h *core.Graph) [][2]int {
		out := make([][2]int, h.EdgesCount())
		for e := range out {
			out[e] = [2]int{min(h.Vertex1(e), h.Vertex2(e)), max(h.Vertex1(e), h.Vertex2(e))}
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i][0] != out[j][0] {
				return out[i][0] < out[j][0]
			}
			return out[i][1] < out[j][1]
		})
		return out
	}
	require.Equal(t, endpoints(g), endpoints(c))

	for v := 0; v < g.Size(); v++ {
		require.True(t, equalCyclic(g.Rotation(v), c.Rotation(v)), "vertex %d", v)
	}
}

// TestWithVertexCosts_AndNormalized covers cost replacement.
func TestWithVertexCosts_AndNormalized(t *testing.T) {
	g := mustGraph(t, starAdjacency)

	costs := []float64{4, 1, 1, 1, 1}
	h, err := g.WithVertexCosts(costs)
	require.NoError(t, err)
	costs[0] = 100
	require.Equal(t, 4.0, h.VertexCost(0), "costs must be copied")
	require.InDelta(t, 1.0, g.CostSum(), 1e-12, "source costs must be untouched")

	n, err := h.Normalized()
	require.NoError(t, err)
	require.InDelta(t, 1.0, n.CostSum(), 1e-12)
	require.InDelta(t, 0.5, n.VertexCost(0), 1e-12)
	require.Equal(t, g.Rotation(0), n.Rotation(0))

	_, err = g.WithVertexCosts([]float64{1})
	require.ErrorIs(t, err, core.ErrMaskLength)

	z, err := g.WithVertexCosts(make([]float64, 5))
	require.NoError(t, err)
	_, err = z.Normalized()
	require.ErrorIs(t, err, core.ErrZeroCostSum)
}
