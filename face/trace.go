package face

import "github.com/katalvlaran/planarsep/core"

// Next returns the corner that follows c on its face: leave c.Vertex along
// the edge after c.Edge in its rotation and arrive at the other endpoint.
func Next(g *core.Graph, c Corner) Corner {
	out := g.NextEdge(c.Edge, c.Vertex)
	return Corner{Vertex: g.OppositeVertex(out, c.Vertex), Edge: out}
}

// cornerKey packs a corner into [0, 2E): edge*2 + endpoint side.
func cornerKey(g *core.Graph, c Corner) int {
	if g.Vertex1(c.Edge) == c.Vertex {
		return 2 * c.Edge
	}
	return 2*c.Edge + 1
}

// Trace returns every face of g as its cyclic list of corners. Faces are
// emitted in order of their lowest (edge, endpoint) corner; each face starts
// at that corner. Isolated vertices have no corners and produce no face.
//
// Complexity: O(V + E).
func Trace(g *core.Graph) [][]Corner {
	used := make([]bool, 2*g.EdgesCount())
	var faces [][]Corner
	for e := 0; e < g.EdgesCount(); e++ {
		for _, v := range [2]int{g.Vertex1(e), g.Vertex2(e)} {
			start := Corner{Vertex: v, Edge: e}
			if used[cornerKey(g, start)] {
				continue
			}
			var walk []Corner
			for c := start; !used[cornerKey(g, c)]; c = Next(g, c) {
				used[cornerKey(g, c)] = true
				walk = append(walk, c)
			}
			faces = append(faces, walk)
		}
	}
	return faces
}

// Count returns the number of faces of g, counting each connected component
// separately and one face per isolated vertex. For a planar rotation system
// V - E + Count = 2·(number of components).
//
// Complexity: O(V + E).
func Count(g *core.Graph) int {
	n := len(Trace(g))
	for v := 0; v < g.Size(); v++ {
		if g.IncidentEdgeExample(v) == core.NoEdge {
			n++
		}
	}
	return n
}
