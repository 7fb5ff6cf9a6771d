// Package dfs: fundamental cycles of a spanning tree given by parent edges.
//
// Complexity:
//
//   - Time:   O(V) per cycle (two walks to the root)
//   - Memory: O(V) for the ancestor marks
package dfs

import (
	"fmt"

	"github.com/katalvlaran/planarsep/core"
)

const methodFundamentalCycle = "FundamentalCycle"

// FundamentalCycle returns the edges of the cycle that the non-tree edge
// closes with the tree described by parents (as returned by PostOrder).
//
// The cycle is listed in walking order: edge itself from Vertex1 to Vertex2,
// the tree path from Vertex2 up to the lowest common ancestor, then the tree
// path down to Vertex1.
func FundamentalCycle(g *core.Graph, parents []int, edge int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(parents) != g.Size() {
		return nil, fmt.Errorf("%s: parents has %d entries, graph has %d vertices: %w",
			methodFundamentalCycle, len(parents), g.Size(), core.ErrMaskLength)
	}
	if edge < 0 || edge >= g.EdgesCount() {
		return nil, fmt.Errorf("%s: edge %d: %w", methodFundamentalCycle, edge, core.ErrEdgeOutOfRange)
	}
	u, w := g.Vertex1(edge), g.Vertex2(edge)
	if parents[u] == edge || parents[w] == edge {
		return nil, fmt.Errorf("%s: edge %d: %w", methodFundamentalCycle, edge, ErrTreeEdge)
	}

	// Mark u and all of its ancestors.
	onPath := make(map[int]bool)
	up := rootPath(g, parents, u)
	for _, v := range up.vertices {
		onPath[v] = true
	}

	// Climb from w until the first marked vertex.
	cycle := []int{edge}
	lca := -1
	for v, steps := w, 0; steps <= g.Size(); steps++ {
		if onPath[v] {
			lca = v
			break
		}
		pe := parents[v]
		if pe == core.NoEdge {
			break
		}
		cycle = append(cycle, pe)
		v = g.OppositeVertex(pe, v)
	}
	if lca < 0 {
		return nil, fmt.Errorf("%s: edge %d (%d, %d): %w", methodFundamentalCycle, edge, u, w, ErrNotReached)
	}

	// Descend from the ancestor to u.
	i := 0
	for up.vertices[i] != lca {
		i++
	}
	for j := i - 1; j >= 0; j-- {
		cycle = append(cycle, up.edges[j])
	}
	return cycle, nil
}

// treePath is a walk from a vertex to its root: vertices[0] is the start and
// edges[i] joins vertices[i] and vertices[i+1].
type treePath struct {
	vertices []int
	edges    []int
}

// rootPath follows parent edges from v. The walk is capped at the vertex
// count so that malformed parent arrays cannot loop.
func rootPath(g *core.Graph, parents []int, v int) treePath {
	p := treePath{vertices: []int{v}}
	for steps := 0; steps < g.Size() && parents[v] != core.NoEdge; steps++ {
		pe := parents[v]
		v = g.OppositeVertex(pe, v)
		p.edges = append(p.edges, pe)
		p.vertices = append(p.vertices, v)
	}
	return p
}
