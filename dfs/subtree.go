package dfs

import "github.com/katalvlaran/planarsep/core"

// SubtreeCosts runs PostOrder and sums vertex costs bottom-up: costs[v] is
// the total cost of v's DFS subtree, 0 for vertices the search did not reach.
// The parent edges of the traversal are returned alongside.
//
// Complexity: O(V + E).
func SubtreeCosts(g *core.Graph, start int, edgeMask []bool) ([]float64, []int, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	costs := g.VertexCosts()
	parents, err := PostOrder(g, start, edgeMask, func(g *core.Graph, v, pe int) {
		costs[g.OppositeVertex(pe, v)] += costs[v]
	})
	if err != nil {
		return nil, nil, err
	}
	for v, pe := range parents {
		if pe == core.NoEdge && v != start {
			costs[v] = 0
		}
	}
	return costs, parents, nil
}
