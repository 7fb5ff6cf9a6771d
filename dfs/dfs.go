package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/planarsep/core"
)

const methodPostOrder = "PostOrder"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	mask    []bool // nil means every edge
	used    []bool
	parents []int
	stack   *arraystack.Stack
	visit   EdgeVisitor
}

// PostOrder runs an iterative depth-first search from start over the edges
// e with edgeMask[e] (all edges when edgeMask is nil) and returns, per vertex,
// the edge through which it was first reached. The start vertex and
// unreached vertices get core.NoEdge.
//
// A vertex expanded from the stack claims all of its not yet reached
// neighbours at once, in rotation order, and stays on the stack until a scan
// finds nothing new. visit (if non-nil) is then called for it, so every
// vertex is visited after its whole subtree.
func PostOrder(g *core.Graph, start int, edgeMask []bool, visit EdgeVisitor) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Size() {
		return nil, fmt.Errorf("%s: vertex %d of %d: %w", methodPostOrder, start, g.Size(), ErrStartVertexNotFound)
	}
	if edgeMask != nil && len(edgeMask) != g.EdgesCount() {
		return nil, fmt.Errorf("%s: mask has %d entries, graph has %d edges: %w",
			methodPostOrder, len(edgeMask), g.EdgesCount(), core.ErrMaskLength)
	}

	w := &dfsWalker{
		graph:   g,
		mask:    edgeMask,
		used:    make([]bool, g.Size()),
		parents: core.Filled(core.NoEdge, g.Size()),
		stack:   arraystack.New(),
		visit:   visit,
	}
	w.traverse(start)
	return w.parents, nil
}

func (w *dfsWalker) traverse(start int) {
	w.used[start] = true
	w.stack.Push(start)
	for !w.stack.Empty() {
		top, _ := w.stack.Peek()
		v := top.(int)
		if w.claimNeighbours(v) {
			continue
		}
		w.stack.Pop()
		if pe := w.parents[v]; pe != core.NoEdge && w.visit != nil {
			w.visit(w.graph, v, pe)
		}
	}
}

// claimNeighbours pushes every unreached neighbour of v and reports whether
// there was any.
func (w *dfsWalker) claimNeighbours(v int) bool {
	added := false
	for e := range w.graph.IncidentEdges(v) {
		if w.mask != nil && !w.mask[e] {
			continue
		}
		u := w.graph.OppositeVertex(e, v)
		if w.used[u] {
			continue
		}
		w.used[u] = true
		w.parents[u] = e
		w.stack.Push(u)
		added = true
	}
	return added
}
