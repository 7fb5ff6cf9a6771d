package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/planarsep/core"
)

const (
	methodTraverse = "Traverse"
	methodTree     = "Tree"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	vertex int
	depth  int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	used     []bool
	queue    *arrayqueue.Queue
	edgeMask []bool
	maxDepth int
	// discover is called for each tree edge with the depth of the new vertex.
	discover func(from, edge, depth int) error
}

func newWalker(g *core.Graph, used []bool, discover func(from, edge, depth int) error) *walker {
	return &walker{
		graph:    g,
		used:     used,
		queue:    arrayqueue.New(),
		discover: discover,
	}
}

// run marks start used and drains the queue.
func (w *walker) run(start int) error {
	w.used[start] = true
	w.queue.Enqueue(queueItem{vertex: start})
	for !w.queue.Empty() {
		x, _ := w.queue.Dequeue()
		item := x.(queueItem)
		if w.maxDepth > 0 && item.depth >= w.maxDepth {
			continue
		}
		for e := range w.graph.IncidentEdges(item.vertex) {
			if w.edgeMask != nil && !w.edgeMask[e] {
				continue
			}
			next := w.graph.OppositeVertex(e, item.vertex)
			if w.used[next] {
				continue
			}
			w.used[next] = true
			if err := w.discover(item.vertex, e, item.depth+1); err != nil {
				return err
			}
			w.queue.Enqueue(queueItem{vertex: next, depth: item.depth + 1})
		}
	}
	return nil
}

// checkStart validates the graph pointer and the start index.
func checkStart(method string, g *core.Graph, start int) error {
	if g == nil {
		return ErrGraphNil
	}
	if start < 0 || start >= g.Size() {
		return fmt.Errorf("%s: vertex %d of %d: %w", method, start, g.Size(), ErrStartVertexNotFound)
	}
	return nil
}

// Traverse runs a breadth-first search from start over the whole graph.
// used is read and updated in place: vertices already marked are treated
// as visited and never entered, and every vertex reached is marked. visit is
// called exactly once per tree edge, in discovery order; a nil visit only
// marks the reached vertices.
//
// Complexity: O(V + E).
func Traverse(g *core.Graph, start int, used []bool, visit EdgeVisitor) error {
	if err := checkStart(methodTraverse, g, start); err != nil {
		return err
	}
	if len(used) != g.Size() {
		return fmt.Errorf("%s: used has %d entries, graph has %d vertices: %w",
			methodTraverse, len(used), g.Size(), core.ErrMaskLength)
	}
	w := newWalker(g, used, func(from, edge, _ int) error {
		if visit != nil {
			visit(g, from, edge)
		}
		return nil
	})
	return w.run(start)
}

// ColorConnectedComponents assigns each connected component a distinct id.
// Ids start at 0 and increase with the smallest vertex of each component.
// A nil graph yields nil.
//
// Complexity: O(V + E).
func ColorConnectedComponents(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	colors := core.Filled(-1, g.Size())
	used := make([]bool, g.Size())
	w := newWalker(g, used, func(from, edge, _ int) error {
		colors[g.OppositeVertex(edge, from)] = colors[from]
		return nil
	})

	color := -1
	for v := range colors {
		if used[v] {
			continue
		}
		color++
		colors[v] = color
		_ = w.run(v) // discover never fails
	}
	return colors
}

// Tree runs BFS from start and records order, depths and parent links.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// core.ErrMaskLength, or a wrapped OnVisit error.
//
// Complexity: O(V + E).
func Tree(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if err := checkStart(methodTree, g, start); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.EdgeMask != nil && len(o.EdgeMask) != g.EdgesCount() {
		return nil, fmt.Errorf("%s: mask has %d entries, graph has %d edges: %w",
			methodTree, len(o.EdgeMask), g.EdgesCount(), core.ErrMaskLength)
	}

	n := g.Size()
	res := &Result{
		Order:      make([]int, 0, n),
		Depth:      core.Filled(-1, n),
		Parent:     core.Filled(-1, n),
		ParentEdge: core.Filled(core.NoEdge, n),
	}
	res.Order = append(res.Order, start)
	res.Depth[start] = 0
	if err := o.OnVisit(start, 0); err != nil {
		return nil, fmt.Errorf("bfs: OnVisit error at %d: %w", start, err)
	}

	w := newWalker(g, make([]bool, n), func(from, edge, depth int) error {
		v := g.OppositeVertex(edge, from)
		res.Order = append(res.Order, v)
		res.Depth[v] = depth
		res.Parent[v] = from
		res.ParentEdge[v] = edge
		if err := o.OnVisit(v, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		return nil
	})
	w.edgeMask = o.EdgeMask
	w.maxDepth = o.MaxDepth
	if err := w.run(start); err != nil {
		return nil, err
	}
	return res, nil
}
