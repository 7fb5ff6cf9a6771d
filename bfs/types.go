package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarsep/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex outside the BFS tree.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// EdgeVisitor is called once per discovered tree edge: from is the vertex
// being expanded and edge leads to the newly discovered vertex
// g.OppositeVertex(edge, from).
type EdgeVisitor func(g *core.Graph, from, edge int)

// Option configures Tree via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Tree.
type Options struct {
	// EdgeMask, if non-nil, restricts the traversal to edges e with EdgeMask[e].
	EdgeMask []bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called when a vertex is discovered, with its depth.
	// Returning an error aborts the traversal.
	OnVisit func(vertex, depth int) error

	err error
}

// DefaultOptions returns Options with no mask, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) error { return nil },
	}
}

// WithEdgeMask restricts Tree to the edges marked true.
func WithEdgeMask(mask []bool) Option {
	return func(o *Options) {
		o.EdgeMask = mask
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a discovery hook; returning an error from it stops the BFS.
func WithOnVisit(fn func(vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of Tree:
//   - Order: vertices in discovery order, start first.
//   - Depth: distance in edges from the start, -1 if not reached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached vertices.
//   - ParentEdge: edge to the predecessor, core.NoEdge where Parent is -1.
type Result struct {
	Order      []int
	Depth      []int
	Parent     []int
	ParentEdge []int
}

// PathTo reconstructs the vertex path from the start vertex to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}

// Levels groups the reached vertices by depth, each level in discovery order.
func (r *Result) Levels() [][]int {
	var levels [][]int
	for _, v := range r.Order {
		d := r.Depth[v]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], v)
	}
	return levels
}
