package dfs

import (
	"errors"

	"github.com/katalvlaran/planarsep/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTreeEdge is returned by FundamentalCycle for an edge of the tree itself.
	ErrTreeEdge = errors.New("dfs: edge belongs to the tree")

	// ErrNotReached is returned by FundamentalCycle when the edge endpoints
	// are not in the same tree.
	ErrNotReached = errors.New("dfs: edge endpoints not in one tree")
)

// EdgeVisitor is called in post-order for each reached vertex other than the
// start, with the edge through which the vertex was first reached.
type EdgeVisitor func(g *core.Graph, vertex, parentEdge int)
