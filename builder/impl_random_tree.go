// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_random_tree.go - implementation of RandomTree(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); cfg.rng required (else ErrNeedRandSource).
//   - Starts from edge 0 = (0,1). Vertex v = 2..n-1 picks an attachment vertex
//     uniformly in [0, v) and gets edge (attachment, v).
//   - The new edge is spliced into the attachment's rotation right after the
//     attachment's incident edge example; the new vertex has degree 1 and the
//     new edge as its example.
//   - Costs: uniform 1/n, or cfg.costFn draws (made before any attachment
//     draw) normalized to sum 1.
//
// Complexity:
//   - Time: O(n). Space: O(n).
//
// Determinism:
//   - Edge v-1 always joins v to its parent, so edge indices follow vertex order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarsep/core"
)

// RandomTree returns a Constructor that builds a random recursive tree with
// n vertices and n-1 edges.
func RandomTree(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodRandomTree, n, MinTreeNodes); err != nil {
			return nil, err
		}
		if err := requireRand(MethodRandomTree, cfg); err != nil {
			return nil, err
		}
		costs, err := vertexCosts(MethodRandomTree, n, cfg)
		if err != nil {
			return nil, err
		}

		edges := core.NewEdgeStore(n - 1)
		examples := make([]int, n) // vertices 0 and 1 share edge 0
		edges.Append(0, 1)

		for v := 2; v < n; v++ {
			attach := cfg.rng.Intn(v)
			e := edges.Append(attach, v)
			examples[v] = e
			edges.InsertAfter(examples[attach], attach, e)
		}

		g, err := core.NewGraph(costs, examples, edges)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomTree, err)
		}
		cfg.logger.Debug("generated random tree", "vertices", n, "edges", g.EdgesCount())
		return g, nil
	}
}
