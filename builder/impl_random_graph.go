// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_random_graph.go - RandomGraph(n, density) and the two graph
// transformations it ends with.
//
// Pipeline:
//  1. RandomTree(n) with the same cfg (same rng stream, same cost policy).
//  2. cfg.triangulator completes the tree to a maximal planar graph.
//  3. Exactly round(density·E) edges are kept: a mask with that many leading
//     true entries is shuffled with cfg.rng and applied via Subgraph.
//  4. RemoveDoubleEdges drops parallel edges left by the triangulation.
//  5. NormalizeVertexCosts rescales costs to sum 1.
//
// Complexity:
//   - Time: O(n) plus the triangulator's cost.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planarsep/core"
)

// RandomGraph returns a Constructor for a random planar graph on n ≥ 2
// vertices with density ∈ [0,1] of the triangulated edge set kept.
func RandomGraph(n int, density float64) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodRandomGraph, n, MinTreeNodes); err != nil {
			return nil, err
		}
		if err := validateDensity(MethodRandomGraph, density); err != nil {
			return nil, err
		}
		if err := requireRand(MethodRandomGraph, cfg); err != nil {
			return nil, err
		}

		tree, err := RandomTree(n)(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomGraph, err)
		}

		meta, full, err := cfg.triangulator.Triangulate(tree)
		if err != nil {
			return nil, fmt.Errorf("%s: triangulate: %w: %w", MethodRandomGraph, ErrConstructFailed, err)
		}
		if full == nil || full.Size() != n {
			return nil, fmt.Errorf("%s: triangulator returned a graph of the wrong size: %w", MethodRandomGraph, ErrConstructFailed)
		}
		cfg.logger.Debug("triangulated", "edges", full.EdgesCount(), "metadata", meta)

		keep := int(math.Round(density * float64(full.EdgesCount())))
		mask := make([]bool, full.EdgesCount())
		for i := 0; i < keep; i++ {
			mask[i] = true
		}
		cfg.rng.Shuffle(len(mask), func(i, j int) { mask[i], mask[j] = mask[j], mask[i] })

		_, sparse, err := full.Subgraph(core.Filled(true, n), mask)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomGraph, err)
		}

		simple, err := RemoveDoubleEdges(sparse)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomGraph, err)
		}
		cfg.logger.Debug("selected edges",
			"kept", keep,
			"duplicates_removed", sparse.EdgesCount()-simple.EdgesCount())

		g, err := NormalizeVertexCosts(simple)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomGraph, err)
		}
		return g, nil
	}
}

// RemoveDoubleEdges returns a copy of g keeping one edge per adjacent vertex
// pair. Each vertex's rotation is scanned from its example edge; an edge to a
// neighbour already joined by a kept edge is dropped, so the first kept edge
// of every pair survives in rotation order. Rotations of the survivors keep
// their cyclic order.
//
// Complexity: O(V + E).
func RemoveDoubleEdges(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodRemoveDoubleEdges, ErrGraphNil)
	}
	adjacent := make([]bool, g.Size())
	keep := core.Filled(true, g.EdgesCount())

	for v := 0; v < g.Size(); v++ {
		for e := range g.IncidentEdges(v) {
			w := g.OppositeVertex(e, v)
			switch {
			case adjacent[w]:
				keep[e] = false
			case keep[e]:
				adjacent[w] = true
			}
		}
		for e := range g.IncidentEdges(v) {
			adjacent[g.OppositeVertex(e, v)] = false
		}
	}

	_, out, err := g.Subgraph(core.Filled(true, g.Size()), keep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRemoveDoubleEdges, err)
	}
	return out, nil
}

// NormalizeVertexCosts returns g with costs divided by their sum. The edge
// storage is shared with g.
//
// Errors: core.ErrZeroCostSum if the costs sum to zero.
func NormalizeVertexCosts(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodNormalizeVertexCosts, ErrGraphNil)
	}
	out, err := g.Normalized()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNormalizeVertexCosts, err)
	}
	return out, nil
}
