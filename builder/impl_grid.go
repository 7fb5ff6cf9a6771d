// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood; vertex r*cols+c sits at (c, r).
//   • Every rotation is counter-clockwise: right, up (r+1), left, down (r-1),
//     skipping missing neighbours. The embedding has (rows-1)(cols-1) square
//     faces plus the outer face.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarsep/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if rows < MinGridDim || cols < MinGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		id := func(r, c int) int { return r*cols + c }
		adj := make([][]int, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					adj[u] = append(adj[u], id(r, c+1))
				}
				if r+1 < rows {
					adj[u] = append(adj[u], id(r+1, c))
				}
				if c > 0 {
					adj[u] = append(adj[u], id(r, c-1))
				}
				if r > 0 {
					adj[u] = append(adj[u], id(r-1, c))
				}
			}
		}
		return fromAdjacency(MethodGrid, adj, cfg)
	}
}
