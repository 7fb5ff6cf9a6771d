// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 0..n-1 in order; edge i joins i and i+1.
//   - One face; costs per cfg (uniform unless a CostFn is set).
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarsep/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return nil, err
		}
		adj := make([][]int, n)
		for i := 0; i < n; i++ {
			if i > 0 {
				adj[i] = append(adj[i], i-1)
			}
			if i+1 < n {
				adj[i] = append(adj[i], i+1)
			}
		}
		return fromAdjacency(MethodPath, adj, cfg)
	}
}

// fromAdjacency builds a fixture and applies the configured cost policy.
func fromAdjacency(method string, adj [][]int, cfg builderConfig) (*core.Graph, error) {
	g, err := core.FromOrderedAdjacencies(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return withDrawnCosts(method, g, cfg)
}
