// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex CenterVertex (0); leaves 1..n-1.
//   - Spokes are emitted in increasing leaf order: edge i-1 joins the hub and
//     leaf i, and the hub's rotation is 0, 1, ..., n-2.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import "github.com/katalvlaran/planarsep/core"

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return nil, err
		}
		adj := make([][]int, n)
		for i := 1; i < n; i++ {
			adj[CenterVertex] = append(adj[CenterVertex], i)
			adj[i] = []int{CenterVertex}
		}
		return fromAdjacency(MethodStar, adj, cfg)
	}
}
