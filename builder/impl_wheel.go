// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a ring of n-1 ≥ 3 vertices plus a hub.
//   - Hub is CenterVertex (0); rim vertices 1..n-1 counter-clockwise.
//   - Edges: spokes 0..n-2 (hub to rim 1..n-1) first, then the rim.
//   - Every rim vertex lists predecessor, successor, hub, which gives n-1
//     triangles plus the outer face.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import "github.com/katalvlaran/planarsep/core"

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return nil, err
		}
		rim := n - 1
		adj := ringAdjacency(rim, 1)
		for i := 1; i < n; i++ {
			adj[CenterVertex] = append(adj[CenterVertex], i)
			succ, pred := adj[i][0], adj[i][1]
			adj[i] = []int{pred, succ, CenterVertex}
		}
		return fromAdjacency(MethodWheel, adj, cfg)
	}
}
