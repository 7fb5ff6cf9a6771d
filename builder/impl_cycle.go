// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices 0..n-1 around the ring; two faces (inside and outside).
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import "github.com/katalvlaran/planarsep/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return nil, err
		}
		return fromAdjacency(MethodCycle, ringAdjacency(n, 0), cfg)
	}
}

// ringAdjacency lists the ring offset, offset+1, ..., offset+n-1: each vertex
// names its successor, then its predecessor. Rows before offset stay empty.
func ringAdjacency(n, offset int) [][]int {
	adj := make([][]int, offset+n)
	for i := 0; i < n; i++ {
		adj[offset+i] = []int{offset + (i+1)%n, offset + (i+n-1)%n}
	}
	return adj
}
