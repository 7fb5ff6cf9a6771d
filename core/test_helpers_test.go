// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertion helpers for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarsep/core"
)

// starAdjacency is a star with center 0 and four leaves.
var starAdjacency = [][]int{{1, 2, 3, 4}, {0}, {0}, {0}, {0}}

// octahedronAdjacency embeds the octahedron: 0 on top, 5 at the bottom and
// the equator 1..4 counter-clockwise seen from above. Every rotation is
// counter-clockwise seen from outside the solid.
var octahedronAdjacency = [][]int{
	{1, 2, 3, 4},
	{2, 0, 4, 5},
	{3, 0, 1, 5},
	{4, 0, 2, 5},
	{1, 0, 3, 5},
	{4, 3, 2, 1},
}

// mustGraph builds a graph from ordered adjacencies or fails the test.
func mustGraph(t *testing.T, adjacency [][]int) *core.Graph {
	t.Helper()
	g, err := core.FromOrderedAdjacencies(adjacency)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

// neighbourRotation returns v's neighbours in rotation order.
func neighbourRotation(g *core.Graph, v int) []int {
	var out []int
	for e := range g.IncidentEdges(v) {
		out = append(out, g.OppositeVertex(e, v))
	}
	return out
}

// equalCyclic reports whether a and b are the same cyclic sequence.
func equalCyclic(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for shift := 0; shift < len(a); shift++ {
		match := true
		for i := range a {
			if a[i] != b[(i+shift)%len(b)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// alternatingMask returns a mask of length n with every k-th entry cleared.
func alternatingMask(n, k int) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = i%k != 0
	}
	return mask
}
