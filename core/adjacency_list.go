// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Build a Graph from per-vertex neighbour lists given in rotation order.
// Policy:
//   - One edge per unordered pair, created the first time the pair is met
//     (in either direction), with endpoints in first-met order.
//   - Cheap shape checks (range, loops, repeats, symmetry) are reported as errors;
//     planarity of the implied embedding is the caller's responsibility.

package core

import "fmt"

const methodFromOrderedAdjacencies = "FromOrderedAdjacencies"

// FromOrderedAdjacencies builds a Graph where adjacencies[v] lists v's
// neighbours in rotation order (counter-clockwise or clockwise, consistently
// for all vertices). For instance [[1 2 3 4] [0] [0] [0] [0]] is a star with
// four edges. Vertex costs are uniform 1/n.
//
// Errors:
//   - ErrVertexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
//     ErrAsymmetricAdjacency for malformed lists.
//
// Complexity: O(V + E) expected time (one hash lookup per adjacency entry).
func FromOrderedAdjacencies(adjacencies [][]int) (*Graph, error) {
	n := len(adjacencies)

	total := 0
	listedBy := Filled(NoEdge, n)
	for v, neighbours := range adjacencies {
		for _, w := range neighbours {
			switch {
			case w < 0 || w >= n:
				return nil, fmt.Errorf("%s: vertex %d lists %d: %w", methodFromOrderedAdjacencies, v, w, ErrVertexOutOfRange)
			case w == v:
				return nil, fmt.Errorf("%s: vertex %d lists itself: %w", methodFromOrderedAdjacencies, v, ErrLoopNotAllowed)
			case listedBy[w] == v:
				return nil, fmt.Errorf("%s: vertex %d lists %d twice: %w", methodFromOrderedAdjacencies, v, w, ErrMultiEdgeNotAllowed)
			}
			listedBy[w] = v
		}
		total += len(neighbours)
	}

	edges, incident, err := createEdges(adjacencies, total/2)
	if err != nil {
		return nil, err
	}

	costs := make([]float64, n)
	for v := range costs {
		costs[v] = 1 / float64(n)
	}

	examples := Filled(NoEdge, n)
	for v, vertexEdges := range incident {
		k := len(vertexEdges)
		if k == 0 {
			continue
		}
		examples[v] = vertexEdges[0]
		for i, e := range vertexEdges {
			edges.SetNextEdge(e, v, vertexEdges[(i+1)%k])
		}
	}

	return NewGraph(costs, examples, edges)
}

// createEdges appends one edge per unordered pair and returns, per vertex,
// the edge index of every adjacency entry in list order.
func createEdges(adjacencies [][]int, capacity int) (*EdgeStore, [][]int, error) {
	edges := NewEdgeStore(capacity)
	byPair := make(map[[2]int]int, capacity)
	listed := make([]int, 0, capacity) // edge → number of lists naming it

	incident := make([][]int, len(adjacencies))
	for v, neighbours := range adjacencies {
		incident[v] = make([]int, len(neighbours))
		for i, w := range neighbours {
			key := [2]int{min(v, w), max(v, w)}
			e, ok := byPair[key]
			if !ok {
				e = edges.Append(v, w)
				byPair[key] = e
				listed = append(listed, 0)
			}
			listed[e]++
			incident[v][i] = e
		}
	}

	for e, count := range listed {
		if count != 2 {
			return nil, nil, fmt.Errorf("%s: edge {%d,%d} listed by one endpoint only: %w",
				methodFromOrderedAdjacencies, edges.Vertex1(e), edges.Vertex2(e), ErrAsymmetricAdjacency)
		}
	}
	return edges, incident, nil
}
