package core

import "fmt"

// Validate checks the rotation invariant: for every vertex v, following
// NextEdge from v's example edge visits each edge incident to v exactly once
// and returns to the start, PreviousEdge inverts NextEdge along the way, and
// isolated vertices (and only those) have no example edge.
//
// It also rejects self-loops, whose two endpoints cannot be told apart.
//
// Errors:
//   - ErrBrokenRotation wrapping the first violation found.
//
// Complexity: O(V + E) time, O(V + E) space.
func (g *Graph) Validate() error {
	degree := make([]int, g.Size())
	for e := 0; e < g.EdgesCount(); e++ {
		v1, v2 := g.edges.Vertex1(e), g.edges.Vertex2(e)
		if v1 < 0 || v1 >= g.Size() || v2 < 0 || v2 >= g.Size() {
			return fmt.Errorf("Validate: edge %d endpoints {%d,%d}: %w", e, v1, v2, ErrBrokenRotation)
		}
		if v1 == v2 {
			return fmt.Errorf("Validate: edge %d is a self-loop at %d: %w", e, v1, ErrBrokenRotation)
		}
		degree[v1]++
		degree[v2]++
	}

	seenAt := Filled(NoEdge, g.EdgesCount()) // edge → last vertex whose walk met it
	for v := 0; v < g.Size(); v++ {
		first := g.incidentExamples[v]
		if first == NoEdge {
			if degree[v] != 0 {
				return fmt.Errorf("Validate: vertex %d has degree %d but no example edge: %w", v, degree[v], ErrBrokenRotation)
			}
			continue
		}
		if g.edges.Vertex1(first) != v && g.edges.Vertex2(first) != v {
			return fmt.Errorf("Validate: example edge %d is not incident to vertex %d: %w", first, v, ErrBrokenRotation)
		}

		e, steps := first, 0
		for {
			if seenAt[e] == v {
				return fmt.Errorf("Validate: vertex %d revisits edge %d before closing: %w", v, e, ErrBrokenRotation)
			}
			seenAt[e] = v
			steps++

			next := g.edges.NextEdge(e, v)
			if g.edges.Vertex1(next) != v && g.edges.Vertex2(next) != v {
				return fmt.Errorf("Validate: edge %d follows %d at vertex %d but is not incident: %w", next, e, v, ErrBrokenRotation)
			}
			if g.edges.PreviousEdge(next, v) != e {
				return fmt.Errorf("Validate: previous of %d at vertex %d is not %d: %w", next, v, e, ErrBrokenRotation)
			}
			if next == first {
				break
			}
			e = next
		}
		if steps != degree[v] {
			return fmt.Errorf("Validate: vertex %d rotation has %d edges, degree is %d: %w", v, steps, degree[v], ErrBrokenRotation)
		}
	}
	return nil
}
