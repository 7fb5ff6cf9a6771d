// SPDX-License-Identifier: MIT
//
// File: triangulate.go
// Role: Ear-cutting face triangulation on a rotation system.
// Determinism:
//   - Faces are processed in face.Trace order and each face is cut starting from
//     its first corner; the output is a pure function of the input graph.
// Indices:
//   - Edges 0..E-1 of the output are the input edges; chords follow in creation order.

package triangulate

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/planarsep/bfs"
	"github.com/katalvlaran/planarsep/core"
	"github.com/katalvlaran/planarsep/face"
)

const (
	methodTriangulate = "Triangulate"
	minVertices       = 3
)

// Triangulate adds chords to every face of g until all faces are triangles
// and returns the resulting graph. Vertex costs and incident edge examples
// are carried over unchanged; g itself is not modified.
//
// A graph with fewer than three vertices has no triangulation and is
// returned as a clone with empty Stats. For a connected simple input on
// n ≥ 3 vertices the output has 3n-6 edges.
//
// Errors: ErrGraphNil, ErrDisconnected, ErrNoEar.
func Triangulate(g *core.Graph) (*Stats, *core.Graph, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if g.Size() < minVertices {
		return &Stats{}, g.Clone(), nil
	}
	colors := bfs.ColorConnectedComponents(g)
	for v, c := range colors {
		if c != 0 {
			return nil, nil, fmt.Errorf("%s: vertex %d is in component %d: %w", methodTriangulate, v, c, ErrDisconnected)
		}
	}

	faces := face.Trace(g)
	n := g.Size()
	c := &cutter{
		edges:    g.CopyEdges(3*n - 6 - g.EdgesCount()),
		adjacent: hashset.New(),
		stats:    &Stats{Faces: len(faces)},
	}
	for e := 0; e < g.EdgesCount(); e++ {
		c.adjacent.Add(pairKey(g.Vertex1(e), g.Vertex2(e)))
	}
	for i, f := range faces {
		if err := c.cutFace(f); err != nil {
			return nil, nil, fmt.Errorf("%s: face %d of length %d: %w", methodTriangulate, i, len(f), err)
		}
	}

	out, err := core.NewGraph(g.VertexCosts(), g.IncidentEdgeExamples(), c.edges)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodTriangulate, err)
	}
	return c.stats, out, nil
}

// pairKey is the unordered vertex pair {u, v} as a comparable set element.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// cutter holds the edge store being extended and the set of adjacent pairs
// shared by all faces.
type cutter struct {
	edges    *core.EdgeStore
	adjacent *hashset.Set
	stats    *Stats
}

// ring is one face being cut: corners linked in a circular list so that an
// ear can be removed in O(1).
type ring struct {
	vertex   []int
	incoming []int
	next     []int
	prev     []int
	size     int
}

func newRing(corners []face.Corner) *ring {
	k := len(corners)
	r := &ring{
		vertex:   make([]int, k),
		incoming: make([]int, k),
		next:     make([]int, k),
		prev:     make([]int, k),
		size:     k,
	}
	for i, c := range corners {
		r.vertex[i] = c.Vertex
		r.incoming[i] = c.Edge
		r.next[i] = (i + 1) % k
		r.prev[i] = (i + k - 1) % k
	}
	return r
}

// cutFace reduces one face to triangles. It fails with ErrNoEar when every
// remaining corner has the same vertex on both sides.
func (c *cutter) cutFace(corners []face.Corner) error {
	r := newRing(corners)
	i, misses := 0, 0
	for r.size > 3 {
		if c.isEar(r, i) {
			i = c.cut(r, i, false)
			misses = 0
			continue
		}
		misses++
		if misses < r.size {
			i = r.next[i]
			continue
		}

		// No clean ear left on this face: accept a parallel chord.
		j, ok := r.anyCorner(i)
		if !ok {
			return ErrNoEar
		}
		i = c.cut(r, j, true)
		misses = 0
	}
	return nil
}

// isEar reports whether corner b can be cut without creating a loop or a
// second edge between already adjacent vertices.
func (c *cutter) isEar(r *ring, b int) bool {
	a, d := r.vertex[r.prev[b]], r.vertex[r.next[b]]
	return a != d && !c.adjacent.Contains(pairKey(a, d))
}

// anyCorner finds, starting from i, a corner whose neighbours are distinct vertices.
func (r *ring) anyCorner(i int) (int, bool) {
	for step := 0; step < r.size; step++ {
		if r.vertex[r.prev[i]] != r.vertex[r.next[i]] {
			return i, true
		}
		i = r.next[i]
	}
	return 0, false
}

// cut closes the ear at corner b with a chord between its neighbours and
// returns the corner to examine next.
//
// With corners a, b, cc on the face (arriving through e0, e1, e2), the chord
// f is spliced after e0 at a and after e2 at cc. The face then continues
// a → cc through f and the triangle a, b, cc is closed off.
func (c *cutter) cut(r *ring, b int, parallel bool) int {
	a, cc := r.prev[b], r.next[b]
	va, vc := r.vertex[a], r.vertex[cc]

	f := c.edges.Append(va, vc)
	c.edges.InsertAfter(r.incoming[a], va, f)
	c.edges.InsertAfter(r.incoming[cc], vc, f)
	c.adjacent.Add(pairKey(va, vc))

	r.incoming[cc] = f
	r.next[a], r.prev[cc] = cc, a
	r.size--

	c.stats.Chords++
	if parallel {
		c.stats.ParallelChords++
	}
	return a
}

// Triangulator adapts Triangulate to the builder's pluggable triangulator
// contract: the metadata value is the run's *Stats.
type Triangulator struct{}

// Triangulate implements the builder contract by delegating to the package function.
func (Triangulator) Triangulate(tree *core.Graph) (any, *core.Graph, error) {
	stats, g, err := Triangulate(tree)
	if err != nil {
		return nil, nil, err
	}
	return stats, g, nil
}
