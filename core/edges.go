// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: Flat, index-based edge storage with per-endpoint circular links.
// Policy:
//   - Links are keyed by (edge, side) where side 0 is Vertex1 and side 1 is Vertex2.
//   - SetNextEdge / SetPreviousEdge always write both directions of a link, so any
//     sequence of calls that closes every vertex's list keeps next/prev mutually inverse.
//   - Misuse (vertex that is not an endpoint, index out of range) panics: these are
//     caller contract violations, never data conditions.

package core

import "fmt"

// EdgeStore holds, per edge, its two endpoints and, per (edge, endpoint),
// the next and previous edge in that endpoint's cyclic incidence order.
//
// An EdgeStore is the mutable half of a Graph: builders append and splice
// edges, then hand the store to NewGraph, after which it is read-only.
type EdgeStore struct {
	ends [][2]int // edge → {vertex1, vertex2}
	next [][2]int // edge → {next at vertex1, next at vertex2}
	prev [][2]int // edge → {prev at vertex1, prev at vertex2}
}

// NewEdgeStore returns an empty store with room for capacity edges.
func NewEdgeStore(capacity int) *EdgeStore {
	if capacity < 0 {
		capacity = 0
	}
	return &EdgeStore{
		ends: make([][2]int, 0, capacity),
		next: make([][2]int, 0, capacity),
		prev: make([][2]int, 0, capacity),
	}
}

// Size returns the number of stored edges.
func (s *EdgeStore) Size() int { return len(s.ends) }

// Append adds edge (v1, v2) at the next free index and returns that index.
// The new edge is its own next and previous at both endpoints, which is a
// valid rotation for a vertex of degree one. Splicing it into a longer
// rotation is up to the caller.
//
// Complexity: O(1) amortized.
func (s *EdgeStore) Append(v1, v2 int) int {
	e := len(s.ends)
	s.ends = append(s.ends, [2]int{v1, v2})
	s.next = append(s.next, [2]int{e, e})
	s.prev = append(s.prev, [2]int{e, e})
	return e
}

// Vertex1 returns the first endpoint of edge e.
func (s *EdgeStore) Vertex1(e int) int { return s.ends[e][0] }

// Vertex2 returns the second endpoint of edge e.
func (s *EdgeStore) Vertex2(e int) int { return s.ends[e][1] }

// side returns 0 if v is Vertex1 of e and 1 if it is Vertex2.
func (s *EdgeStore) side(e, v int) int {
	switch v {
	case s.ends[e][0]:
		return 0
	case s.ends[e][1]:
		return 1
	}
	panic(fmt.Sprintf("core: vertex %d is not an endpoint of edge %d %v", v, e, s.ends[e]))
}

// OppositeVertex returns the endpoint of e that is not v.
func (s *EdgeStore) OppositeVertex(e, v int) int {
	return s.ends[e][1-s.side(e, v)]
}

// NextEdge returns the edge following e in v's rotation.
func (s *EdgeStore) NextEdge(e, v int) int {
	return s.next[e][s.side(e, v)]
}

// PreviousEdge returns the edge preceding e in v's rotation.
func (s *EdgeStore) PreviousEdge(e, v int) int {
	return s.prev[e][s.side(e, v)]
}

// SetNextEdge links next right after e in v's rotation: next(e@v) = next and
// prev(next@v) = e. Both edges must be incident to v.
func (s *EdgeStore) SetNextEdge(e, v, next int) {
	s.next[e][s.side(e, v)] = next
	s.prev[next][s.side(next, v)] = e
}

// SetPreviousEdge links prev right before e in v's rotation: prev(e@v) = prev
// and next(prev@v) = e. Both edges must be incident to v.
func (s *EdgeStore) SetPreviousEdge(e, v, prev int) {
	s.prev[e][s.side(e, v)] = prev
	s.next[prev][s.side(prev, v)] = e
}

// InsertAfter splices edge e into v's rotation right after edge at. The old
// successor of at becomes the successor of e.
//
// Complexity: O(1).
func (s *EdgeStore) InsertAfter(at, v, e int) {
	after := s.NextEdge(at, v)
	s.SetNextEdge(at, v, e)
	s.SetNextEdge(e, v, after)
}

// Clone returns a deep copy of the store with room for extra more edges.
func (s *EdgeStore) Clone(extra int) *EdgeStore {
	if extra < 0 {
		extra = 0
	}
	c := NewEdgeStore(len(s.ends) + extra)
	c.ends = append(c.ends, s.ends...)
	c.next = append(c.next, s.next...)
	c.prev = append(c.prev, s.prev...)
	return c
}
