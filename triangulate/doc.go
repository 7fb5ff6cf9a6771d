// Package triangulate completes a connected plane graph, given as a rotation
// system, to a maximal planar graph on the same vertex set.
//
// Every face of the input is traced once and cut down to triangles by
// repeatedly removing an "ear" corner a→b→c and closing it with a chord (a, c).
// Each chord is spliced into the rotations of a and c inside the face being
// cut, so the embedding stays planar after every step and the original edges
// keep their indices.
//
// Chords that would duplicate an existing adjacency are avoided while another
// ear is available. A face whose only remaining ears repeat an adjacency is
// finished with a parallel chord; callers that need a simple graph can remove
// those afterwards (see builder.RemoveDoubleEdges). Stats reports how many
// were needed. Plane inputs never need one; rotation systems of higher genus,
// such as K4 drawn on a torus, do. If a face runs out of corners altogether,
// Triangulate fails with ErrNoEar rather than return a partial result.
//
// Complexity: O(V + E + Σ k²) in the worst case over faces of length k,
// O(V + E) when every tried corner is an ear.
package triangulate
