// Package bfs provides breadth-first traversal over the rotation system of a
// core.Graph.
//
// What
//
//   - Traverse: the parametrized skeleton. Given a start vertex and a caller
//     owned "used" array, it discovers every reachable unused vertex and calls
//     an EdgeVisitor exactly once per tree edge, as visit(g, from, edge).
//   - ColorConnectedComponents: component ids 0, 1, 2, ... assigned in
//     increasing order of each component's smallest vertex.
//   - Tree: BFS order, levels, parent vertices and parent edges from one start,
//     with optional edge mask, depth limit and visit hook.
//
// Determinism
//
//	Neighbours are scanned in rotation order starting at each vertex's
//	incident edge example, so the discovery order is a pure function of the
//	embedding.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and result arrays
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - core.ErrMaskLength      if a used array or edge mask has the wrong length.
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
//   - Wrapped errors returned by an OnVisit hook.
package bfs
