// Package dfs implements iterative depth-first traversals over the rotation
// system of a core.Graph.
//
// Key features:
//   - PostOrder(g, start, edgeMask, visit): explicit-stack DFS restricted to
//     an edge mask. Each vertex records the edge through which it was first
//     reached; visit runs once per non-root vertex after all of its
//     descendants.
//   - SubtreeCosts: per-vertex sums of vertex costs over DFS subtrees.
//   - FundamentalCycle: the cycle a non-tree edge closes with the DFS tree.
//
// The traversal never recurses, so its stack usage does not grow with the
// graph.
//
// Complexity:
//
//   - Time:   O(V + E); every vertex's rotation is scanned at most twice.
//   - Memory: O(V) for the stack, the used flags and the parent edges.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - core.ErrMaskLength        if the edge mask length differs from the edge count.
//   - ErrTreeEdge / ErrNotReached from FundamentalCycle.
package dfs
