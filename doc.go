// Package planarsep is an in-memory engine for embedded planar graphs,
// the substrate for planar separator algorithms.
//
// 🚀 What is planarsep?
//
//	A small, deterministic library that brings together:
//		• Rotation systems: edges with per-endpoint circular next/prev links
//		• Frozen graphs: vertex costs, one incident edge example per vertex
//		• Constructors: subgraph by masks, clone, ordered adjacency lists
//		• Generators: random trees, random planar graphs of given density
//		• Traversals: parametrized BFS, post-order DFS, boundary walks
//		• Faces: face tracing and a default ear-cutting triangulator
//
// ✨ Why planarsep?
//
//   - Reproducible – every random choice comes from an explicit *rand.Rand
//   - Cyclic order is preserved by every transformation
//   - Quiet – logging is off unless you pass a logger
//
// Packages:
//
//	core/        - EdgeStore, Graph, Subgraph, Clone, FromOrderedAdjacencies
//	builder/     - RandomTree, RandomGraph, RemoveDoubleEdges, planar fixtures
//	triangulate/ - default triangulator for connected plane graphs
//	bfs/         - Traverse, ColorConnectedComponents, BFS trees
//	dfs/         - PostOrder, SubtreeCosts, FundamentalCycle
//	face/        - Trace, Count, IncidenceWalker
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
//	a 4-cycle with one chord: two triangular inner faces and one outer face.
//
//	go get github.com/katalvlaran/planarsep
package planarsep
