// Package builder generates planar graphs as rotation systems: random trees
// and random planar graphs for experiments, and small embedded fixtures for
// tests and examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:      a closure producing a *core.Graph from the resolved config.
//     – Build:            resolves BuilderOptions and runs one Constructor.
//   - Stochastic constructors (require WithSeed or WithRand):
//     – RandomTree(n):        random recursive tree, spliced edge by edge.
//     – RandomGraph(n, d):    tree → triangulation → random edge subset →
//     RemoveDoubleEdges → NormalizeVertexCosts.
//   - Embedded fixtures: Path, Star, Cycle, Wheel, Grid.
//   - Configuration primitives:
//     – WithSeed / WithRand:  explicit random source (no global state).
//     – WithRandomCosts / WithCostFn: random vertex costs, renormalized to sum 1.
//     – WithTriangulator:     replace the default triangulate.Triangulator.
//     – WithLogger:           debug records of each generation stage
//     (github.com/charmbracelet/log); silent by default.
//   - Graph transformations: RemoveDoubleEdges, NormalizeVertexCosts.
//
// Guarantees:
//
//   - Every produced graph satisfies core.Graph.Validate.
//   - Reproducibility: equal options and seed ⇒ identical graphs, edge indices included.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors return errors wrapping ErrTooFewVertices, ErrInvalidDensity,
//     ErrNeedRandSource or ErrConstructFailed.
//
// See individual function documentation for detailed contracts.
package builder
