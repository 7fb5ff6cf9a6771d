// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(ctor, opts...). Resolves cfg, runs ctor, checks the result.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical graphs, edge indices included.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarsep/core"
)

// Constructor produces a graph from the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng, in a documented order.
//   - Return a graph satisfying the rotation invariant (core.Graph.Validate).
type Constructor func(cfg builderConfig) (*core.Graph, error)

// Build resolves the builder configuration from opts and runs ctor.
// Any constructor error is wrapped with the context "Build: %w".
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidDensity, ...).
//   - ErrConstructFailed for a nil constructor.
func Build(ctor Constructor, opts ...BuilderOption) (*core.Graph, error) {
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuild, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	g, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	return g, nil
}

// =============================================================================
// Factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Stochastic:
//
// RandomTree builds a random recursive tree on n ≥ 2 vertices, spliced into
// a valid rotation system edge by edge. Requires cfg.rng.
//func RandomTree(n int) Constructor
//
// RandomGraph builds a random connected-ish planar graph: random tree,
// triangulation, random edge subset of size round(density·E), duplicate
// edge removal, cost normalization. Requires cfg.rng.
//func RandomGraph(n int, density float64) Constructor
//
// Deterministic embedded fixtures (via core.FromOrderedAdjacencies):
//
//func Path(n int) Constructor       // n ≥ 2, one face
//func Star(n int) Constructor       // n ≥ 2, hub 0, one face
//func Cycle(n int) Constructor      // n ≥ 3, two faces
//func Wheel(n int) Constructor      // n ≥ 4, hub 0, n faces
//func Grid(rows, cols int) Constructor // rows, cols ≥ 1, (rows-1)(cols-1)+1 faces
