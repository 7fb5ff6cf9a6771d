// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng          = nil                       (stochastic constructors fail with ErrNeedRandSource)
//   • costFn       = nil                       (uniform 1/n vertex costs)
//   • triangulator = triangulate.Triangulator{} (ear-cutting, see package triangulate)
//   • logger       = discard logger            (the library is silent unless asked)

package builder

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/planarsep/core"
	"github.com/katalvlaran/planarsep/triangulate"
)

// Triangulator completes a tree-shaped plane graph to a maximal planar graph
// on the same vertex set whose edge set contains the tree's. The metadata
// value is opaque to the builder and only logged.
type Triangulator interface {
	Triangulate(tree *core.Graph) (metadata any, triangulated *core.Graph, err error)
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Vertex cost generator; nil means uniform costs.
	costFn CostFn
	// Triangulation step of RandomGraph.
	triangulator Triangulator
	// Debug records of generation stages.
	logger *log.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		triangulator: triangulate.Triangulator{},
		logger:       log.NewWithOptions(io.Discard, log.Options{}),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
