// SPDX-License-Identifier: MIT
// Package: planarsep/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidDensity indicates that a density is outside [0,1] or NaN.
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic step requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origins: RandomTree/RandomGraph, or any constructor with random costs.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a construction step could not produce a
// valid graph (nil constructor, triangulator failure).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrGraphNil is returned by graph transformations given a nil graph.
var ErrGraphNil = errors.New("builder: graph is nil")
