// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel
// when its precondition is violated.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateDensity enforces d ∈ [MinDensity, MaxDensity]; NaN is rejected.
//
// Complexity: O(1) time and space.
func validateDensity(method string, d float64) error {
	if math.IsNaN(d) || d < MinDensity || d > MaxDensity {
		return fmt.Errorf("%s: density must be in [%.1f,%.1f], got %g: %w",
			method, MinDensity, MaxDensity, d, ErrInvalidDensity)
	}

	return nil
}

// requireRand reports ErrNeedRandSource when no RNG was configured.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
