// Package builder provides helper types for configuring vertex-cost
// distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/planarsep/core"
)

// CostFn draws one raw (unnormalized) vertex cost from rng. Drawn costs are
// renormalized to sum to 1, so only their ratios matter. A CostFn must
// return values > 0 and be deterministic for a given RNG state.
type CostFn func(rng *rand.Rand) float64

// UniformCostFn samples uniformly in the open interval (0, 1).
// Complexity: O(1) expected.
func UniformCostFn() CostFn {
	return func(rng *rand.Rand) float64 {
		for {
			// Float64 is in [0,1); redraw the zero endpoint.
			if x := rng.Float64(); x > 0 {
				return x
			}
		}
	}
}

// ConstantCostFn yields value for every vertex. After normalization this is
// the same as the default uniform 1/n costs. Panics if value ≤ 0.
func ConstantCostFn(value float64) CostFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// ExponentialCostFn samples from an exponential distribution with rate λ,
// i.e. PDF λ e^(−λx). Panics if rate ≤ 0.
func ExponentialCostFn(rate float64) CostFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialCostFn: rate must be > 0, got %f", rate))
	}
	return func(rng *rand.Rand) float64 {
		for {
			if x := rng.ExpFloat64() / rate; x > 0 {
				return x
			}
		}
	}
}

// WithCostFn draws vertex costs with fn instead of the uniform 1/n default.
// Panics on nil. Requires an RNG (WithSeed/WithRand).
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithRandomCosts draws vertex costs uniformly in (0,1) before normalization.
// Complexity: O(1).
func WithRandomCosts() BuilderOption {
	return WithCostFn(UniformCostFn())
}

// vertexCosts returns n costs summing to 1: uniform 1/n by default, or
// cfg.costFn draws divided by their sum.
//
// Complexity: O(n).
func vertexCosts(method string, n int, cfg builderConfig) ([]float64, error) {
	if cfg.costFn == nil {
		return core.Filled(1/float64(n), n), nil
	}
	if err := requireRand(method, cfg); err != nil {
		return nil, err
	}
	costs := make([]float64, n)
	var sum float64
	for v := range costs {
		costs[v] = cfg.costFn(cfg.rng)
		sum += costs[v]
	}
	if !(sum > 0) {
		return nil, fmt.Errorf("%s: drawn costs sum to %g: %w", method, sum, core.ErrZeroCostSum)
	}
	for v := range costs {
		costs[v] /= sum
	}
	return costs, nil
}

// withDrawnCosts replaces g's uniform costs when a CostFn is configured.
func withDrawnCosts(method string, g *core.Graph, cfg builderConfig) (*core.Graph, error) {
	if cfg.costFn == nil {
		return g, nil
	}
	costs, err := vertexCosts(method, g.Size(), cfg)
	if err != nil {
		return nil, err
	}
	return g.WithVertexCosts(costs)
}
