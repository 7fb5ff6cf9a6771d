// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodRandomTree is the canonical name for the RandomTree constructor.
	MethodRandomTree = "RandomTree"
	// MethodRandomGraph is the canonical name for the RandomGraph constructor.
	MethodRandomGraph = "RandomGraph"
	// MethodRemoveDoubleEdges is the canonical name for RemoveDoubleEdges.
	MethodRemoveDoubleEdges = "RemoveDoubleEdges"
	// MethodNormalizeVertexCosts is the canonical name for NormalizeVertexCosts.
	MethodNormalizeVertexCosts = "NormalizeVertexCosts"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinTreeNodes is the smallest random tree: the generator starts from edge (0,1).
const MinTreeNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one center plus at least one leaf (2 nodes total).
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology.
// A wheel is a cycle of at least 3 nodes plus one hub (4 nodes total).
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Density Bounds
//-----------------------------------------------------------------------------

// MinDensity is the lower bound for the density parameter of RandomGraph, inclusive.
const MinDensity = 0.0

// MaxDensity is the upper bound for the density parameter of RandomGraph, inclusive.
const MaxDensity = 1.0

// CenterVertex is the hub index of Star and Wheel.
const CenterVertex = 0
