// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes allows the trivial K_1 (a single vertex, no edges).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the inclusive lower bound for p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for p in RandomSparse.
const MaxProbability = 1.0

// HubVertex is the index of the center in Star and Wheel.
const HubVertex = 0
