package triangulate

import "errors"

// Sentinel errors for triangulation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("triangulate: graph is nil")

	// ErrDisconnected is returned when the input has more than one connected component.
	ErrDisconnected = errors.New("triangulate: graph is not connected")

	// ErrNoEar is returned when a face still longer than three has no corner
	// between two distinct vertices. Only non-planar rotation systems with
	// parallel edges reach it.
	ErrNoEar = errors.New("triangulate: face has no ear")
)

// Stats describes one Triangulate run.
type Stats struct {
	// Faces is the number of faces of the input graph.
	Faces int
	// Chords is the number of edges added.
	Chords int
	// ParallelChords counts chords that join an already adjacent pair.
	ParallelChords int
}
