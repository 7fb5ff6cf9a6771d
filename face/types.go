// Package face walks the faces of a rotation system: full face tracing, and
// the boundary walk that lists the edges touching a sub-structure from outside.
package face

import "errors"

// Sentinel errors for face walks. Length and range violations wrap the core
// sentinels (core.ErrMaskLength, core.ErrVertexOutOfRange, core.ErrEdgeOutOfRange).
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("face: graph is nil")

	// ErrNotIncident is returned when the start edge does not touch the start vertex.
	ErrNotIncident = errors.New("face: start edge is not incident to start vertex")
)

// Corner is one step of a face walk: the walk arrived at Vertex through Edge
// and leaves along the edge following Edge in Vertex's rotation.
type Corner struct {
	Vertex int
	Edge   int
}
